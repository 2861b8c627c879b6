package rest_test

import (
	"area-api/internal/adapters/in/rest/openapi"
	"fmt"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Projects and devices endpoints", func() {
	var (
		owner    *apiClient
		stranger *apiClient
		admin    *apiClient
	)

	BeforeEach(func() {
		env := newTestServerFromConfig(TestConfigPath)
		owner = newHmacClient(env.server.URL, ownerKeyID, ownerSecretHex)
		stranger = newHmacClient(env.server.URL, strangerKeyID, strangerSecretHex)
		admin = newBearerClient(env.server.URL, adminKeyID, adminSecretHex)
	})

	Describe("projects", func() {
		It("lists accessible projects", func() {
			var projects []openapi.Project
			res := owner.get("/api/projects")
			mustStatus(res.StatusCode, res.Body, http.StatusOK)
			res.decode(&projects)
			Expect(projects).To(HaveLen(1))

			res = admin.get("/api/projects")
			mustStatus(res.StatusCode, res.Body, http.StatusOK)
			res.decode(&projects)
			Expect(projects).To(HaveLen(2))
		})

		It("ensures a project", func() {
			body := openapi.EnsureProjectRequestBody{Name: "plant-c", OwnerUserId: 1}
			res := owner.sendJSON(http.MethodPut, "/api/projects/3", body)
			mustStatus(res.StatusCode, res.Body, http.StatusForbidden)

			res = admin.sendJSON(http.MethodPut, "/api/projects/3", body)
			mustStatus(res.StatusCode, res.Body, http.StatusCreated)
			Expect(res.Header.Get("Location")).To(Equal("/api/projects/3"))

			res = owner.sendJSON(http.MethodPut, "/api/projects/3", body)
			mustStatus(res.StatusCode, res.Body, http.StatusOK)

			body.Name = "plant-c2"
			res = owner.sendJSON(http.MethodPut, "/api/projects/3", body)
			mustStatus(res.StatusCode, res.Body, http.StatusConflict)
			Expect(res.apiError().Type).To(Equal("DuplicateEntity"))

			res = owner.sendJSON(http.MethodPut, "/api/projects/4", openapi.EnsureProjectRequestBody{Name: "theirs", OwnerUserId: 2})
			mustStatus(res.StatusCode, res.Body, http.StatusForbidden)

			res = owner.sendJSON(http.MethodPut, "/api/projects/5", openapi.EnsureProjectRequestBody{Name: ""})
			mustStatus(res.StatusCode, res.Body, http.StatusUnprocessableEntity)
		})

		It("patches a project", func() {
			res := owner.sendJSON(http.MethodPatch, "/api/projects/1", openapi.UpdateProjectRequestBody{Name: ptr("plant-a-renamed")})
			mustStatus(res.StatusCode, res.Body, http.StatusOK)
			var pr openapi.Project
			res.decode(&pr)
			Expect(pr.Name).To(Equal("plant-a-renamed"))
			Expect(pr.EntityVersion).To(Equal(int64(2)))

			res = stranger.sendJSON(http.MethodPatch, "/api/projects/1", openapi.UpdateProjectRequestBody{Name: ptr("mine")})
			mustStatus(res.StatusCode, res.Body, http.StatusForbidden)
		})

		It("deletes a project with its areas", func() {
			a := mustCreateArea(owner, "Doomed", 1, nil)

			res := stranger.delete("/api/projects/1")
			mustStatus(res.StatusCode, res.Body, http.StatusForbidden)

			res = owner.delete("/api/projects/1")
			mustStatus(res.StatusCode, res.Body, http.StatusNoContent)

			res = admin.get(fmt.Sprintf("/api/areas/%d", *a.Id))
			mustStatus(res.StatusCode, res.Body, http.StatusNotFound)

			res = admin.get("/api/projects/1")
			mustStatus(res.StatusCode, res.Body, http.StatusNotFound)
		})
	})

	Describe("devices", func() {
		It("lists devices", func() {
			var devices []openapi.Device
			res := owner.get("/api/devices")
			mustStatus(res.StatusCode, res.Body, http.StatusOK)
			res.decode(&devices)
			Expect(devices).To(HaveLen(2))

			res = owner.get("/api/devices?projectId=1")
			mustStatus(res.StatusCode, res.Body, http.StatusOK)
			res.decode(&devices)
			Expect(devices).To(HaveLen(2))

			res = owner.get("/api/devices?projectId=2")
			mustStatus(res.StatusCode, res.Body, http.StatusForbidden)
		})

		It("ensures, gets and deletes a device", func() {
			body := openapi.EnsureDeviceRequestBody{DeviceName: "thermo-9", ProjectId: 1}
			res := owner.sendJSON(http.MethodPut, "/api/devices/109", body)
			mustStatus(res.StatusCode, res.Body, http.StatusCreated)

			res = owner.sendJSON(http.MethodPut, "/api/devices/109", body)
			mustStatus(res.StatusCode, res.Body, http.StatusOK)

			var d openapi.Device
			res = owner.get("/api/devices/109")
			mustStatus(res.StatusCode, res.Body, http.StatusOK)
			res.decode(&d)
			Expect(d.DeviceName).To(Equal("thermo-9"))

			res = stranger.get("/api/devices/109")
			mustStatus(res.StatusCode, res.Body, http.StatusForbidden)

			res = owner.delete("/api/devices/109")
			mustStatus(res.StatusCode, res.Body, http.StatusNoContent)

			res = owner.get("/api/devices/109")
			mustStatus(res.StatusCode, res.Body, http.StatusNotFound)
		})
	})
})

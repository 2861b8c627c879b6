package rest_test

import (
	"area-api/internal/adapters/in/rest/openapi"
	"fmt"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Area devices endpoints", func() {
	var (
		owner    *apiClient
		stranger *apiClient
		area     openapi.Area
		base     string
	)

	BeforeEach(func() {
		env := newTestServerFromConfig(TestConfigPath)
		owner = newHmacClient(env.server.URL, ownerKeyID, ownerSecretHex)
		stranger = newHmacClient(env.server.URL, strangerKeyID, strangerSecretHex)
		area = mustCreateArea(owner, "Plant room", 1, nil)
		base = fmt.Sprintf("/api/areas/%d/devices", *area.Id)
	})

	It("adds, lists and removes devices", func() {
		res := owner.sendJSON(http.MethodPut, base, openapi.AddAreaDeviceRequestBody{DeviceId: 100})
		mustStatus(res.StatusCode, res.Body, http.StatusOK)
		var ad openapi.AreaDevice
		res.decode(&ad)
		Expect(ad.AreaId).To(Equal(*area.Id))
		Expect(ad.DeviceId).To(Equal(int64(100)))

		var list []openapi.AreaDevice
		res = owner.get(base)
		mustStatus(res.StatusCode, res.Body, http.StatusOK)
		res.decode(&list)
		Expect(list).To(HaveLen(1))

		res = owner.delete(fmt.Sprintf("%s/%d", base, ad.Id))
		mustStatus(res.StatusCode, res.Body, http.StatusOK)

		res = owner.get(base)
		mustStatus(res.StatusCode, res.Body, http.StatusOK)
		res.decode(&list)
		Expect(list).To(BeEmpty())

		res = owner.delete(fmt.Sprintf("%s/%d", base, ad.Id))
		mustStatus(res.StatusCode, res.Body, http.StatusNotFound)
	})

	It("maps failures to status codes", func() {
		res := owner.sendJSON(http.MethodPut, base, openapi.AddAreaDeviceRequestBody{DeviceId: 100})
		mustStatus(res.StatusCode, res.Body, http.StatusOK)

		res = owner.sendJSON(http.MethodPut, base, openapi.AddAreaDeviceRequestBody{DeviceId: 100})
		mustStatus(res.StatusCode, res.Body, http.StatusConflict)
		Expect(res.apiError().Type).To(Equal("DuplicateEntity"))

		res = owner.sendJSON(http.MethodPut, base, openapi.AddAreaDeviceRequestBody{DeviceId: 999})
		mustStatus(res.StatusCode, res.Body, http.StatusNotFound)

		res = stranger.sendJSON(http.MethodPut, base, openapi.AddAreaDeviceRequestBody{DeviceId: 200})
		mustStatus(res.StatusCode, res.Body, http.StatusForbidden)

		res = stranger.get(base)
		mustStatus(res.StatusCode, res.Body, http.StatusForbidden)

		res = owner.get("/api/areas/9999/devices")
		mustStatus(res.StatusCode, res.Body, http.StatusNotFound)
	})
})

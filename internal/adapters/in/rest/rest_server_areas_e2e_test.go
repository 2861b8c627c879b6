package rest_test

import (
	"area-api/internal/adapters/in/rest/openapi"
	"fmt"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Areas endpoints", func() {
	var (
		env      *testEnv
		owner    *apiClient
		stranger *apiClient
		admin    *apiClient
	)

	BeforeEach(func() {
		env = newTestServerFromConfig(TestConfigPath)
		owner = newHmacClient(env.server.URL, ownerKeyID, ownerSecretHex)
		stranger = newBearerClient(env.server.URL, strangerKeyID, strangerSecretHex)
		admin = newBearerClient(env.server.URL, adminKeyID, adminSecretHex)
	})

	Describe("POST /api/areas", func() {
		It("creates an area and renders the public view", func() {
			res := owner.sendJSON(http.MethodPost, "/api/areas", openapi.Area{
				Name:        "Building A",
				Description: ptr("main building"),
				MapInfo:     &openapi.MapInfo{X: ptr(1.5), Y: ptr(2.5), Z: ptr(0.0), Icon: ptr("factory")},
				Project:     &openapi.ProjectRef{Id: 1},
			})
			mustStatus(res.StatusCode, res.Body, http.StatusOK)
			var a openapi.Area
			res.decode(&a)
			Expect(*a.Id).To(BeNumerically(">", 0))
			Expect(*a.EntityVersion).To(Equal(int64(1)))
			Expect(*a.AreaViewType).To(Equal(openapi.AreaAreaViewType("IMAGE")))
			Expect(*a.MapInfo.X).To(Equal(1.5))
			Expect(a.Project.Id).To(Equal(int64(1)))
			Expect(a.Project.Name).To(BeNil())
			Expect(a.EntityCreateDate).To(BeNil())
		})

		It("renders the compact and extended views", func() {
			root := mustCreateArea(owner, "Root", 1, nil)

			res := owner.sendJSON(http.MethodPost, "/api/areas?view=compact", newAreaBody("Compact", 1, root.Id))
			mustStatus(res.StatusCode, res.Body, http.StatusOK)
			var compact openapi.Area
			res.decode(&compact)
			Expect(compact.Name).To(Equal("Compact"))
			Expect(compact.Project).To(BeNil())
			Expect(compact.ParentArea).To(BeNil())
			Expect(compact.AreaViewType).To(BeNil())

			res = owner.sendJSON(http.MethodPost, "/api/areas?view=extended", newAreaBody("Extended", 1, root.Id))
			mustStatus(res.StatusCode, res.Body, http.StatusOK)
			var extended openapi.Area
			res.decode(&extended)
			Expect(*extended.Project.Name).To(Equal("plant-a"))
			Expect(*extended.ParentArea.Name).To(Equal("Root"))
			Expect(extended.EntityCreateDate).NotTo(BeNil())
		})

		It("rejects unknown views -> 400", func() {
			res := owner.sendJSON(http.MethodPost, "/api/areas?view=everything", newAreaBody("X", 1, nil))
			mustStatus(res.StatusCode, res.Body, http.StatusBadRequest)
			Expect(res.apiError().Type).To(Equal("InvalidParameter"))
		})

		It("rejects non-JSON bodies -> 415", func() {
			res := owner.do(http.MethodPost, "/api/areas", []byte("name=x"), "application/x-www-form-urlencoded")
			mustStatus(res.StatusCode, res.Body, http.StatusUnsupportedMediaType)
			Expect(res.apiError().Type).To(Equal("UnsupportedMediaType"))
		})

		It("rejects malformed JSON -> 400", func() {
			res := owner.do(http.MethodPost, "/api/areas", []byte(`{"name":`), "application/json")
			mustStatus(res.StatusCode, res.Body, http.StatusBadRequest)
			Expect(res.apiError().Type).To(Equal("MalformedRequest"))
		})

		It("reports validation errors -> 422", func() {
			res := owner.sendJSON(http.MethodPost, "/api/areas", openapi.Area{
				Name:    "<script>x</script>",
				Project: &openapi.ProjectRef{Id: 1},
			})
			mustStatus(res.StatusCode, res.Body, http.StatusUnprocessableEntity)
			e := res.apiError()
			Expect(e.Status).To(Equal(http.StatusUnprocessableEntity))
			Expect(e.Type).To(Equal("ValidationError"))
			Expect(e.ValidationErrors).NotTo(BeNil())
			Expect((*e.ValidationErrors)[0].Field).To(Equal("name"))
			Expect(*(*e.ValidationErrors)[0].InvalidValue).To(Equal("<script>x</script>"))
		})

		It("forbids foreign projects -> 403", func() {
			res := stranger.sendJSON(http.MethodPost, "/api/areas", newAreaBody("Intruder", 1, nil))
			mustStatus(res.StatusCode, res.Body, http.StatusForbidden)
			Expect(res.apiError().Type).To(Equal("Unauthorized"))
		})

		It("reports duplicates -> 409", func() {
			mustCreateArea(owner, "Twin", 1, nil)
			res := owner.sendJSON(http.MethodPost, "/api/areas", newAreaBody("Twin", 1, nil))
			mustStatus(res.StatusCode, res.Body, http.StatusConflict)
			e := res.apiError()
			Expect(e.Type).To(Equal("DuplicateEntity"))
			Expect(*e.ValidationErrors).To(HaveLen(3))
		})
	})

	Describe("PUT /api/areas", func() {
		It("updates with optimistic locking", func() {
			a := mustCreateArea(owner, "Old name", 1, nil)
			a.Name = "New name"

			res := owner.sendJSON(http.MethodPut, "/api/areas", a)
			mustStatus(res.StatusCode, res.Body, http.StatusOK)
			var updated openapi.Area
			res.decode(&updated)
			Expect(updated.Name).To(Equal("New name"))
			Expect(*updated.EntityVersion).To(Equal(int64(2)))

			res = owner.sendJSON(http.MethodPut, "/api/areas", a)
			mustStatus(res.StatusCode, res.Body, http.StatusConflict)
			Expect(res.apiError().Type).To(Equal("EntityVersionMismatch"))
		})

		It("returns 404 for unknown areas", func() {
			res := owner.sendJSON(http.MethodPut, "/api/areas", openapi.Area{Id: ptr(int64(9999)), Name: "Ghost", EntityVersion: ptr(int64(1))})
			mustStatus(res.StatusCode, res.Body, http.StatusNotFound)
			Expect(res.apiError().Type).To(Equal("EntityNotFound"))
		})
	})

	Describe("GET and DELETE /api/areas/{id}", func() {
		It("finds, forbids and deletes", func() {
			a := mustCreateArea(owner, "Hall", 1, nil)
			path := fmt.Sprintf("/api/areas/%d", *a.Id)

			res := owner.get(path)
			mustStatus(res.StatusCode, res.Body, http.StatusOK)

			res = stranger.get(path)
			mustStatus(res.StatusCode, res.Body, http.StatusForbidden)

			res = stranger.delete(path)
			mustStatus(res.StatusCode, res.Body, http.StatusForbidden)

			res = owner.delete(path)
			mustStatus(res.StatusCode, res.Body, http.StatusOK)

			res = owner.get(path)
			mustStatus(res.StatusCode, res.Body, http.StatusNotFound)
		})

		It("rejects non-numeric ids -> 400", func() {
			res := owner.get("/api/areas/abc")
			mustStatus(res.StatusCode, res.Body, http.StatusBadRequest)
			Expect(res.apiError().Type).To(Equal("InvalidParameter"))
		})
	})

	Describe("listings", func() {
		BeforeEach(func() {
			for i := 1; i <= 3; i++ {
				mustCreateArea(owner, fmt.Sprintf("Area %d", i), 1, nil)
			}
			mustCreateArea(admin, "Foreign", 2, nil)
		})

		It("lists all permitted areas", func() {
			var areas []openapi.Area
			res := owner.get("/api/areas/all")
			mustStatus(res.StatusCode, res.Body, http.StatusOK)
			res.decode(&areas)
			Expect(areas).To(HaveLen(3))

			res = admin.get("/api/areas/all?view=compact")
			mustStatus(res.StatusCode, res.Body, http.StatusOK)
			res.decode(&areas)
			Expect(areas).To(HaveLen(4))
		})

		It("paginates", func() {
			var page openapi.AreaPage
			res := owner.get("/api/areas?delta=2&page=2")
			mustStatus(res.StatusCode, res.Body, http.StatusOK)
			res.decode(&page)
			Expect(page.Results).To(HaveLen(1))
			Expect(page.NumPages).To(Equal(2))
			Expect(page.CurrentPage).To(Equal(2))
			Expect(page.NextPage).To(Equal(1))
			Expect(page.Delta).To(Equal(2))
			Expect(*page.Total).To(Equal(3))
		})

		It("rejects non-numeric paging -> 400", func() {
			res := owner.get("/api/areas?delta=two")
			mustStatus(res.StatusCode, res.Body, http.StatusBadRequest)
		})

		It("lists by project", func() {
			var areas []openapi.Area
			res := owner.get("/api/areas/projects/1")
			mustStatus(res.StatusCode, res.Body, http.StatusOK)
			res.decode(&areas)
			Expect(areas).To(HaveLen(3))

			res = owner.get("/api/areas/projects/2")
			mustStatus(res.StatusCode, res.Body, http.StatusForbidden)

			res = owner.get("/api/areas/projects/999")
			mustStatus(res.StatusCode, res.Body, http.StatusNotFound)
		})
	})

	Describe("hierarchy", func() {
		It("renders tree and path", func() {
			root := mustCreateArea(owner, "Campus", 1, nil)
			wing := mustCreateArea(owner, "Wing", 1, root.Id)
			lab := mustCreateArea(owner, "Lab", 1, wing.Id)

			var tree openapi.AreaTree
			res := owner.get(fmt.Sprintf("/api/areas/%d/tree", *root.Id))
			mustStatus(res.StatusCode, res.Body, http.StatusOK)
			res.decode(&tree)
			Expect(tree.InnerAreas).To(HaveLen(1))
			Expect(tree.InnerAreas[0].Name).To(Equal("Wing"))
			Expect(tree.InnerAreas[0].InnerAreas[0].Name).To(Equal("Lab"))
			Expect(tree.InnerAreas[0].InnerAreas[0].InnerAreas).To(BeEmpty())

			var path []openapi.Area
			res = owner.get(fmt.Sprintf("/api/areas/%d/path", *lab.Id))
			mustStatus(res.StatusCode, res.Body, http.StatusOK)
			res.decode(&path)
			Expect(path).To(HaveLen(3))
			Expect(path[0].Name).To(Equal("Campus"))
			Expect(path[2].Name).To(Equal("Lab"))
			Expect(*path[2].ParentArea.Name).To(Equal("Wing"))
		})

		It("reports a cycle as a validation error", func() {
			root := mustCreateArea(owner, "Top", 1, nil)
			child := mustCreateArea(owner, "Below", 1, root.Id)

			root.ParentArea = &openapi.AreaRef{Id: *child.Id}
			res := owner.sendJSON(http.MethodPut, "/api/areas", root)
			mustStatus(res.StatusCode, res.Body, http.StatusUnprocessableEntity)
			Expect((*res.apiError().ValidationErrors)[0].Field).To(Equal("parentArea"))
		})
	})

	It("serves the image configuration", func() {
		var cfg openapi.AreaConfig
		res := owner.get("/api/areas/config")
		mustStatus(res.StatusCode, res.Body, http.StatusOK)
		res.decode(&cfg)
		Expect(cfg.MaxFileSize).To(Equal(int64(4096)))
		Expect(cfg.SupportedExtensions).To(ContainElement(".png"))
	})
})

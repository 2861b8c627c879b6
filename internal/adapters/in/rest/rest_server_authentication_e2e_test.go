package rest_test

import (
	"area-api/internal/app/ports"
	"net/http"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Authentication variants", func() {
	var env *testEnv

	BeforeEach(func() {
		env = newTestServerFromConfig(TestConfigPath)
	})

	expectUnauthenticated := func(res apiResponse) {
		mustStatus(res.StatusCode, res.Body, http.StatusUnauthorized)
		Expect(res.apiError().Type).To(Equal("Unauthenticated"))
	}

	It("no credentials -> 401", func() {
		c := &apiClient{baseURL: env.server.URL}
		expectUnauthenticated(c.get("/api/areas"))
	})

	It("missing one header -> 401", func() {
		c := &apiClient{baseURL: env.server.URL, edit: func(r *http.Request) {
			r.Header.Set("X-Api-Key", ownerKeyID)
			r.Header.Set("Authorization", "HMAC deadbeef")
		}}
		expectUnauthenticated(c.get("/api/areas"))
	})

	It("timestamp skew outside window -> 401", func() {
		c := &apiClient{baseURL: env.server.URL, edit: func(r *http.Request) {
			r.Header.Set("X-Api-Key", ownerKeyID)
			r.Header.Set("X-Timestamp", time.Now().UTC().Add(-time.Duration(securityWindowSeconds+10)*time.Second).Format(time.RFC3339))
			r.Header.Set("X-Content-Sha256", sha256Hex(nil))
			r.Header.Set("Authorization", "HMAC deadbeef")
		}}
		expectUnauthenticated(c.get("/api/areas"))
	})

	It("body hash mismatch -> 401", func() {
		c := &apiClient{baseURL: env.server.URL, edit: func(r *http.Request) {
			r.Header.Set("X-Api-Key", ownerKeyID)
			r.Header.Set("X-Timestamp", time.Now().UTC().Format(time.RFC3339))
			r.Header.Set("X-Content-Sha256", "00")
			r.Header.Set("Authorization", "HMAC deadbeef")
		}}
		expectUnauthenticated(c.get("/api/areas"))
	})

	It("signature made with another secret -> 401", func() {
		c := newHmacClient(env.server.URL, ownerKeyID, strangerSecretHex)
		expectUnauthenticated(c.get("/api/areas"))
	})

	It("unknown api key -> 401", func() {
		c := newBearerClient(env.server.URL, "nobody", ownerSecretHex)
		expectUnauthenticated(c.get("/api/areas"))
	})

	It("wrong bearer secret -> 401", func() {
		c := newBearerClient(env.server.URL, ownerKeyID, strangerSecretHex)
		expectUnauthenticated(c.get("/api/areas"))
	})

	It("garbage jwt -> 401", func() {
		c := &apiClient{baseURL: env.server.URL, edit: func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer not.a.jwt")
		}}
		expectUnauthenticated(c.get("/api/areas"))
	})

	It("accepts hmac, bearer and jwt credentials", func() {
		for _, c := range []*apiClient{
			newHmacClient(env.server.URL, ownerKeyID, ownerSecretHex),
			newBearerClient(env.server.URL, ownerKeyID, ownerSecretHex),
			newJWTClient(env, ports.Principal{UserID: 1, Username: "owner"}),
		} {
			res := c.get("/api/projects")
			mustStatus(res.StatusCode, res.Body, http.StatusOK)
		}
	})

	It("signs request bodies", func() {
		c := newHmacClient(env.server.URL, ownerKeyID, ownerSecretHex)
		a := mustCreateArea(c, "Signed", 1, nil)
		Expect(a.Name).To(Equal("Signed"))
	})

	It("leaves probes and docs public", func() {
		c := &apiClient{baseURL: env.server.URL}
		for _, path := range []string{"/healthz", "/readyz", "/api/health", "/openapi.yaml", "/openapi.json", "/", "/docs/swagger", "/docs/redoc"} {
			res := c.get(path)
			mustStatus(res.StatusCode, res.Body, http.StatusOK)
		}
	})

	It("serves the OpenAPI document as JSON", func() {
		res := (&apiClient{baseURL: env.server.URL}).get("/openapi.json")
		mustStatus(res.StatusCode, res.Body, http.StatusOK)
		Expect(res.Header.Get("Content-Type")).To(HavePrefix("application/json"))
		var doc map[string]any
		res.decode(&doc)
		Expect(doc).To(HaveKey("paths"))
	})
})

package security_test

import (
	"area-api/internal/adapters/out/security"
	"area-api/internal/app/config"
	"area-api/internal/app/ports"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/go-chi/chi/v5"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("MultiAuthenticator.Verify", func() {
	const (
		apiKeyID  = "test-key"
		secretHex = "00112233445566778899aabbccddeeff00112233445566778899aabbccddeeff"
	)

	var auth *security.MultiAuthenticator

	BeforeEach(func() {
		sec := config.AuthenticatorConfig{
			EnabledAuthenticators: []string{"bearer", "hmac"},
			WindowSeconds:         300,
			AccessKeys:            map[string]config.AccessKeyConfig{apiKeyID: {Secret: secretHex, UserID: 7, Username: "alice"}},
		}
		var err error
		auth, err = security.NewMultiAuthenticator(sec, nil)
		Expect(err).NotTo(HaveOccurred())
	})

	It("accepts a valid signature", func() {
		body := []byte(`{"hello":"world"}`)
		req := newBearerRequest(http.MethodPost, "http://example.test/api/areas?x=1", body, apiKeyID, secretHex)

		_, err := auth.Verify(req)
		Expect(err).NotTo(HaveOccurred())
	})

	It("accepts a valid signature within the time window", func() {
		ts := time.Now().UTC().Format(time.RFC3339)
		body := []byte(`{"hello":"world"}`)
		req := newHmacSignedRequest(http.MethodPost, "http://example.test/api/areas?x=1", body, apiKeyID, secretHex, ts)

		_, err := auth.Verify(req)
		Expect(err).NotTo(HaveOccurred())
	})

})

var _ = Describe("BearerAuthenticator.WithAuthChi middleware", func() {
	const (
		apiKeyID  = "test-key"
		secretHex = "00112233445566778899aabbccddeeff00112233445566778899aabbccddeeff"
	)

	var auth *security.MultiAuthenticator
	var router *chi.Mux

	BeforeEach(func() {
		sec := config.AuthenticatorConfig{
			EnabledAuthenticators: []string{"bearer", "hmac"},
			WindowSeconds:         300,
			AccessKeys:            map[string]config.AccessKeyConfig{apiKeyID: {Secret: secretHex, UserID: 7, Username: "alice"}},
		}
		var err error
		auth, err = security.NewMultiAuthenticator(sec, nil)
		Expect(err).NotTo(HaveOccurred())

		router = chi.NewRouter()
		// Protect only this endpoint with WithAuthChi
		protected := chi.NewRouter()
		protected.Use(auth.WithAuthChi)
		protected.Get("/protected", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Next-Called", "1")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
		})

		router.Mount("/", protected)

		// Public endpoint to sanity-check router
		router.Get("/public", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("public"))
		})
	})

	It("allows request and calls next handler when secret is valid", func() {
		req := newBearerRequest(http.MethodGet, "http://example.test/protected", nil, apiKeyID, secretHex)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		Expect(rr.Code).To(Equal(http.StatusOK))
		Expect(rr.Header().Get("X-Next-Called")).To(Equal("1"))
		Expect(rr.Body.String()).To(Equal("ok"))
	})

	It("allows request and calls next handler when signature is valid", func() {
		ts := time.Now().UTC().Format(time.RFC3339)
		req := newHmacSignedRequest(http.MethodGet, "http://example.test/protected", nil, apiKeyID, secretHex, ts)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		Expect(rr.Code).To(Equal(http.StatusOK))
		Expect(rr.Header().Get("X-Next-Called")).To(Equal("1"))
		Expect(rr.Body.String()).To(Equal("ok"))
	})

})

var _ = Describe("MultiAuthenticator dispatch", func() {
	const secretHex = "00112233445566778899aabbccddeeff00112233445566778899aabbccddeeff"

	var (
		auth   *security.MultiAuthenticator
		router *chi.Mux
	)

	BeforeEach(func() {
		sec := config.AuthenticatorConfig{
			EnabledAuthenticators: []string{"hmac", "bearer", "jwt"},
			WindowSeconds:         300,
			AccessKeys: map[string]config.AccessKeyConfig{
				"key1": {Secret: secretHex, UserID: 1, Username: "owner"},
			},
			JWT: config.JWTConfig{Secret: "jwt-secret"},
		}
		var err error
		auth, err = security.NewMultiAuthenticator(sec, nil)
		Expect(err).NotTo(HaveOccurred())

		router = chi.NewRouter()
		router.Use(auth.WithAuthChi)
		router.Get("/whoami", func(w http.ResponseWriter, r *http.Request) {
			p, ok := ports.PrincipalFromContext(r.Context())
			if !ok {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			_, _ = w.Write([]byte(p.String()))
		})
	})

	It("refuses unknown authenticator names", func() {
		_, err := security.NewMultiAuthenticator(config.AuthenticatorConfig{EnabledAuthenticators: []string{"kerberos"}}, nil)
		Expect(err).To(HaveOccurred())
	})

	It("refuses an empty authenticator list", func() {
		_, err := security.NewMultiAuthenticator(config.AuthenticatorConfig{}, nil)
		Expect(err).To(HaveOccurred())
	})

	It("puts the bearer key's principal into the request context", func() {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, newBearerRequest(http.MethodGet, "http://example.test/whoami", nil, "key1", secretHex))
		Expect(rr.Code).To(Equal(http.StatusOK))
		Expect(rr.Body.String()).To(Equal("owner"))
	})

	It("routes key-less bearer tokens to the JWT authenticator", func() {
		jwtAuth, err := security.NewJWTAuthenticator(config.JWTConfig{Secret: "jwt-secret"})
		Expect(err).NotTo(HaveOccurred())
		token, err := jwtAuth.IssueToken(ports.Principal{UserID: 3, Username: "dave"}, time.Minute)
		Expect(err).NotTo(HaveOccurred())

		req, _ := http.NewRequest(http.MethodGet, "http://example.test/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		Expect(rr.Code).To(Equal(http.StatusOK))
		Expect(rr.Body.String()).To(Equal("dave"))
	})

	It("rejects unsupported schemes and missing headers", func() {
		req, _ := http.NewRequest(http.MethodGet, "http://example.test/whoami", nil)
		_, err := auth.Verify(req)
		Expect(err).To(MatchError(ports.ErrInvalidCredentials))

		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		Expect(auth.Supports(req)).To(BeFalse())
		_, err = auth.Verify(req)
		Expect(err).To(MatchError(ports.ErrInvalidCredentials))
	})
})

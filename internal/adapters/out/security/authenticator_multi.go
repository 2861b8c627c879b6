package security

import (
	"area-api/internal/app/config"
	"area-api/internal/app/ports"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
)

const (
	hdrAPIKey = "X-Api-Key"
	hdrAuthz  = "Authorization"
)

var errSchemeNotSupported = errors.New("authorization scheme not supported")

type namedAuthenticator struct {
	name string
	ports.Authenticator
}

// MultiAuthenticator dispatches to the first enabled authenticator supporting the request.
type MultiAuthenticator struct {
	authenticators []namedAuthenticator
}

// Enforce compile-time conformance to the interface
var _ ports.Authenticator = (*MultiAuthenticator)(nil)

func NewMultiAuthenticator(authCfg config.AuthenticatorConfig, hasher ports.Hasher) (*MultiAuthenticator, error) {
	authenticators := make([]namedAuthenticator, 0, len(authCfg.EnabledAuthenticators))
	for _, name := range authCfg.EnabledAuthenticators {
		var (
			a   ports.Authenticator
			err error
		)
		switch name {
		case "hmac":
			a, err = NewHMACAuthenticator(authCfg)
		case "bearer":
			a, err = NewBearerAuthenticator(authCfg, hasher)
		case "jwt":
			a, err = NewJWTAuthenticator(authCfg.JWT)
		default:
			return nil, fmt.Errorf("unknown authenticator %q", name)
		}
		if err != nil {
			return nil, fmt.Errorf("can't create %s authenticator: %w", name, err)
		}
		authenticators = append(authenticators, namedAuthenticator{name: name, Authenticator: a})
	}
	if len(authenticators) == 0 {
		return nil, errors.New("no authenticators enabled")
	}
	return &MultiAuthenticator{authenticators: authenticators}, nil
}

func (s *MultiAuthenticator) Supports(r *http.Request) bool {
	for _, a := range s.authenticators {
		if a.Supports(r) {
			return true
		}
	}
	return false
}

// Verify does pure auth logic; no writes to ResponseWriter.
func (s *MultiAuthenticator) Verify(r *http.Request) (ports.Principal, error) {
	if r.Header.Get(hdrAuthz) == "" {
		return ports.Principal{}, fmt.Errorf("missing '%s' header: %w", hdrAuthz, ports.ErrInvalidCredentials)
	}
	for _, a := range s.authenticators {
		if a.Supports(r) {
			p, err := a.Verify(r)
			if err != nil {
				return ports.Principal{}, fmt.Errorf("%s: %w", a.name, err)
			}
			return p, nil
		}
	}
	return ports.Principal{}, fmt.Errorf("%w: %w", errSchemeNotSupported, ports.ErrInvalidCredentials)
}

func (s *MultiAuthenticator) WithAuthChi(next http.Handler) http.Handler {
	return withPrincipal(s, next)
}

// withPrincipal verifies the request and passes the principal down the context.
func withPrincipal(a ports.Authenticator, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, err := a.Verify(r)
		if err != nil {
			zerolog.Ctx(r.Context()).Debug().Err(err).Str("api_key", r.Header.Get(hdrAPIKey)).Msg("authentication failed")
			// keep it terse
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(ports.ContextWithPrincipal(r.Context(), p)))
	})
}

// principalForKey builds the principal an access key acts for.
func principalForKey(keyID string, key config.AccessKeyConfig) ports.Principal {
	return ports.Principal{
		UserID:   key.UserID,
		Username: key.Username,
		Admin:    key.Admin,
		KeyID:    keyID,
	}
}

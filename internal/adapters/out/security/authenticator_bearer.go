package security

import (
	"area-api/internal/app/config"
	"area-api/internal/app/ports"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// BearerAuthenticator checks "Authorization: Bearer <secret>" together with X-Api-Key.
// Secrets are configured in clear hex or as crypt(3) hashes.
type BearerAuthenticator struct {
	keys   map[string]config.AccessKeyConfig
	hasher ports.Hasher
}

// Enforce compile-time conformance to the interface
var _ ports.Authenticator = (*BearerAuthenticator)(nil)

const (
	bearerScheme = "Bearer"
)

func NewBearerAuthenticator(authCfg config.AuthenticatorConfig, hasher ports.Hasher) (*BearerAuthenticator, error) {
	keys := make(map[string]config.AccessKeyConfig, len(authCfg.AccessKeys))
	for keyID, key := range authCfg.AccessKeys {
		key.Secret = strings.TrimSpace(key.Secret)
		if key.Secret == "" {
			return nil, errors.New("empty secret for key " + keyID)
		}
		if ports.IsCryptHash(key.Secret) {
			if hasher == nil {
				return nil, errors.New("hashed secret for key " + keyID + " needs a hasher")
			}
		} else if _, err := hex.DecodeString(key.Secret); err != nil {
			return nil, errors.New("invalid hex secret for key " + keyID + ": " + err.Error())
		}
		keys[keyID] = key
	}
	return &BearerAuthenticator{keys: keys, hasher: hasher}, nil
}

// Supports claims bearer requests that name an API key; key-less bearer tokens are JWTs.
func (s *BearerAuthenticator) Supports(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get(hdrAuthz), bearerScheme+" ") && r.Header.Get(hdrAPIKey) != ""
}

// Verify does pure auth logic; no writes to ResponseWriter.
func (s *BearerAuthenticator) Verify(r *http.Request) (ports.Principal, error) {
	apiKey := r.Header.Get(hdrAPIKey)
	authz := r.Header.Get(hdrAuthz)

	if apiKey == "" || authz == "" {
		return ports.Principal{}, fmt.Errorf("missing auth headers: %w", ports.ErrInvalidCredentials)
	}
	key, ok := s.keys[apiKey]
	if !ok {
		return ports.Principal{}, fmt.Errorf("unknown api key: %w", ports.ErrInvalidCredentials)
	}
	if !strings.HasPrefix(authz, bearerScheme+" ") {
		return ports.Principal{}, fmt.Errorf("invalid auth scheme: %w", ports.ErrInvalidCredentials)
	}
	provided := strings.TrimSpace(strings.TrimPrefix(authz, bearerScheme+" "))

	if ports.IsCryptHash(key.Secret) {
		verified, _, err := s.hasher.Verify(key.Secret, provided)
		if err != nil {
			return ports.Principal{}, fmt.Errorf("verify hashed secret: %w", err)
		}
		if !verified {
			return ports.Principal{}, fmt.Errorf("not verified: %w", ports.ErrInvalidCredentials)
		}
	} else if subtle.ConstantTimeCompare([]byte(strings.ToLower(provided)), []byte(strings.ToLower(key.Secret))) != 1 {
		return ports.Principal{}, fmt.Errorf("not verified: %w", ports.ErrInvalidCredentials)
	}
	return principalForKey(apiKey, key), nil
}

func (s *BearerAuthenticator) WithAuthChi(next http.Handler) http.Handler {
	return withPrincipal(s, next)
}

package security

import (
	"area-api/internal/app/config"
	"area-api/internal/app/ports"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTAuthenticator accepts HS256 tokens issued by the platform for its users.
// The subject carries the numeric user id.
type JWTAuthenticator struct {
	secret   []byte
	issuer   string
	audience string
	leeway   time.Duration
}

// Enforce compile-time conformance to the interface
var _ ports.Authenticator = (*JWTAuthenticator)(nil)

// UserClaims is the payload of a platform user token.
type UserClaims struct {
	jwt.RegisteredClaims
	Name  string `json:"name,omitempty"`
	Admin bool   `json:"admin,omitempty"`
}

func NewJWTAuthenticator(cfg config.JWTConfig) (*JWTAuthenticator, error) {
	secret := strings.TrimSpace(cfg.Secret)
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	return &JWTAuthenticator{
		secret:   []byte(secret),
		issuer:   strings.TrimSpace(cfg.Issuer),
		audience: strings.TrimSpace(cfg.Audience),
		leeway:   cfg.Leeway,
	}, nil
}

func (s *JWTAuthenticator) Supports(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get(hdrAuthz), bearerScheme+" ") && r.Header.Get(hdrAPIKey) == ""
}

// Verify does pure auth logic; no writes to ResponseWriter.
func (s *JWTAuthenticator) Verify(r *http.Request) (ports.Principal, error) {
	authz := r.Header.Get(hdrAuthz)
	if !strings.HasPrefix(authz, bearerScheme+" ") {
		return ports.Principal{}, fmt.Errorf("invalid auth scheme: %w", ports.ErrInvalidCredentials)
	}
	token := strings.TrimSpace(strings.TrimPrefix(authz, bearerScheme+" "))

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(s.leeway),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}
	if s.audience != "" {
		opts = append(opts, jwt.WithAudience(s.audience))
	}

	var claims UserClaims
	if _, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, opts...); err != nil {
		return ports.Principal{}, mapJWTError(err)
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return ports.Principal{}, fmt.Errorf("token subject %q is not a user id: %w", claims.Subject, ports.ErrInvalidCredentials)
	}
	return ports.Principal{
		UserID:   userID,
		Username: claims.Name,
		Admin:    claims.Admin,
	}, nil
}

func (s *JWTAuthenticator) WithAuthChi(next http.Handler) http.Handler {
	return withPrincipal(s, next)
}

// IssueToken signs a user token; used by operators and tests.
func (s *JWTAuthenticator) IssueToken(p ports.Principal, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(p.UserID, 10),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Name:  p.Username,
		Admin: p.Admin,
	}
	if s.audience != "" {
		claims.Audience = jwt.ClaimStrings{s.audience}
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// mapJWTError translates jwt library errors to credential errors.
func mapJWTError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("token expired: %w", ports.ErrInvalidCredentials)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return fmt.Errorf("token signature invalid: %w", ports.ErrInvalidCredentials)
	case errors.Is(err, jwt.ErrTokenInvalidIssuer), errors.Is(err, jwt.ErrTokenInvalidAudience):
		return fmt.Errorf("token not meant for this service: %w", ports.ErrInvalidCredentials)
	default:
		return fmt.Errorf("token invalid: %w", ports.ErrInvalidCredentials)
	}
}

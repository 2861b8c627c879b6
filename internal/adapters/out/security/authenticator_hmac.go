package security

import (
	"area-api/internal/app/config"
	"area-api/internal/app/ports"
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type hmacKey struct {
	secret []byte
	key    config.AccessKeyConfig
}

type HMACAuthenticator struct {
	window time.Duration
	// keys maps public key-id -> decoded secret and its user
	keys map[string]hmacKey
}

// Enforce compile-time conformance to the interface
var _ ports.Authenticator = (*HMACAuthenticator)(nil)

const (
	hmacScheme        = "HMAC"
	hmacHdrTimestamp  = "X-Timestamp"
	hmacHdrBodySHA256 = "X-Content-Sha256"
)

// NewHMACAuthenticator loads every hex secret; crypt-hashed secrets cannot sign and are skipped.
func NewHMACAuthenticator(authCfg config.AuthenticatorConfig) (*HMACAuthenticator, error) {
	win := time.Duration(authCfg.WindowSeconds) * time.Second
	if win <= 0 {
		win = 5 * time.Minute
	}

	keys := make(map[string]hmacKey, len(authCfg.AccessKeys))
	for keyID, key := range authCfg.AccessKeys {
		hexSecret := strings.TrimSpace(key.Secret)
		if hexSecret == "" {
			return nil, errors.New("empty secret for key " + keyID)
		}
		if ports.IsCryptHash(hexSecret) {
			continue
		}
		raw, err := hex.DecodeString(hexSecret)
		if err != nil {
			return nil, errors.New("invalid hex secret for key " + keyID + ": " + err.Error())
		}
		keys[keyID] = hmacKey{secret: raw, key: key}
	}

	return &HMACAuthenticator{window: win, keys: keys}, nil
}

func (s *HMACAuthenticator) Supports(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get(hdrAuthz), hmacScheme+" ")
}

// Verify does pure auth logic; no writes to ResponseWriter.
func (s *HMACAuthenticator) Verify(r *http.Request) (ports.Principal, error) {
	apiKey := r.Header.Get(hdrAPIKey)
	authz := r.Header.Get(hdrAuthz)
	tsStr := r.Header.Get(hmacHdrTimestamp)
	bodySHA := r.Header.Get(hmacHdrBodySHA256)

	if apiKey == "" || authz == "" || tsStr == "" || bodySHA == "" {
		return ports.Principal{}, fmt.Errorf("missing auth headers: %w", ports.ErrInvalidCredentials)
	}
	k, ok := s.keys[apiKey]
	if !ok {
		return ports.Principal{}, fmt.Errorf("unknown api key: %w", ports.ErrInvalidCredentials)
	}
	if !strings.HasPrefix(authz, hmacScheme+" ") {
		return ports.Principal{}, fmt.Errorf("invalid auth scheme: %w", ports.ErrInvalidCredentials)
	}
	sigHex := strings.TrimPrefix(authz, hmacScheme+" ")

	// Timestamp window (replay)
	ts, err := time.Parse(time.RFC3339, tsStr)
	if err != nil {
		return ports.Principal{}, fmt.Errorf("bad timestamp: %w", ports.ErrInvalidCredentials)
	}
	if d := time.Now().UTC().Sub(ts); d > s.window || d < -s.window {
		return ports.Principal{}, fmt.Errorf("timestamp outside allowed window: %w", ports.ErrInvalidCredentials)
	}

	// Compute/verify body hash; restore body afterwards
	localHash, err := bodyHashAndRestore(r)
	if err != nil {
		return ports.Principal{}, fmt.Errorf("body read error: %w", err)
	}
	if !strings.EqualFold(bodySHA, localHash) {
		return ports.Principal{}, fmt.Errorf("body hash mismatch: %w", ports.ErrInvalidCredentials)
	}

	// Canonical path: prefer EscapedPath to preserve encoding, avoid Clean()
	pathWithQuery := r.URL.EscapedPath()
	if raw := r.URL.RawQuery; raw != "" {
		pathWithQuery = pathWithQuery + "?" + raw
	}
	canonical := strings.Join([]string{r.Method, pathWithQuery, tsStr, localHash}, "\n")

	mac := hmac.New(sha256.New, k.secret)
	_, _ = mac.Write([]byte(canonical))
	expected := mac.Sum(nil)

	provided, err := hex.DecodeString(sigHex)
	if err != nil {
		return ports.Principal{}, fmt.Errorf("bad signature encoding: %w", ports.ErrInvalidCredentials)
	}
	if !hmac.Equal(provided, expected) {
		return ports.Principal{}, fmt.Errorf("bad signature: %w", ports.ErrInvalidCredentials)
	}
	return principalForKey(apiKey, k.key), nil
}

func (s *HMACAuthenticator) WithAuthChi(next http.Handler) http.Handler {
	return withPrincipal(s, next)
}

func bodyHashAndRestore(r *http.Request) (string, error) {
	var body []byte
	if r.Body != nil {
		b, err := io.ReadAll(r.Body)
		if err != nil {
			return "", err
		}
		body = b
		_ = r.Body.Close()
		r.Body = io.NopCloser(bytes.NewReader(b))
	}
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:]), nil
}

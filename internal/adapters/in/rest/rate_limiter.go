package rest

import (
	"area-api/internal/app/config"
	"crypto/sha256"
	"encoding/hex"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	limiterSweepInterval = 5 * time.Minute
	limiterIdleTTL       = 30 * time.Minute
)

type clientLimiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ClientRateLimiter applies one token bucket per API client.
type ClientRateLimiter struct {
	limit     rate.Limit
	burst     int
	mu        sync.Mutex
	clients   map[string]*clientLimiterEntry
	lastSweep time.Time
	now       func() time.Time
}

// NewClientRateLimiter returns nil when the configured rate is not positive.
func NewClientRateLimiter(cfg config.RateLimitConfig) *ClientRateLimiter {
	if cfg.RequestsPerSecond <= 0 {
		return nil
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	return &ClientRateLimiter{
		limit:     rate.Limit(cfg.RequestsPerSecond),
		burst:     burst,
		clients:   map[string]*clientLimiterEntry{},
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

// Middleware rejects requests over the client's budget with 429.
func (l *ClientRateLimiter) Middleware(next http.Handler) http.Handler {
	if l == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.Allow(r) {
			w.Header().Set("Retry-After", "1")
			writeError(w, http.StatusTooManyRequests, "TooManyRequests", []string{"rate limit exceeded"}, nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (l *ClientRateLimiter) Allow(r *http.Request) bool {
	now := l.now()
	return l.limiterFor(now, clientKey(r)).AllowN(now, 1)
}

func (l *ClientRateLimiter) limiterFor(now time.Time, key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) >= limiterSweepInterval {
		for k, e := range l.clients {
			if now.Sub(e.lastSeen) > limiterIdleTTL {
				delete(l.clients, k)
			}
		}
		l.lastSweep = now
	}

	e, ok := l.clients[key]
	if !ok {
		e = &clientLimiterEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[key] = e
	}
	e.lastSeen = now
	return e.limiter
}

// clientKey identifies the caller by access key, then by credentials, then by address.
func clientKey(r *http.Request) string {
	if key := strings.TrimSpace(r.Header.Get("X-Api-Key")); key != "" {
		return "key:" + key
	}
	if authz := strings.TrimSpace(r.Header.Get("Authorization")); authz != "" {
		sum := sha256.Sum256([]byte(authz))
		return "authz:" + hex.EncodeToString(sum[:])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "addr:" + host
}

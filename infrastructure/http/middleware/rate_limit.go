package middleware

import (
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/TonkaCepo7/INF2-ALP-BOOK/infrastructure/http/response"
	"github.com/TonkaCepo7/INF2-ALP-BOOK/infrastructure/service/logger"
	"github.com/TonkaCepo7/INF2-ALP-BOOK/infrastructure/service/ratelimit"
)

// RateLimitMiddleware throttles authentication endpoints per client IP.
type RateLimitMiddleware struct {
	limiter       ratelimit.Service
	log           logger.Logger
	attempts      int
	window        time.Duration
	blockDuration time.Duration
}

func NewRateLimitMiddleware(
	limiter ratelimit.Service,
	log logger.Logger,
	attempts int,
	window time.Duration,
	blockDuration time.Duration,
) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter:       limiter,
		log:           log,
		attempts:      attempts,
		window:        window,
		blockDuration: blockDuration,
	}
}

// Limit counts every attempt against the client IP and rejects with 429 once
// the limit is exceeded; limiter errors are logged but never block a request.
func (m *RateLimitMiddleware) Limit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		key := "auth:ip:" + clientIP(r)

		blocked, err := m.limiter.IsBlocked(ctx, key)
		if err != nil {
			m.log.Error(ctx, "failed to check block status", err, map[string]interface{}{"key": key})
		}
		if blocked {
			w.Header().Set("Retry-After", "900")
			response.Error(w, http.StatusTooManyRequests, "Too many attempts, try again later")
			return
		}

		allowed, err := m.limiter.CheckLimit(ctx, key, m.attempts, m.window)
		if err != nil {
			m.log.Error(ctx, "failed to check rate limit", err, map[string]interface{}{"key": key})
			allowed = true
		}
		if !allowed {
			if err := m.limiter.Block(ctx, key, m.blockDuration); err != nil {
				m.log.Error(ctx, "failed to block key", err, map[string]interface{}{"key": key})
			}
			w.Header().Set("Retry-After", "900")
			response.Error(w, http.StatusTooManyRequests, "Too many attempts, try again later")
			return
		}

		if err := m.limiter.Increment(ctx, key, m.window); err != nil {
			m.log.Error(ctx, "failed to increment rate limit", err, map[string]interface{}{"key": key})
		}

		next.ServeHTTP(w, r)
	}
}

func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if idx := strings.Index(xff, ","); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

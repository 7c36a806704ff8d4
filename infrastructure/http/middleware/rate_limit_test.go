package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/TonkaCepo7/INF2-ALP-BOOK/infrastructure/service/logger"
)

// stubLimiter counts attempts in memory for middleware tests.
type stubLimiter struct {
	counts     map[string]int
	blockedKey string
	failing    bool
}

func newStubLimiter() *stubLimiter {
	return &stubLimiter{counts: map[string]int{}}
}

func (s *stubLimiter) IsBlocked(ctx context.Context, key string) (bool, error) {
	if s.failing {
		return false, context.DeadlineExceeded
	}
	return key == s.blockedKey, nil
}

// On failure the zero value is returned alongside the error, matching the
// redis-backed implementation.
func (s *stubLimiter) CheckLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	if s.failing {
		return false, context.DeadlineExceeded
	}
	return s.counts[key] < limit, nil
}

func (s *stubLimiter) Increment(ctx context.Context, key string, window time.Duration) error {
	if s.failing {
		return context.DeadlineExceeded
	}
	s.counts[key]++
	return nil
}

func (s *stubLimiter) Block(ctx context.Context, key string, duration time.Duration) error {
	if s.failing {
		return context.DeadlineExceeded
	}
	s.blockedKey = key
	return nil
}

func newLimitHandler(limiter *stubLimiter, attempts int) http.HandlerFunc {
	log := logger.New(logger.Config{Level: "panic", Format: "text", ServiceName: "test"})
	m := NewRateLimitMiddleware(limiter, log, attempts, 15*time.Minute, 30*time.Minute)
	return m.Limit(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func doLogin(handler http.HandlerFunc, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	req.RemoteAddr = ip + ":54321"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("allows requests under the limit", func(t *testing.T) {
		handler := newLimitHandler(newStubLimiter(), 3)

		for i := 0; i < 3; i++ {
			rec := doLogin(handler, "10.0.0.1")
			assert.Equal(t, http.StatusOK, rec.Code)
		}
	})

	t.Run("blocks once the limit is exceeded", func(t *testing.T) {
		limiter := newStubLimiter()
		handler := newLimitHandler(limiter, 3)

		for i := 0; i < 3; i++ {
			doLogin(handler, "10.0.0.1")
		}
		rec := doLogin(handler, "10.0.0.1")

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.JSONEq(t, `{"error":"Too many attempts, try again later"}`, rec.Body.String())
		assert.Equal(t, "900", rec.Header().Get("Retry-After"))
		assert.Equal(t, "auth:ip:10.0.0.1", limiter.blockedKey)
	})

	t.Run("limits are per client ip", func(t *testing.T) {
		handler := newLimitHandler(newStubLimiter(), 3)

		for i := 0; i < 3; i++ {
			doLogin(handler, "10.0.0.1")
		}
		assert.Equal(t, http.StatusTooManyRequests, doLogin(handler, "10.0.0.1").Code)
		assert.Equal(t, http.StatusOK, doLogin(handler, "10.0.0.2").Code)
	})

	t.Run("blocked key stays rejected", func(t *testing.T) {
		limiter := newStubLimiter()
		limiter.blockedKey = "auth:ip:10.0.0.1"
		handler := newLimitHandler(limiter, 3)

		rec := doLogin(handler, "10.0.0.1")

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	})

	t.Run("limiter failure does not reject the request", func(t *testing.T) {
		limiter := newStubLimiter()
		limiter.failing = true
		handler := newLimitHandler(limiter, 3)

		rec := doLogin(handler, "10.0.0.1")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, limiter.blockedKey)
	})
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		expected   string
	}{
		{
			name:       "remote addr only",
			remoteAddr: "192.168.1.5:43210",
			expected:   "192.168.1.5",
		},
		{
			name:       "x-forwarded-for wins",
			remoteAddr: "10.0.0.1:43210",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.7"},
			expected:   "203.0.113.7",
		},
		{
			name:       "first hop of a forwarded chain",
			remoteAddr: "10.0.0.1:43210",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.2"},
			expected:   "203.0.113.7",
		},
		{
			name:       "x-real-ip fallback",
			remoteAddr: "10.0.0.1:43210",
			headers:    map[string]string{"X-Real-IP": "203.0.113.9"},
			expected:   "203.0.113.9",
		},
		{
			name:       "ipv6 remote addr",
			remoteAddr: "[::1]:54321",
			expected:   "::1",
		},
		{
			name:       "remote addr without port",
			remoteAddr: "192.168.1.5",
			expected:   "192.168.1.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.expected, clientIP(req))
		})
	}
}

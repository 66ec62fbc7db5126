package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestLimiter(t *testing.T, capacity int, window time.Duration) (*RateLimiter, *time.Time) {
	t.Helper()
	rl := NewRateLimiter(capacity, window)

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }
	return rl, &now
}

func TestRateLimiter_Allow(t *testing.T) {
	rl, now := newTestLimiter(t, 3, time.Minute)

	for i := 0; i < 3; i++ {
		allowed, _ := rl.Allow("1.2.3.4")
		assert.True(t, allowed, "request %d", i+1)
	}

	allowed, retryAfter := rl.Allow("1.2.3.4")
	assert.False(t, allowed)
	assert.Equal(t, time.Minute, retryAfter)

	// Other clients have their own bucket.
	allowed, _ = rl.Allow("5.6.7.8")
	assert.True(t, allowed)

	*now = now.Add(20 * time.Second)
	_, retryAfter = rl.Allow("1.2.3.4")
	assert.Equal(t, 40*time.Second, retryAfter)

	*now = now.Add(40 * time.Second)
	allowed, _ = rl.Allow("1.2.3.4")
	assert.True(t, allowed)
}

func TestRateLimiter_ZeroLimitRefusesEverything(t *testing.T) {
	rl, _ := newTestLimiter(t, 0, time.Minute)

	allowed, retryAfter := rl.Allow("1.2.3.4")
	assert.False(t, allowed)
	assert.Equal(t, time.Minute, retryAfter)
}

func TestRateLimiter_SweepsIdleKeys(t *testing.T) {
	rl, now := newTestLimiter(t, 1, time.Minute)

	rl.Allow("1.2.3.4")
	*now = now.Add(10 * time.Minute)
	rl.Allow("9.9.9.9")

	*now = now.Add(55 * time.Minute)
	rl.Allow("5.6.7.8")

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.NotContains(t, rl.windows, "1.2.3.4")
	assert.Contains(t, rl.windows, "9.9.9.9")
	assert.Contains(t, rl.windows, "5.6.7.8")
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:5555"
	assert.Equal(t, "10.0.0.1", clientIP(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	assert.Equal(t, "203.0.113.7", clientIP(req))
}

func TestRateLimitMiddleware_RetryAfter(t *testing.T) {
	rl, _ := newTestLimiter(t, 1, 90*time.Second)
	h := RateLimitMiddleware(rl, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/calc/cipher", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/calc/cipher", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "90", w.Header().Get("Retry-After"))
}

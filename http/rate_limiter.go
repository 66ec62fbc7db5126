package http

import (
	"sync"
	"time"
)

// idleWindowTTL is how long a key may go without a request before its window
// is forgotten. Sweeps run at most once per sweepEvery, from inside Allow.
const (
	idleWindowTTL = time.Hour
	sweepEvery    = 30 * time.Minute
)

// keyWindow counts the requests one key made since its window opened.
type keyWindow struct {
	opened time.Time
	used   int
}

// RateLimiter admits up to limit requests per key in each fixed window. A
// key's window opens on its first request and resets once window has passed,
// so a client is never throttled for longer than window.
type RateLimiter struct {
	limit     int
	window    time.Duration
	now       func() time.Time
	mu        sync.Mutex
	windows   map[string]*keyWindow
	lastSweep time.Time
}

// NewRateLimiter returns a limiter allowing limit requests per key per window.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:   limit,
		window:  window,
		now:     time.Now,
		windows: make(map[string]*keyWindow),
	}
}

// Allow records a request for key. A refused request comes back with the time
// left until the key's window resets.
func (r *RateLimiter) Allow(key string) (bool, time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.sweep(now)

	w, ok := r.windows[key]
	if !ok || now.Sub(w.opened) >= r.window {
		w = &keyWindow{opened: now}
		r.windows[key] = w
	}
	if w.used >= r.limit {
		return false, w.opened.Add(r.window).Sub(now)
	}
	w.used++
	return true, 0
}

// sweep drops idle windows. Callers hold r.mu.
func (r *RateLimiter) sweep(now time.Time) {
	if r.lastSweep.IsZero() {
		r.lastSweep = now
		return
	}
	if now.Sub(r.lastSweep) < sweepEvery {
		return
	}
	r.lastSweep = now
	for key, w := range r.windows {
		if now.Sub(w.opened) > idleWindowTTL {
			delete(r.windows, key)
		}
	}
}

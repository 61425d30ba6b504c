package mockapi

import (
	"net/http"
	"sync"
	"time"
)

// throttle is a small per-IP request limiter for the auth routes, enough to
// keep a misbehaving dev loop from hammering login.
type throttle struct {
	mu     sync.Mutex
	counts map[string]int
	limit  int
}

func newThrottle(perMinute int) *throttle {
	t := &throttle{
		counts: make(map[string]int),
		limit:  perMinute,
	}

	go func() {
		for range time.Tick(time.Minute) {
			t.mu.Lock()
			clear(t.counts)
			t.mu.Unlock()
		}
	}()

	return t
}

func (t *throttle) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.mu.Lock()
		t.counts[r.RemoteAddr]++
		over := t.counts[r.RemoteAddr] > t.limit
		t.mu.Unlock()

		if over {
			writeError(w, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests, slow down")
			return
		}
		next.ServeHTTP(w, r)
	})
}

package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// rateWindow counts requests from one client inside the current window.
type rateWindow struct {
	count   int
	resetAt time.Time
}

// RateLimit caps each client IP at limit requests per window. Donation
// submissions and login attempts share the same global cap; there is no
// per-route budget. Counters live in process memory, so each replica
// enforces its own share.
func RateLimit(limit int, window time.Duration) func(http.Handler) http.Handler {
	var mu sync.Mutex
	windows := make(map[string]*rateWindow)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)
			now := time.Now()

			mu.Lock()
			win, ok := windows[ip]
			if !ok || now.After(win.resetAt) {
				win = &rateWindow{resetAt: now.Add(window)}
				windows[ip] = win
			}
			if win.count >= limit {
				mu.Unlock()
				reject(w, http.StatusTooManyRequests, "too many requests, slow down")
				return
			}
			win.count++
			mu.Unlock()

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP resolves the address a window is keyed on: the first valid IP in
// X-Forwarded-For when the SPA reaches us through a proxy, otherwise the
// peer address.
func clientIP(r *http.Request) string {
	if xf := r.Header.Get("X-Forwarded-For"); xf != "" {
		for _, part := range strings.Split(xf, ",") {
			candidate := strings.TrimSpace(part)
			if candidate != "" && net.ParseIP(candidate) != nil {
				return candidate
			}
		}
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		if net.ParseIP(host) != nil {
			return host
		}
	}
	return r.RemoteAddr
}

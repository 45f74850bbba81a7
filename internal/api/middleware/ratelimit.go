package middleware

import (
	"encoding/json"
	"net/http"
)

// Limiter decides whether a request on a route may proceed.
type Limiter interface {
	Allow(route string) bool
}

// RateLimit rejects requests with 429 once route's bucket is empty. route is
// fixed per registration, never taken from the request path.
// A nil limiter disables the check.
func RateLimit(l Limiter, route string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if l == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.Allow(route) {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Retry-After", "1")
				w.WriteHeader(http.StatusTooManyRequests)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "too many requests"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

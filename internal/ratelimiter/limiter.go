package ratelimiter

import (
	"golang.org/x/time/rate"
)

// RouteLimiters holds one token bucket per route, fixed at construction.
// Burst is set equal to the rate so no extra burst capacity is allowed
// beyond the configured per-second maximum.
type RouteLimiters struct {
	limiters map[string]*rate.Limiter
}

// New creates RouteLimiters with ratePerSec tokens per second for each route.
func New(ratePerSec int, routes ...string) *RouteLimiters {
	r := rate.Limit(ratePerSec)
	limiters := make(map[string]*rate.Limiter, len(routes))
	for _, route := range routes {
		limiters[route] = rate.NewLimiter(r, ratePerSec)
	}
	return &RouteLimiters{limiters: limiters}
}

// Allow reports whether a request on route may proceed now. It never blocks.
// Routes not registered in New are not limited.
func (rl *RouteLimiters) Allow(route string) bool {
	l, ok := rl.limiters[route]
	if !ok {
		return true
	}
	return l.Allow()
}

// Routes returns the number of buckets held.
func (rl *RouteLimiters) Routes() int {
	return len(rl.limiters)
}

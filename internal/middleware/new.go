package middleware

import (
	"golang.org/x/time/rate"

	"synctracker/pkg/log"
)

// Default rate limit: generous enough for a personal scheduler, tight
// enough to keep a runaway client from hammering the calendar API.
const (
	DefaultRateLimit = 10 // requests per second
	DefaultBurst     = 20
)

type Middleware struct {
	l       log.Logger
	limiter *rate.Limiter
}

// New creates the shared middleware set. rps<=0 falls back to defaults.
func New(l log.Logger, rps float64, burst int) Middleware {
	if rps <= 0 {
		rps = DefaultRateLimit
	}
	if burst <= 0 {
		burst = DefaultBurst
	}
	return Middleware{
		l:       l,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

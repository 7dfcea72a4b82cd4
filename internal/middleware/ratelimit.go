package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// NewRateLimiter returns a per-client-IP limiter allowing perMinute requests
// in any one-minute window. Excess requests get 429. A perMinute of 0 or
// less disables limiting.
func NewRateLimiter(perMinute int) func(http.Handler) http.Handler {
	if perMinute <= 0 {
		return func(next http.Handler) http.Handler {
			return next
		}
	}
	return httprate.LimitByIP(perMinute, time.Minute)
}

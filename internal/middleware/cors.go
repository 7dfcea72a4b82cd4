// Package middleware provides reusable HTTP middleware for the russia-map API.
package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// corsMaxAge is how long, in seconds, browsers may cache a preflight answer.
const corsMaxAge = 300

// NewCORSHandler returns the cross-origin policy for the map frontend.
// allowedOrigins comes from CORS_ORIGINS and defaults to ["*"], which answers
// every origin with a wildcard Access-Control-Allow-Origin. A deployment that
// serves the frontend from a known host lists full origins instead (scheme +
// host, no trailing slash). Credentials are never allowed, so the wildcard
// stays valid for browsers.
func NewCORSHandler(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         corsMaxAge,
	})
	return c.Handler
}

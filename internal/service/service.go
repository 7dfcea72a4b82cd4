// Package service contains the resource managers of the map backend.
// Services validate raw payloads, apply defaults, enforce invariants
// (parent marker must exist, cascade delete of comments) and orchestrate
// collection reads and mutations. No storage details live here: services
// depend on store.Collection, not on a backend.
package service

import "time"

// timestamp renders the current time as an ISO-8601 string.
func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// valueOr dereferences p, or returns fallback when p is nil.
func valueOr(p *string, fallback string) string {
	if p == nil {
		return fallback
	}
	return *p
}

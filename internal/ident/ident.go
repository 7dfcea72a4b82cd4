// Package ident generates record identifiers.
package ident

import "github.com/google/uuid"

// New returns a random (version 4) UUID rendered as text.
// Collisions are negligible across the lifetime of any store.
func New() string {
	return uuid.NewString()
}

// Package domain contains the core data types for the map markers backend.
// It is imported by every other internal package (store, validate, service,
// handler) and depends on nothing outside the standard library.
package domain

// UnknownCity is stored when a marker is created without a city.
// The value matches what the existing map client sends and displays.
const UnknownCity = "Неизвестный город"

// AnonymousUser is stored when a record is created without a user_id.
const AnonymousUser = "anonymous"

// Marker is a point annotation on the map.
// ID is assigned at creation and never changes. UpdatedAt stays empty until
// the first update.
type Marker struct {
	ID        string  `json:"id"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Comment   string  `json:"comment"`
	Rating    int     `json:"rating"`
	City      string  `json:"city"`
	Timestamp string  `json:"timestamp"`
	UserID    string  `json:"user_id"`
	UpdatedAt string  `json:"updated_at,omitempty"`
}

// MarkerInput is a validated, coerced create payload for a Marker.
// Nil optional fields are filled with defaults by the marker service.
type MarkerInput struct {
	Lat       float64
	Lng       float64
	Comment   string
	Rating    int
	City      *string
	Timestamp *string
	UserID    *string
}

// Patch carries the allow-listed mutable fields of a Marker or Comment.
// Nil means "leave unchanged".
type Patch struct {
	Comment *string
	Rating  *int
}

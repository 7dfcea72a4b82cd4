package domain

// Route is a path traced by a user. Coordinates is kept exactly as the client
// sent it; the backend never inspects its shape.
type Route struct {
	ID          string `json:"id"`
	Coordinates any    `json:"coordinates"`
	UserID      string `json:"user_id"`
	CreatedAt   string `json:"created_at"`
}

// RouteInput is a validated create payload for a Route.
type RouteInput struct {
	Coordinates any
	UserID      *string
	CreatedAt   *string
}

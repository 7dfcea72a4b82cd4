package domain

// Stats is the read-only aggregate returned by GET /api/stats.
// Cities holds each distinct non-empty marker city once.
// AverageRating is 0 when there are no markers.
type Stats struct {
	TotalMarkers  int      `json:"total_markers"`
	TotalComments int      `json:"total_comments"`
	TotalRoutes   int      `json:"total_routes"`
	Cities        []string `json:"cities"`
	AverageRating float64  `json:"average_rating"`
}

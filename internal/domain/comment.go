package domain

// Comment is attached to exactly one Marker through MarkerID.
// The reference is an ID lookup, validated only when the comment is created.
type Comment struct {
	ID        string `json:"id"`
	MarkerID  string `json:"marker_id"`
	Comment   string `json:"comment"`
	Rating    int    `json:"rating"`
	Timestamp string `json:"timestamp"`
	UserID    string `json:"user_id"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// CommentInput is a validated, coerced create payload for a Comment.
// Rating is already defaulted to 0 when absent.
type CommentInput struct {
	Comment   string
	Rating    int
	Timestamp *string
	UserID    *string
}

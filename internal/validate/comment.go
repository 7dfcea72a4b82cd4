package validate

import "github.com/pkordes/russia-map/backend/internal/domain"

// Comment validates a comment create payload.
// Required: comment. Optional: rating (defaults to 0), timestamp, user_id.
func Comment(in domain.RawInput) (domain.CommentInput, error) {
	if err := requirePresent(in, "comment"); err != nil {
		return domain.CommentInput{}, err
	}

	var (
		c   domain.CommentInput
		err error
	)
	if c.Comment, err = text(in, "comment"); err != nil {
		return domain.CommentInput{}, err
	}
	rating, err := optionalInteger(in, "rating")
	if err != nil {
		return domain.CommentInput{}, err
	}
	if rating != nil {
		c.Rating = *rating
	}
	if c.Timestamp, err = optionalText(in, "timestamp"); err != nil {
		return domain.CommentInput{}, err
	}
	if c.UserID, err = optionalText(in, "user_id"); err != nil {
		return domain.CommentInput{}, err
	}
	return c, nil
}

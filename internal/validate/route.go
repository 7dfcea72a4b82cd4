package validate

import "github.com/pkordes/russia-map/backend/internal/domain"

// Route validates a route create payload.
// Required: coordinates, whose shape is not checked. Optional: user_id, created_at.
func Route(in domain.RawInput) (domain.RouteInput, error) {
	if err := requirePresent(in, "coordinates"); err != nil {
		return domain.RouteInput{}, err
	}

	r := domain.RouteInput{Coordinates: in["coordinates"]}
	var err error
	if r.UserID, err = optionalText(in, "user_id"); err != nil {
		return domain.RouteInput{}, err
	}
	if r.CreatedAt, err = optionalText(in, "created_at"); err != nil {
		return domain.RouteInput{}, err
	}
	return r, nil
}

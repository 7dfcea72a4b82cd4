package validate

import "github.com/pkordes/russia-map/backend/internal/domain"

// Marker validates a marker create payload.
// Required, in order: lat, lng, comment, rating. Optional: city, timestamp, user_id.
func Marker(in domain.RawInput) (domain.MarkerInput, error) {
	if err := requirePresent(in, "lat", "lng", "comment", "rating"); err != nil {
		return domain.MarkerInput{}, err
	}

	var (
		m   domain.MarkerInput
		err error
	)
	if m.Lat, err = number(in, "lat"); err != nil {
		return domain.MarkerInput{}, err
	}
	if m.Lng, err = number(in, "lng"); err != nil {
		return domain.MarkerInput{}, err
	}
	if m.Comment, err = text(in, "comment"); err != nil {
		return domain.MarkerInput{}, err
	}
	if m.Rating, err = integer(in, "rating"); err != nil {
		return domain.MarkerInput{}, err
	}
	if m.City, err = optionalText(in, "city"); err != nil {
		return domain.MarkerInput{}, err
	}
	if m.Timestamp, err = optionalText(in, "timestamp"); err != nil {
		return domain.MarkerInput{}, err
	}
	if m.UserID, err = optionalText(in, "user_id"); err != nil {
		return domain.MarkerInput{}, err
	}
	return m, nil
}

// Patch validates an update payload for a marker or comment. Only comment and
// rating are read; every other key is ignored. Both may be absent.
func Patch(in domain.RawInput) (domain.Patch, error) {
	var (
		p   domain.Patch
		err error
	)
	if p.Comment, err = optionalText(in, "comment"); err != nil {
		return domain.Patch{}, err
	}
	if p.Rating, err = optionalInteger(in, "rating"); err != nil {
		return domain.Patch{}, err
	}
	return p, nil
}

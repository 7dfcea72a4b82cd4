package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pkordes/russia-map/backend/internal/domain"
	"github.com/pkordes/russia-map/backend/internal/ident"
	"github.com/pkordes/russia-map/backend/internal/store"
	"github.com/pkordes/russia-map/backend/internal/validate"
)

// MarkerService implements the marker operations.
// It holds the comments collection too because deleting a marker cascades
// into the marker's comments.
type MarkerService struct {
	markers  store.Collection[domain.Marker]
	comments store.Collection[domain.Comment]
}

// NewMarkerService constructs a MarkerService over the given collections.
func NewMarkerService(markers store.Collection[domain.Marker], comments store.Collection[domain.Comment]) *MarkerService {
	return &MarkerService{markers: markers, comments: comments}
}

// Create validates raw, fills defaults (city, timestamp, user_id) and appends
// the new marker. Returns domain.ErrValidation naming the first bad field.
func (s *MarkerService) Create(ctx context.Context, raw domain.RawInput) (domain.Marker, error) {
	in, err := validate.Marker(raw)
	if err != nil {
		return domain.Marker{}, fmt.Errorf("service.MarkerService.Create: %w", err)
	}

	m := domain.Marker{
		ID:        ident.New(),
		Lat:       in.Lat,
		Lng:       in.Lng,
		Comment:   in.Comment,
		Rating:    in.Rating,
		City:      valueOr(in.City, domain.UnknownCity),
		Timestamp: valueOr(in.Timestamp, timestamp()),
		UserID:    valueOr(in.UserID, domain.AnonymousUser),
	}

	err = s.markers.Mutate(ctx, func(records []domain.Marker) ([]domain.Marker, bool, error) {
		return append(records, m), true, nil
	})
	if err != nil {
		return domain.Marker{}, fmt.Errorf("service.MarkerService.Create: %w", err)
	}
	return m, nil
}

// List returns every marker in storage order.
func (s *MarkerService) List(ctx context.Context) ([]domain.Marker, error) {
	markers, err := s.markers.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.MarkerService.List: %w", err)
	}
	return markers, nil
}

// ListByCity returns the markers whose city equals city, ignoring case.
// Always returns a non-nil slice.
func (s *MarkerService) ListByCity(ctx context.Context, city string) ([]domain.Marker, error) {
	markers, err := s.markers.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.MarkerService.ListByCity: %w", err)
	}

	out := []domain.Marker{}
	for _, m := range markers {
		if strings.EqualFold(m.City, city) {
			out = append(out, m)
		}
	}
	return out, nil
}

// GetByID returns a single marker. Returns domain.ErrNotFound if absent.
func (s *MarkerService) GetByID(ctx context.Context, id string) (domain.Marker, error) {
	markers, err := s.markers.Load(ctx)
	if err != nil {
		return domain.Marker{}, fmt.Errorf("service.MarkerService.GetByID: %w", err)
	}
	for _, m := range markers {
		if m.ID == id {
			return m, nil
		}
	}
	return domain.Marker{}, fmt.Errorf("service.MarkerService.GetByID: marker %s: %w", id, domain.ErrNotFound)
}

// Update applies the comment and rating fields of raw to the marker and stamps
// updated_at. Every other field is left alone. Returns domain.ErrNotFound if
// no marker has that id.
func (s *MarkerService) Update(ctx context.Context, id string, raw domain.RawInput) (domain.Marker, error) {
	patch, err := validate.Patch(raw)
	if err != nil {
		return domain.Marker{}, fmt.Errorf("service.MarkerService.Update: %w", err)
	}

	var updated domain.Marker
	err = s.markers.Mutate(ctx, func(records []domain.Marker) ([]domain.Marker, bool, error) {
		for i := range records {
			if records[i].ID != id {
				continue
			}
			if patch.Comment != nil {
				records[i].Comment = *patch.Comment
			}
			if patch.Rating != nil {
				records[i].Rating = *patch.Rating
			}
			records[i].UpdatedAt = timestamp()
			updated = records[i]
			return records, true, nil
		}
		return nil, false, fmt.Errorf("marker %s: %w", id, domain.ErrNotFound)
	})
	if err != nil {
		return domain.Marker{}, fmt.Errorf("service.MarkerService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes the marker and then every comment that references it.
// Deleting an absent id is not an error. The two collections are written one
// after the other, each under its own lock; if the comment write fails the
// marker stays deleted and the storage error is returned.
func (s *MarkerService) Delete(ctx context.Context, id string) error {
	err := s.markers.Mutate(ctx, func(records []domain.Marker) ([]domain.Marker, bool, error) {
		kept := records[:0]
		for _, m := range records {
			if m.ID != id {
				kept = append(kept, m)
			}
		}
		return kept, len(kept) != len(records), nil
	})
	if err != nil {
		return fmt.Errorf("service.MarkerService.Delete: %w", err)
	}

	err = s.comments.Mutate(ctx, func(records []domain.Comment) ([]domain.Comment, bool, error) {
		kept := records[:0]
		for _, c := range records {
			if c.MarkerID != id {
				kept = append(kept, c)
			}
		}
		return kept, len(kept) != len(records), nil
	})
	if err != nil {
		slog.WarnContext(ctx, "marker deleted but comment cascade failed",
			"marker_id", id,
			"error", err,
		)
		return fmt.Errorf("service.MarkerService.Delete: cascade to comments: %w", err)
	}
	return nil
}

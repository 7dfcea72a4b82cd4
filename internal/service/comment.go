package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/pkordes/russia-map/backend/internal/domain"
	"github.com/pkordes/russia-map/backend/internal/ident"
	"github.com/pkordes/russia-map/backend/internal/store"
	"github.com/pkordes/russia-map/backend/internal/validate"
)

// CommentService implements the comment operations.
// It reads the markers collection to verify the parent marker on create.
type CommentService struct {
	markers  store.Collection[domain.Marker]
	comments store.Collection[domain.Comment]
}

// NewCommentService constructs a CommentService over the given collections.
func NewCommentService(markers store.Collection[domain.Marker], comments store.Collection[domain.Comment]) *CommentService {
	return &CommentService{markers: markers, comments: comments}
}

// Create validates raw, verifies the parent marker exists, then appends the
// comment. Returns domain.ErrValidation for a bad payload and
// domain.ErrNotFound if markerID does not name an existing marker.
func (s *CommentService) Create(ctx context.Context, markerID string, raw domain.RawInput) (domain.Comment, error) {
	in, err := validate.Comment(raw)
	if err != nil {
		return domain.Comment{}, fmt.Errorf("service.CommentService.Create: %w", err)
	}

	markers, err := s.markers.Load(ctx)
	if err != nil {
		return domain.Comment{}, fmt.Errorf("service.CommentService.Create: %w", err)
	}
	if !slices.ContainsFunc(markers, func(m domain.Marker) bool { return m.ID == markerID }) {
		return domain.Comment{}, fmt.Errorf("service.CommentService.Create: marker %s: %w", markerID, domain.ErrNotFound)
	}

	c := domain.Comment{
		ID:        ident.New(),
		MarkerID:  markerID,
		Comment:   in.Comment,
		Rating:    in.Rating,
		Timestamp: valueOr(in.Timestamp, timestamp()),
		UserID:    valueOr(in.UserID, domain.AnonymousUser),
	}

	err = s.comments.Mutate(ctx, func(records []domain.Comment) ([]domain.Comment, bool, error) {
		return append(records, c), true, nil
	})
	if err != nil {
		return domain.Comment{}, fmt.Errorf("service.CommentService.Create: %w", err)
	}
	return c, nil
}

// ListByMarker returns the comments of one marker in storage order.
// Always returns a non-nil slice.
func (s *CommentService) ListByMarker(ctx context.Context, markerID string) ([]domain.Comment, error) {
	comments, err := s.comments.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.CommentService.ListByMarker: %w", err)
	}

	out := []domain.Comment{}
	for _, c := range comments {
		if c.MarkerID == markerID {
			out = append(out, c)
		}
	}
	return out, nil
}

// Update applies the comment and rating fields of raw and stamps updated_at.
// Returns domain.ErrNotFound if no comment has that id.
func (s *CommentService) Update(ctx context.Context, id string, raw domain.RawInput) (domain.Comment, error) {
	patch, err := validate.Patch(raw)
	if err != nil {
		return domain.Comment{}, fmt.Errorf("service.CommentService.Update: %w", err)
	}

	var updated domain.Comment
	err = s.comments.Mutate(ctx, func(records []domain.Comment) ([]domain.Comment, bool, error) {
		i := slices.IndexFunc(records, func(c domain.Comment) bool { return c.ID == id })
		if i < 0 {
			return nil, false, fmt.Errorf("comment %s: %w", id, domain.ErrNotFound)
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
	})
	if err != nil {
		return domain.Comment{}, fmt.Errorf("service.CommentService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes a comment. Deleting an absent id is not an error.
func (s *CommentService) Delete(ctx context.Context, id string) error {
	err := s.comments.Mutate(ctx, func(records []domain.Comment) ([]domain.Comment, bool, error) {
		kept := slices.DeleteFunc(records, func(c domain.Comment) bool { return c.ID == id })
		return kept, len(kept) != len(records), nil
	})
	if err != nil {
		return fmt.Errorf("service.CommentService.Delete: %w", err)
	}
	return nil
}

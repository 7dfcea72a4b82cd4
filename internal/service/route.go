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

// RouteService implements the route operations. Routes reference nothing
// else, so it only needs its own collection.
type RouteService struct {
	routes store.Collection[domain.Route]
}

// NewRouteService constructs a RouteService over the routes collection.
func NewRouteService(routes store.Collection[domain.Route]) *RouteService {
	return &RouteService{routes: routes}
}

// Create validates raw, fills defaults (user_id, created_at) and appends the route.
func (s *RouteService) Create(ctx context.Context, raw domain.RawInput) (domain.Route, error) {
	in, err := validate.Route(raw)
	if err != nil {
		return domain.Route{}, fmt.Errorf("service.RouteService.Create: %w", err)
	}

	r := domain.Route{
		ID:          ident.New(),
		Coordinates: in.Coordinates,
		UserID:      valueOr(in.UserID, domain.AnonymousUser),
		CreatedAt:   valueOr(in.CreatedAt, timestamp()),
	}

	err = s.routes.Mutate(ctx, func(records []domain.Route) ([]domain.Route, bool, error) {
		return append(records, r), true, nil
	})
	if err != nil {
		return domain.Route{}, fmt.Errorf("service.RouteService.Create: %w", err)
	}
	return r, nil
}

// List returns every route in storage order.
func (s *RouteService) List(ctx context.Context) ([]domain.Route, error) {
	routes, err := s.routes.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.RouteService.List: %w", err)
	}
	return routes, nil
}

// GetByID returns a single route. Returns domain.ErrNotFound if absent.
func (s *RouteService) GetByID(ctx context.Context, id string) (domain.Route, error) {
	routes, err := s.routes.Load(ctx)
	if err != nil {
		return domain.Route{}, fmt.Errorf("service.RouteService.GetByID: %w", err)
	}
	i := slices.IndexFunc(routes, func(r domain.Route) bool { return r.ID == id })
	if i < 0 {
		return domain.Route{}, fmt.Errorf("service.RouteService.GetByID: route %s: %w", id, domain.ErrNotFound)
	}
	return routes[i], nil
}

// Delete removes a route. Deleting an absent id is not an error.
func (s *RouteService) Delete(ctx context.Context, id string) error {
	err := s.routes.Mutate(ctx, func(records []domain.Route) ([]domain.Route, bool, error) {
		kept := slices.DeleteFunc(records, func(r domain.Route) bool { return r.ID == id })
		return kept, len(kept) != len(records), nil
	})
	if err != nil {
		return fmt.Errorf("service.RouteService.Delete: %w", err)
	}
	return nil
}

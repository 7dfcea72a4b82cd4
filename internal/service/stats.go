package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/pkordes/russia-map/backend/internal/domain"
	"github.com/pkordes/russia-map/backend/internal/store"
)

// StatsService aggregates the three collections. It never writes.
type StatsService struct {
	markers  store.Collection[domain.Marker]
	comments store.Collection[domain.Comment]
	routes   store.Collection[domain.Route]
}

// NewStatsService constructs a StatsService over the given collections.
func NewStatsService(
	markers store.Collection[domain.Marker],
	comments store.Collection[domain.Comment],
	routes store.Collection[domain.Route],
) *StatsService {
	return &StatsService{markers: markers, comments: comments, routes: routes}
}

// Compute loads each collection independently (no lock spans the three loads)
// and returns counts, the distinct non-empty marker cities in sorted order,
// and the mean marker rating (0 with no markers).
func (s *StatsService) Compute(ctx context.Context) (domain.Stats, error) {
	markers, err := s.markers.Load(ctx)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("service.StatsService.Compute: %w", err)
	}
	comments, err := s.comments.Load(ctx)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("service.StatsService.Compute: %w", err)
	}
	routes, err := s.routes.Load(ctx)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("service.StatsService.Compute: %w", err)
	}

	stats := domain.Stats{
		TotalMarkers:  len(markers),
		TotalComments: len(comments),
		TotalRoutes:   len(routes),
		Cities:        []string{},
	}

	seen := make(map[string]struct{})
	sum := 0
	for _, m := range markers {
		sum += m.Rating
		if m.City == "" {
			continue
		}
		if _, ok := seen[m.City]; !ok {
			seen[m.City] = struct{}{}
			stats.Cities = append(stats.Cities, m.City)
		}
	}
	slices.Sort(stats.Cities)

	if len(markers) > 0 {
		stats.AverageRating = float64(sum) / float64(len(markers))
	}
	return stats, nil
}

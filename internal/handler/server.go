// Package handler implements the HTTP JSON API of the russia-map backend.
// All handlers are methods on Server. Methods are split into resource files
// (marker.go, comment.go, etc.) but share the same Server struct so they can
// reach its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/russia-map/backend/internal/domain"
)

// MarkerServicer defines the marker operations the handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching storage.
type MarkerServicer interface {
	Create(ctx context.Context, raw domain.RawInput) (domain.Marker, error)
	List(ctx context.Context) ([]domain.Marker, error)
	ListByCity(ctx context.Context, city string) ([]domain.Marker, error)
	GetByID(ctx context.Context, id string) (domain.Marker, error)
	Update(ctx context.Context, id string, raw domain.RawInput) (domain.Marker, error)
	Delete(ctx context.Context, id string) error
}

// CommentServicer defines the comment operations the handlers depend on.
type CommentServicer interface {
	Create(ctx context.Context, markerID string, raw domain.RawInput) (domain.Comment, error)
	ListByMarker(ctx context.Context, markerID string) ([]domain.Comment, error)
	Update(ctx context.Context, id string, raw domain.RawInput) (domain.Comment, error)
	Delete(ctx context.Context, id string) error
}

// RouteServicer defines the route operations the handlers depend on.
type RouteServicer interface {
	Create(ctx context.Context, raw domain.RawInput) (domain.Route, error)
	List(ctx context.Context) ([]domain.Route, error)
	GetByID(ctx context.Context, id string) (domain.Route, error)
	Delete(ctx context.Context, id string) error
}

// StatsServicer computes the /api/stats summary.
type StatsServicer interface {
	Compute(ctx context.Context) (domain.Stats, error)
}

// Server holds the service dependencies of every endpoint.
type Server struct {
	markers  MarkerServicer
	comments CommentServicer
	routes   RouteServicer
	stats    StatsServicer
}

// NewServer constructs the Server with all its dependencies.
// Tests may pass nil for services they do not exercise.
func NewServer(markers MarkerServicer, comments CommentServicer, routes RouteServicer, stats StatsServicer) *Server {
	return &Server{markers: markers, comments: comments, routes: routes, stats: stats}
}

// Routes returns a chi router with every endpoint registered.
// Cross-cutting middleware (logging, CORS, limits) is applied by the caller.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, codeNotFound, "resource not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, codeBadRequest, "method not allowed")
	})

	r.Get("/", s.GetRoot)
	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route("/api", func(r chi.Router) {
		r.Route("/markers", func(r chi.Router) {
			r.Get("/", s.ListMarkers)
			r.Post("/", s.CreateMarker)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.GetMarker)
				r.Put("/", s.UpdateMarker)
				r.Delete("/", s.DeleteMarker)
				r.Get("/comments", s.ListComments)
				r.Post("/comments", s.CreateComment)
			})
		})
		r.Route("/comments/{id}", func(r chi.Router) {
			r.Put("/", s.UpdateComment)
			r.Delete("/", s.DeleteComment)
		})
		r.Route("/routes", func(r chi.Router) {
			r.Get("/", s.ListRoutes)
			r.Post("/", s.CreateRoute)
			r.Get("/{id}", s.GetRoute)
			r.Delete("/{id}", s.DeleteRoute)
		})
		r.Get("/cities/{city}/markers", s.ListMarkersByCity)
		r.Get("/stats", s.GetStats)
	})
	return r
}

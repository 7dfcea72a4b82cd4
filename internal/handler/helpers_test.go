package handler_test

import (
	"bytes"
	"context"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/russia-map/backend/internal/domain"
	"github.com/pkordes/russia-map/backend/internal/handler"
)

// ---- mock MarkerServicer ---------------------------------------------------

type mockMarkerServicer struct {
	create     func(ctx context.Context, raw domain.RawInput) (domain.Marker, error)
	list       func(ctx context.Context) ([]domain.Marker, error)
	listByCity func(ctx context.Context, city string) ([]domain.Marker, error)
	getByID    func(ctx context.Context, id string) (domain.Marker, error)
	update     func(ctx context.Context, id string, raw domain.RawInput) (domain.Marker, error)
	delete     func(ctx context.Context, id string) error
}

func (m *mockMarkerServicer) Create(ctx context.Context, raw domain.RawInput) (domain.Marker, error) {
	return m.create(ctx, raw)
}
func (m *mockMarkerServicer) List(ctx context.Context) ([]domain.Marker, error) {
	return m.list(ctx)
}
func (m *mockMarkerServicer) ListByCity(ctx context.Context, city string) ([]domain.Marker, error) {
	return m.listByCity(ctx, city)
}
func (m *mockMarkerServicer) GetByID(ctx context.Context, id string) (domain.Marker, error) {
	return m.getByID(ctx, id)
}
func (m *mockMarkerServicer) Update(ctx context.Context, id string, raw domain.RawInput) (domain.Marker, error) {
	return m.update(ctx, id, raw)
}
func (m *mockMarkerServicer) Delete(ctx context.Context, id string) error {
	return m.delete(ctx, id)
}

// compile-time check: mockMarkerServicer must satisfy handler.MarkerServicer.
var _ handler.MarkerServicer = (*mockMarkerServicer)(nil)

// ---- mock CommentServicer --------------------------------------------------

type mockCommentServicer struct {
	create       func(ctx context.Context, markerID string, raw domain.RawInput) (domain.Comment, error)
	listByMarker func(ctx context.Context, markerID string) ([]domain.Comment, error)
	update       func(ctx context.Context, id string, raw domain.RawInput) (domain.Comment, error)
	delete       func(ctx context.Context, id string) error
}

func (m *mockCommentServicer) Create(ctx context.Context, markerID string, raw domain.RawInput) (domain.Comment, error) {
	return m.create(ctx, markerID, raw)
}
func (m *mockCommentServicer) ListByMarker(ctx context.Context, markerID string) ([]domain.Comment, error) {
	return m.listByMarker(ctx, markerID)
}
func (m *mockCommentServicer) Update(ctx context.Context, id string, raw domain.RawInput) (domain.Comment, error) {
	return m.update(ctx, id, raw)
}
func (m *mockCommentServicer) Delete(ctx context.Context, id string) error {
	return m.delete(ctx, id)
}

// compile-time check: mockCommentServicer must satisfy handler.CommentServicer.
var _ handler.CommentServicer = (*mockCommentServicer)(nil)

// ---- mock RouteServicer ----------------------------------------------------

type mockRouteServicer struct {
	create  func(ctx context.Context, raw domain.RawInput) (domain.Route, error)
	list    func(ctx context.Context) ([]domain.Route, error)
	getByID func(ctx context.Context, id string) (domain.Route, error)
	delete  func(ctx context.Context, id string) error
}

func (m *mockRouteServicer) Create(ctx context.Context, raw domain.RawInput) (domain.Route, error) {
	return m.create(ctx, raw)
}
func (m *mockRouteServicer) List(ctx context.Context) ([]domain.Route, error) {
	return m.list(ctx)
}
func (m *mockRouteServicer) GetByID(ctx context.Context, id string) (domain.Route, error) {
	return m.getByID(ctx, id)
}
func (m *mockRouteServicer) Delete(ctx context.Context, id string) error {
	return m.delete(ctx, id)
}

// compile-time check: mockRouteServicer must satisfy handler.RouteServicer.
var _ handler.RouteServicer = (*mockRouteServicer)(nil)

// ---- mock StatsServicer ----------------------------------------------------

type mockStatsServicer struct {
	compute func(ctx context.Context) (domain.Stats, error)
}

func (m *mockStatsServicer) Compute(ctx context.Context) (domain.Stats, error) {
	return m.compute(ctx)
}

// compile-time check: mockStatsServicer must satisfy handler.StatsServicer.
var _ handler.StatsServicer = (*mockStatsServicer)(nil)

// ---- helpers ---------------------------------------------------------------

// serve runs one request through a Server built from the given mocks.
// Pass nil for services the test does not use. body may be a string
// (sent verbatim) or any value (sent as JSON); nil sends no body.
func serve(t *testing.T, srv *handler.Server, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, target, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)
	return rec
}

// decode unmarshals the recorded response body into a value of type T.
func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
	return v
}

// requireError asserts the status and the error code of an error response.
func requireError(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) handler.ErrorDetail {
	t.Helper()
	require.Equal(t, status, rec.Code, "body: %s", rec.Body.String())
	body := decode[handler.ErrorResponse](t, rec)
	require.Equal(t, code, body.Error.Code)
	return body.Error
}

func markerFixture(id string) domain.Marker {
	return domain.Marker{
		ID:        id,
		Lat:       55.7558,
		Lng:       37.6173,
		Comment:   "Красная площадь",
		Rating:    5,
		City:      "Москва",
		Timestamp: "2025-05-01T10:00:00Z",
		UserID:    domain.AnonymousUser,
	}
}

// errStorage stands in for a store failure surfaced through a service.
var errStorage = fmt.Errorf("service: %w: disk full", domain.ErrIO)

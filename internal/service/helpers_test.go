package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/pkordes/russia-map/backend/internal/domain"
	"github.com/pkordes/russia-map/backend/internal/store"
	"github.com/pkordes/russia-map/backend/testutil"
)

// ---- mock collection -------------------------------------------------------

// mockCollection is a hand-written test double for store.Collection.
// Set only the method fields your test needs.
type mockCollection[T any] struct {
	load   func(ctx context.Context) ([]T, error)
	save   func(ctx context.Context, records []T) error
	mutate func(ctx context.Context, fn store.MutateFunc[T]) error
}

func (m *mockCollection[T]) Name() string { return "mock" }
func (m *mockCollection[T]) Load(ctx context.Context) ([]T, error) {
	return m.load(ctx)
}
func (m *mockCollection[T]) Save(ctx context.Context, records []T) error {
	return m.save(ctx, records)
}
func (m *mockCollection[T]) Mutate(ctx context.Context, fn store.MutateFunc[T]) error {
	return m.mutate(ctx, fn)
}

// compile-time check: mockCollection must satisfy store.Collection.
var _ store.Collection[domain.Marker] = (*mockCollection[domain.Marker])(nil)

// errDisk stands in for a storage failure surfaced by the store.
var errDisk = fmt.Errorf("%w: disk full", domain.ErrIO)

// failingCollection returns a mock whose every operation fails with errDisk.
func failingCollection[T any]() *mockCollection[T] {
	return &mockCollection[T]{
		load:   func(context.Context) ([]T, error) { return nil, errDisk },
		save:   func(context.Context, []T) error { return errDisk },
		mutate: func(context.Context, store.MutateFunc[T]) error { return errDisk },
	}
}

// ---- real collections ------------------------------------------------------

// collections bundles the three collections of one temp-dir store.
type collections struct {
	markers  store.Collection[domain.Marker]
	comments store.Collection[domain.Comment]
	routes   store.Collection[domain.Route]
}

func newCollections(t *testing.T) collections {
	t.Helper()
	s, _ := testutil.NewTempStore(t)
	return collections{
		markers:  store.NewCollection[domain.Marker](s, store.Markers),
		comments: store.NewCollection[domain.Comment](s, store.Comments),
		routes:   store.NewCollection[domain.Route](s, store.Routes),
	}
}

func markerInput(city string, rating int) domain.RawInput {
	in := domain.RawInput{"lat": 55.75, "lng": 37.62, "comment": "метка", "rating": float64(rating)}
	if city != "" {
		in["city"] = city
	}
	return in
}

func isValidationOn(err error, field string) bool {
	var ve *domain.ValidationError
	return errors.As(err, &ve) && ve.Field == field
}

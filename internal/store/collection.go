package store

import (
	"context"
	"fmt"
)

// MutateFunc receives the current records of a collection and returns the
// records to persist. Returning write=false skips the save entirely; returning
// an error aborts the mutation and is passed through to the caller unchanged.
type MutateFunc[T any] func(records []T) (next []T, write bool, err error)

// Collection is a typed view of one named collection in a Store.
// Services depend on this interface, not on Store, so they can be unit-tested
// with a hand-written double.
type Collection[T any] interface {
	// Name returns the collection name.
	Name() string

	// Load returns all records in storage order. Never-written collections are empty.
	Load(ctx context.Context) ([]T, error)

	// Save replaces the whole collection.
	Save(ctx context.Context, records []T) error

	// Mutate runs load, fn and save as one step under the collection's write lock.
	Mutate(ctx context.Context, fn MutateFunc[T]) error
}

type collection[T any] struct {
	store *Store
	name  string
}

// NewCollection returns the Collection named name backed by s.
func NewCollection[T any](s *Store, name string) Collection[T] {
	return &collection[T]{store: s, name: name}
}

func (c *collection[T]) Name() string { return c.name }

func (c *collection[T]) Load(ctx context.Context) ([]T, error) {
	return Load[T](ctx, c.store, c.name)
}

func (c *collection[T]) Save(ctx context.Context, records []T) error {
	return Save(ctx, c.store, c.name, records)
}

func (c *collection[T]) Mutate(ctx context.Context, fn MutateFunc[T]) error {
	unlock := c.store.lock(c.name)
	defer unlock()

	records, err := Load[T](ctx, c.store, c.name)
	if err != nil {
		return fmt.Errorf("store.Collection.Mutate: %w", err)
	}

	next, write, err := fn(records)
	if err != nil {
		return err
	}
	if !write {
		return nil
	}

	if err := save(ctx, c.store, c.name, next); err != nil {
		return fmt.Errorf("store.Collection.Mutate: %w", err)
	}
	return nil
}

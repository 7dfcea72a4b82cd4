// Package store persists named collections of records as whole documents.
// Each collection (markers, comments, routes) is read and replaced in full;
// a Backend decides where the document lives (JSON file, badger, Postgres).
//
// Store serialises every load-modify-save sequence per collection name so that
// concurrent mutations of the same collection never lose an update. Plain
// loads take no lock: every Backend replaces a document atomically, so a
// reader sees either the old or the new collection, never a partial one.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/pkordes/russia-map/backend/internal/domain"
	"github.com/pkordes/russia-map/backend/internal/metrics"
)

// Collection names used by the services.
const (
	Markers  = "markers"
	Comments = "comments"
	Routes   = "routes"
)

// ErrNotExist is returned by Backend.Read when a collection has never been written.
// Store turns it into an empty collection; it never reaches callers of Load.
var ErrNotExist = errors.New("collection does not exist")

// Backend is the durable medium behind a Store.
type Backend interface {
	// Read returns the stored document for name, or ErrNotExist.
	Read(ctx context.Context, name string) ([]byte, error)

	// Write replaces the document for name. A concurrent Read must observe
	// either the previous or the new document in full.
	Write(ctx context.Context, name string, doc []byte) error

	// Close releases the medium.
	Close() error
}

// Store wraps a Backend with per-collection write locks and encoding.
type Store struct {
	backend Backend
	locks   *xsync.MapOf[string, *sync.Mutex]
}

// New constructs a Store over backend.
func New(backend Backend) *Store {
	return &Store{
		backend: backend,
		locks:   xsync.NewMapOf[string, *sync.Mutex](),
	}
}

// lock acquires the write lock of collection name and returns its release func.
func (s *Store) lock(name string) func() {
	mu, _ := s.locks.LoadOrCompute(name, func() *sync.Mutex { return &sync.Mutex{} })
	mu.Lock()
	return mu.Unlock
}

// Init writes an empty document for every named collection that does not exist yet.
// Existing collections, readable or not, are left untouched.
func (s *Store) Init(ctx context.Context, names ...string) error {
	for _, name := range names {
		if err := s.initOne(ctx, name); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) initOne(ctx context.Context, name string) error {
	unlock := s.lock(name)
	defer unlock()

	_, err := s.backend.Read(ctx, name)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotExist):
		return save(ctx, s, name, []json.RawMessage{})
	default:
		return fmt.Errorf("store.Init %s: %w: %w", name, domain.ErrIO, err)
	}
}

// Close closes the underlying Backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

// Load returns the records of collection name in storage order.
// A collection that was never written yields an empty, non-nil slice.
// A document that exists but cannot be read or decoded yields domain.ErrIO.
func Load[T any](ctx context.Context, s *Store, name string) (records []T, err error) {
	start := time.Now()
	defer func() { metrics.RecordStoreOperation("load", name, len(records), time.Since(start), err) }()

	doc, err := s.backend.Read(ctx, name)
	if errors.Is(err, ErrNotExist) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store.Load %s: %w: %w", name, domain.ErrIO, err)
	}

	if err := json.Unmarshal(doc, &records); err != nil {
		return nil, fmt.Errorf("store.Load %s: decode: %w: %w", name, domain.ErrIO, err)
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// Save replaces collection name with records. It takes the collection's write
// lock, so it must not be called from inside Collection.Mutate.
func Save[T any](ctx context.Context, s *Store, name string, records []T) error {
	unlock := s.lock(name)
	defer unlock()
	return save(ctx, s, name, records)
}

// save encodes and writes records. Callers hold the lock for name.
func save[T any](ctx context.Context, s *Store, name string, records []T) (err error) {
	start := time.Now()
	defer func() { metrics.RecordStoreOperation("save", name, len(records), time.Since(start), err) }()

	if records == nil {
		records = []T{}
	}
	doc, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("store.Save %s: encode: %w: %w", name, domain.ErrIO, err)
	}
	if err := s.backend.Write(ctx, name, append(doc, '\n')); err != nil {
		return fmt.Errorf("store.Save %s: %w: %w", name, domain.ErrIO, err)
	}
	return nil
}

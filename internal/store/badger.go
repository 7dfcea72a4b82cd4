package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// collectionKeyPrefix namespaces collection documents inside the badger keyspace.
const collectionKeyPrefix = "collection:"

// BadgerBackend keeps each collection document under one badger key.
// Every Write is a single badger transaction.
type BadgerBackend struct {
	db *badger.DB
}

// OpenBadger opens (or creates) a badger database in dir.
func OpenBadger(dir string) (*BadgerBackend, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // badger's own logger is noisy on startup

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("store.OpenBadger: %w", err)
	}
	return NewBadgerBackend(db), nil
}

// NewBadgerBackend wraps an already opened database. The backend takes
// ownership: Close closes db.
func NewBadgerBackend(db *badger.DB) *BadgerBackend {
	return &BadgerBackend{db: db}
}

// Read returns the document for name, or ErrNotExist.
func (b *BadgerBackend) Read(_ context.Context, name string) ([]byte, error) {
	var doc []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(collectionKeyPrefix + name))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotExist
		}
		if err != nil {
			return err
		}
		doc, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Write replaces the document for name.
func (b *BadgerBackend) Write(_ context.Context, name string, doc []byte) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(collectionKeyPrefix+name), doc)
	})
}

// Close closes the badger database.
func (b *BadgerBackend) Close() error {
	return b.db.Close()
}

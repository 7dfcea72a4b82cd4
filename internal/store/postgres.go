package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the minimal interface satisfied by *pgxpool.Pool, pgx.Tx and
// pgxmock pools. Accepting it instead of *pgxpool.Pool lets unit tests drive
// the backend with pgxmock and integration tests with a rolled-back transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresBackend keeps each collection document in one row of the
// collections table (see migrations). A Write is a single upsert statement.
type PostgresBackend struct {
	db Querier
}

// NewPostgresBackend constructs a PostgresBackend. The caller owns db and
// closes it; Close on the backend does nothing.
func NewPostgresBackend(db Querier) *PostgresBackend {
	return &PostgresBackend{db: db}
}

// Read returns the document for name, or ErrNotExist when no row exists.
func (b *PostgresBackend) Read(ctx context.Context, name string) ([]byte, error) {
	const q = `SELECT records FROM collections WHERE name = $1`

	var doc []byte
	if err := b.db.QueryRow(ctx, q, name).Scan(&doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotExist
		}
		return nil, err
	}
	return doc, nil
}

// Write upserts the document for name.
func (b *PostgresBackend) Write(ctx context.Context, name string, doc []byte) error {
	const q = `
		INSERT INTO collections (name, records, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (name) DO UPDATE
		SET records    = EXCLUDED.records,
		    updated_at = now()`

	_, err := b.db.Exec(ctx, q, name, string(doc))
	return err
}

// Close is a no-op; the pool is closed by its owner.
func (b *PostgresBackend) Close() error { return nil }

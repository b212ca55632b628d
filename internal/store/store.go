// Package store defines the persistence contract for record variants and
// provides the Postgres and in-memory implementations.
package store

import (
	"context"
	"errors"

	"github.com/pautaops/pauta/internal/record"
)

// ErrNotFound marks lookups and mutations that matched no record. Callers
// distinguish it from communication/storage failures with errors.Is.
var ErrNotFound = errors.New("record not found")

// Store is the storage collaborator contract for one record variant.
// Implementations speak application-shape records on the surface and run
// the storage codec internally, so every returned record is already
// normalized (defaults applied, no NULLs).
type Store interface {
	// GetAll returns all records, newest first.
	GetAll(ctx context.Context) ([]record.Record, error)

	// GetByID returns the record with the given identity key, or ErrNotFound.
	GetByID(ctx context.Context, id string) (record.Record, error)

	// Create inserts a record. The identity key is supplied by the caller;
	// storage assigns timestamps and echoes the authoritative row back.
	Create(ctx context.Context, rec record.Record) (record.Record, error)

	// Update applies a partial record to the row with the given identity key
	// and returns the authoritative post-write record.
	Update(ctx context.Context, id string, partial record.Record) (record.Record, error)

	// Delete removes the record with the given identity key.
	Delete(ctx context.Context, id string) error

	// ImportMany bulk-inserts records and returns the persisted set. Row
	// level atomicity is at this layer's discretion.
	ImportMany(ctx context.Context, recs []record.Record) ([]record.Record, error)
}

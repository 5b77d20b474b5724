package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/attrd/internal/domain/record"
)

// RecordStore defines the storage port for records.
// Implemented by store adapters; called by the application layer.
// Records passed in and returned are copies: mutating them never changes
// stored state.
type RecordStore interface {
	// Create stores a new record.
	// Returns domain.ErrConflict if a record with the same ID exists.
	Create(ctx context.Context, r *record.Record) error

	// Get returns a single record by ID.
	// Returns domain.ErrNotFound if the record does not exist.
	Get(ctx context.Context, id uuid.UUID) (*record.Record, error)

	// List returns the records of a schema ordered by creation time.
	List(ctx context.Context, schema string) ([]*record.Record, error)

	// Update applies fn to a copy of the record while holding the record
	// exclusively, and stores the copy only if fn returns nil. Concurrent
	// updates of one record are serialized.
	// Returns domain.ErrNotFound if the record does not exist.
	Update(ctx context.Context, id uuid.UUID, fn func(*record.Record) error) (*record.Record, error)

	// Delete removes a record by ID.
	// Returns domain.ErrNotFound if the record does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

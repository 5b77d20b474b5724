package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/attrd/internal/domain/attr"
	"github.com/jsamuelsen11/attrd/internal/domain/coerce"
	"github.com/jsamuelsen11/attrd/internal/domain/record"
)

// SchemaService defines the service port for reading configured schemas.
type SchemaService interface {
	// ListSchemas returns every schema ordered by name.
	ListSchemas(ctx context.Context) ([]*attr.Schema, error)

	// GetSchema returns a schema by name.
	// Returns domain.ErrNotFound if the schema does not exist.
	GetSchema(ctx context.Context, name string) (*attr.Schema, error)
}

// RecordService defines the service port for record operations.
// Implemented by the application layer; called by inbound adapters (handlers).
// Attribute writes are all-or-nothing per call: if one value is rejected,
// nothing is stored.
type RecordService interface {
	// CreateRecord creates a record of the named schema from raw values.
	// Returns domain.ErrNotFound if the schema does not exist,
	// domain.ErrValidation for unknown attributes and
	// domain.ErrCoercion if a value is rejected.
	CreateRecord(ctx context.Context, schema string, values map[string]any) (*WriteResult, error)

	// GetRecord returns a single record by ID.
	// Returns domain.ErrNotFound if the record does not exist.
	GetRecord(ctx context.Context, id uuid.UUID) (*record.Record, error)

	// ListRecords returns the records of a schema.
	// Returns domain.ErrNotFound if the schema does not exist.
	ListRecords(ctx context.Context, schema string) ([]*record.Record, error)

	// UpdateRecord writes raw values to an existing record.
	// Errors are those of CreateRecord, plus domain.ErrNotFound for a
	// missing record.
	UpdateRecord(ctx context.Context, id uuid.UUID, values map[string]any) (*WriteResult, error)

	// DeleteRecord deletes a record.
	// Returns domain.ErrNotFound if the record does not exist.
	DeleteRecord(ctx context.Context, id uuid.UUID) error
}

// WriteResult is a stored record and the attributes of the write that fell
// back to a substituted value.
type WriteResult struct {
	Record    *record.Record
	Fallbacks []string
}

// CoercionService defines the service port for stateless batch coercion.
type CoercionService interface {
	// Coerce converts each item independently. Per-item failures are
	// reported in the matching CoercionOutcome. A hard error is returned only
	// for request-level failures such as an oversized batch.
	Coerce(ctx context.Context, items []CoercionItem) ([]CoercionOutcome, error)
}

// CoercionItem is one raw value and the tag to convert it to.
type CoercionItem struct {
	Tag   coerce.Tag
	Value any
}

// CoercionOutcome is the result for the item at the same index.
type CoercionOutcome struct {
	Value    any
	Fallback bool
	Err      error
}

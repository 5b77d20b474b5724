// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/attrd/internal/domain"
	"github.com/jsamuelsen11/attrd/internal/domain/attr"
	"github.com/jsamuelsen11/attrd/internal/domain/record"
	"github.com/jsamuelsen11/attrd/internal/ports"
)

// Compile-time check that RecordService implements ports.RecordService.
var _ ports.RecordService = (*RecordService)(nil)

// RecordService implements ports.RecordService. It resolves schemas through
// the catalog, routes attribute writes through the binder, and persists
// records through the RecordStore port.
type RecordService struct {
	catalog *attr.Catalog
	store   ports.RecordStore
	logger  *slog.Logger
	now     func() time.Time
}

// NewRecordService creates a RecordService. A nil logger disables logging.
func NewRecordService(catalog *attr.Catalog, store ports.RecordStore, logger *slog.Logger) *RecordService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &RecordService{
		catalog: catalog,
		store:   store,
		logger:  logger,
		now:     time.Now,
	}
}

// CreateRecord builds a new object of the schema, writes every value to it
// and stores it. Nothing is stored if any write is rejected.
func (s *RecordService) CreateRecord(ctx context.Context, schema string, values map[string]any) (*ports.WriteResult, error) {
	s.logger.InfoContext(ctx, "creating record",
		slog.String("schema", schema),
		slog.Int("attributes", len(values)),
	)

	sch, err := s.catalog.Lookup(schema)
	if err != nil {
		return nil, err
	}

	obj := sch.New()
	fallbacks, err := applyValues(ctx, obj, values)
	if err != nil {
		s.logger.WarnContext(ctx, "record write rejected",
			slog.String("operation", "CreateRecord"),
			slog.String("schema", schema),
			slog.Any("error", err),
		)
		return nil, err
	}

	r := record.New(obj, s.now().UTC())
	if err := s.store.Create(ctx, r); err != nil {
		s.logger.ErrorContext(ctx, "failed to store record",
			slog.String("operation", "CreateRecord"),
			slog.String("schema", schema),
			slog.String("id", r.ID.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	return &ports.WriteResult{Record: r, Fallbacks: fallbacks}, nil
}

// GetRecord returns a single record by ID.
func (s *RecordService) GetRecord(ctx context.Context, id uuid.UUID) (*record.Record, error) {
	s.logger.InfoContext(ctx, "fetching record", slog.String("id", id.String()))

	r, err := s.store.Get(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch record",
			slog.String("operation", "GetRecord"),
			slog.String("id", id.String()),
			slog.Any("error", err),
		)
		return nil, err
	}
	return r, nil
}

// ListRecords returns the records of a schema.
func (s *RecordService) ListRecords(ctx context.Context, schema string) ([]*record.Record, error) {
	s.logger.InfoContext(ctx, "listing records", slog.String("schema", schema))

	if _, err := s.catalog.Lookup(schema); err != nil {
		return nil, err
	}

	records, err := s.store.List(ctx, schema)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list records",
			slog.String("operation", "ListRecords"),
			slog.String("schema", schema),
			slog.Any("error", err),
		)
		return nil, err
	}
	return records, nil
}

// UpdateRecord writes values to a copy of the stored record and replaces it
// only if every write is accepted.
func (s *RecordService) UpdateRecord(ctx context.Context, id uuid.UUID, values map[string]any) (*ports.WriteResult, error) {
	s.logger.InfoContext(ctx, "updating record",
		slog.String("id", id.String()),
		slog.Int("attributes", len(values)),
	)

	if len(values) == 0 {
		return nil, &domain.ValidationError{Fields: map[string]string{"attributes": "at least one attribute is required"}}
	}

	var fallbacks []string
	updated, err := s.store.Update(ctx, id, func(r *record.Record) error {
		var err error
		fallbacks, err = applyValues(ctx, r.Object, values)
		if err != nil {
			return err
		}
		r.UpdatedAt = s.now().UTC()
		return nil
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update record",
			slog.String("operation", "UpdateRecord"),
			slog.String("id", id.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	return &ports.WriteResult{Record: updated, Fallbacks: fallbacks}, nil
}

// DeleteRecord deletes a record.
func (s *RecordService) DeleteRecord(ctx context.Context, id uuid.UUID) error {
	s.logger.InfoContext(ctx, "deleting record", slog.String("id", id.String()))

	if err := s.store.Delete(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete record",
			slog.String("operation", "DeleteRecord"),
			slog.String("id", id.String()),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// applyValues writes values in attribute-name order and stops at the first
// rejected write. It returns the names of attributes that fell back.
func applyValues(ctx context.Context, obj *attr.Object, values map[string]any) ([]string, error) {
	var fallbacks []string
	for _, name := range slices.Sorted(maps.Keys(values)) {
		res, err := obj.Apply(ctx, name, values[name])
		if err != nil {
			return nil, err
		}
		if res.Fallback {
			fallbacks = append(fallbacks, name)
		}
	}
	return fallbacks, nil
}

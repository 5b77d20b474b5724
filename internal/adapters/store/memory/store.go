// Package memory implements the record store port in process memory.
package memory

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/attrd/internal/domain"
	"github.com/jsamuelsen11/attrd/internal/domain/record"
	"github.com/jsamuelsen11/attrd/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.RecordStore   = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// Store keeps records in a map guarded by a sync.RWMutex. Records are cloned
// on the way in and on the way out, so attribute objects held by the store
// are only ever written under its lock.
type Store struct {
	logger *slog.Logger

	mu      sync.RWMutex
	records map[uuid.UUID]*record.Record
}

// New returns an empty Store. A nil logger disables logging.
func New(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{
		logger:  logger,
		records: make(map[uuid.UUID]*record.Record),
	}
}

// Create implements ports.RecordStore.
func (s *Store) Create(ctx context.Context, r *record.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := r.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[r.ID]; ok {
		return &conflictError{id: r.ID}
	}
	s.records[r.ID] = r.Clone()
	s.logger.DebugContext(ctx, "record stored",
		slog.String("id", r.ID.String()),
		slog.String("schema", r.Schema),
	)
	return nil
}

// Get implements ports.RecordStore.
func (s *Store) Get(ctx context.Context, id uuid.UUID) (*record.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.records[id]
	if !ok {
		return nil, notFound(id)
	}
	return r.Clone(), nil
}

// List implements ports.RecordStore.
func (s *Store) List(ctx context.Context, schema string) ([]*record.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	out := make([]*record.Record, 0)
	for _, r := range s.records {
		if r.Schema == schema {
			out = append(out, r.Clone())
		}
	}
	s.mu.RUnlock()

	slices.SortFunc(out, func(a, b *record.Record) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID.String(), b.ID.String())
	})
	return out, nil
}

// Update implements ports.RecordStore.
func (s *Store) Update(ctx context.Context, id uuid.UUID, fn func(*record.Record) error) (*record.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.records[id]
	if !ok {
		return nil, notFound(id)
	}

	next := current.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}
	next.ID = current.ID
	next.Schema = current.Schema
	next.CreatedAt = current.CreatedAt
	if err := next.Validate(); err != nil {
		return nil, err
	}

	s.records[id] = next
	return next.Clone(), nil
}

// Delete implements ports.RecordStore.
func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return notFound(id)
	}
	delete(s.records, id)
	return nil
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func notFound(id uuid.UUID) error {
	return &domain.NotFoundError{Kind: "record", Key: id.String()}
}

type conflictError struct {
	id uuid.UUID
}

func (e *conflictError) Error() string {
	return "record " + e.id.String() + " already exists: " + domain.ErrConflict.Error()
}

func (e *conflictError) Unwrap() error {
	return domain.ErrConflict
}

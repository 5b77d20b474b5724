package app

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/attrd/internal/domain/attr"
	"github.com/jsamuelsen11/attrd/internal/domain/coerce"
	"github.com/jsamuelsen11/attrd/internal/domain/record"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// mockRecordStore is a testify mock of ports.RecordStore.
type mockRecordStore struct {
	mock.Mock
}

func (m *mockRecordStore) Create(ctx context.Context, r *record.Record) error {
	return m.Called(ctx, r).Error(0)
}

func (m *mockRecordStore) Get(ctx context.Context, id uuid.UUID) (*record.Record, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*record.Record)
	return r, args.Error(1)
}

func (m *mockRecordStore) List(ctx context.Context, schema string) ([]*record.Record, error) {
	args := m.Called(ctx, schema)
	rs, _ := args.Get(0).([]*record.Record)
	return rs, args.Error(1)
}

func (m *mockRecordStore) Update(ctx context.Context, id uuid.UUID, fn func(*record.Record) error) (*record.Record, error) {
	args := m.Called(ctx, id, fn)
	r, _ := args.Get(0).(*record.Record)
	return r, args.Error(1)
}

func (m *mockRecordStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// mockRecorder is a testify mock of attr.Recorder.
type mockRecorder struct {
	mock.Mock
}

func (m *mockRecorder) RecordCoercion(ctx context.Context, tag coerce.Tag, outcome attr.Outcome) {
	m.Called(ctx, tag, outcome)
}

func testEngine(t *testing.T, zoned bool) *coerce.Engine {
	t.Helper()
	var opts []coerce.Option
	if zoned {
		zone, err := coerce.LoadZone("UTC")
		if err != nil {
			t.Fatalf("LoadZone() error = %v", err)
		}
		opts = append(opts, coerce.WithZone(zone))
	}
	engine, err := coerce.NewEngine(opts...)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return engine
}

func testCatalog(t *testing.T, engine *coerce.Engine) *attr.Catalog {
	t.Helper()
	c, err := attr.NewCatalog(attr.NewBinder(engine), map[string]map[string]string{
		"invoice": {
			"amount": "money",
			"due":    "date",
			"memo":   "string",
			"rate":   "big_decimal",
		},
		"event": {
			"at": "time",
		},
	})
	if err != nil {
		t.Fatalf("NewCatalog() error = %v", err)
	}
	return c
}

package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/attrd/internal/domain/attr"
	"github.com/jsamuelsen11/attrd/internal/domain/coerce"
	"github.com/jsamuelsen11/attrd/internal/domain/record"
	"github.com/jsamuelsen11/attrd/internal/ports"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

// --- service fakes ---

type mockSchemaService struct{ mock.Mock }

func (m *mockSchemaService) ListSchemas(ctx context.Context) ([]*attr.Schema, error) {
	args := m.Called(ctx)
	schemas, _ := args.Get(0).([]*attr.Schema)
	return schemas, args.Error(1)
}

func (m *mockSchemaService) GetSchema(ctx context.Context, name string) (*attr.Schema, error) {
	args := m.Called(ctx, name)
	s, _ := args.Get(0).(*attr.Schema)
	return s, args.Error(1)
}

type mockRecordService struct{ mock.Mock }

func (m *mockRecordService) CreateRecord(ctx context.Context, schema string, values map[string]any) (*ports.WriteResult, error) {
	args := m.Called(ctx, schema, values)
	res, _ := args.Get(0).(*ports.WriteResult)
	return res, args.Error(1)
}

func (m *mockRecordService) GetRecord(ctx context.Context, id uuid.UUID) (*record.Record, error) {
	args := m.Called(ctx, id)
	rec, _ := args.Get(0).(*record.Record)
	return rec, args.Error(1)
}

func (m *mockRecordService) ListRecords(ctx context.Context, schema string) ([]*record.Record, error) {
	args := m.Called(ctx, schema)
	recs, _ := args.Get(0).([]*record.Record)
	return recs, args.Error(1)
}

func (m *mockRecordService) UpdateRecord(ctx context.Context, id uuid.UUID, values map[string]any) (*ports.WriteResult, error) {
	args := m.Called(ctx, id, values)
	res, _ := args.Get(0).(*ports.WriteResult)
	return res, args.Error(1)
}

func (m *mockRecordService) DeleteRecord(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockCoercionService struct{ mock.Mock }

func (m *mockCoercionService) Coerce(ctx context.Context, items []ports.CoercionItem) ([]ports.CoercionOutcome, error) {
	args := m.Called(ctx, items)
	out, _ := args.Get(0).([]ports.CoercionOutcome)
	return out, args.Error(1)
}

type mockHealthRegistry struct{ mock.Mock }

func (m *mockHealthRegistry) Register(checker ports.HealthChecker) {
	m.Called(checker)
}

func (m *mockHealthRegistry) CheckAll(ctx context.Context) map[string]error {
	results, _ := m.Called(ctx).Get(0).(map[string]error)
	return results
}

// --- fixtures ---

func invoiceSchema(t *testing.T) *attr.Schema {
	t.Helper()

	engine, err := coerce.NewEngine()
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	s, err := attr.NewBinder(engine).Define("invoice", map[string]coerce.Tag{
		"amount": coerce.TagMoney,
		"due":    coerce.TagDate,
		"memo":   coerce.TagString,
	})
	if err != nil {
		t.Fatalf("Define() error = %v", err)
	}
	return s
}

func invoiceRecord(t *testing.T) *record.Record {
	t.Helper()

	obj := invoiceSchema(t).New()
	if err := obj.Set(context.Background(), "memo", "first"); err != nil {
		t.Fatalf("Set(memo) error = %v", err)
	}
	return record.New(obj, testTime)
}

// --- HTTP helpers ---

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

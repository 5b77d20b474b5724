package app

import (
	"context"
	"errors"
	"testing"

	"github.com/jsamuelsen11/attrd/internal/domain"
)

func TestNewSchemaService_NilLogger(t *testing.T) {
	t.Parallel()

	svc := NewSchemaService(testCatalog(t, testEngine(t, false)), nil)
	if svc.logger == nil {
		t.Fatal("NewSchemaService(nil logger) should create a no-op logger, got nil")
	}
}

func TestSchemaService_ListSchemas(t *testing.T) {
	t.Parallel()

	svc := NewSchemaService(testCatalog(t, testEngine(t, false)), discardLogger())

	got, err := svc.ListSchemas(context.Background())
	if err != nil {
		t.Fatalf("ListSchemas() error = %v, want nil", err)
	}

	want := []string{"event", "invoice"}
	if len(got) != len(want) {
		t.Fatalf("ListSchemas() returned %d schemas, want %d", len(got), len(want))
	}
	for i, s := range got {
		if s.Name() != want[i] {
			t.Errorf("ListSchemas()[%d] = %q, want %q", i, s.Name(), want[i])
		}
	}
}

func TestSchemaService_GetSchema(t *testing.T) {
	t.Parallel()

	svc := NewSchemaService(testCatalog(t, testEngine(t, false)), discardLogger())

	tests := []struct {
		name    string
		schema  string
		wantErr error
		attrs   int
	}{
		{name: "known schema", schema: "invoice", attrs: 4},
		{name: "unknown schema", schema: "shipment", wantErr: domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := svc.GetSchema(context.Background(), tt.schema)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("GetSchema(%q) error = %v, want %v", tt.schema, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetSchema(%q) error = %v, want nil", tt.schema, err)
			}
			if n := len(got.Attributes()); n != tt.attrs {
				t.Errorf("GetSchema(%q) has %d attributes, want %d", tt.schema, n, tt.attrs)
			}
		})
	}
}

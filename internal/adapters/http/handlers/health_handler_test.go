package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/attrd/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/attrd/internal/domain"
)

// --- Liveness ---

func TestLiveness_AlwaysOK(t *testing.T) {
	t.Parallel()

	registry := &mockHealthRegistry{}
	h := handlers.NewHealthHandler(registry)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	h.Liveness(rec, req)

	requireStatus(t, rec, http.StatusOK)
	if cc := rec.Header().Get("Cache-Control"); cc != "no-store" {
		t.Errorf("Cache-Control = %q, want no-store", cc)
	}

	resp := decodeJSON[map[string]string](t, rec)
	if resp["status"] != "ok" {
		t.Errorf("status = %q, want %q", resp["status"], "ok")
	}
	registry.AssertNotCalled(t, "CheckAll", mock.Anything)
}

// --- Readiness ---

func TestReadiness(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		results    map[string]error
		wantCode   int
		wantStatus string
		wantChecks map[string]any
	}{
		{
			name:       "all healthy",
			results:    map[string]error{"record-store": nil, "time-zone": nil},
			wantCode:   http.StatusOK,
			wantStatus: "ready",
			wantChecks: map[string]any{"record-store": "ok", "time-zone": "ok"},
		},
		{
			name: "zone missing",
			results: map[string]error{
				"record-store": nil,
				"time-zone":    errors.New("schemas declare time attributes: " + domain.ErrZoneRequired.Error()),
			},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "not_ready",
			wantChecks: map[string]any{
				"record-store": "ok",
				"time-zone":    "schemas declare time attributes: coercion failed: ambient time zone required",
			},
		},
		{
			name:       "no checkers",
			results:    map[string]error{},
			wantCode:   http.StatusOK,
			wantStatus: "ready",
			wantChecks: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			registry := &mockHealthRegistry{}
			registry.On("CheckAll", mock.Anything).Return(tt.results)
			h := handlers.NewHealthHandler(registry)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
			h.Readiness(rec, req)

			requireStatus(t, rec, tt.wantCode)

			resp := decodeJSON[map[string]any](t, rec)
			if resp["status"] != tt.wantStatus {
				t.Errorf("status = %v, want %q", resp["status"], tt.wantStatus)
			}
			checks, ok := resp["checks"].(map[string]any)
			if !ok {
				t.Fatal("checks field not a map")
			}
			if len(checks) != len(tt.wantChecks) {
				t.Errorf("checks = %v, want %v", checks, tt.wantChecks)
			}
			for name, want := range tt.wantChecks {
				if checks[name] != want {
					t.Errorf("checks[%s] = %v, want %v", name, checks[name], want)
				}
			}
			registry.AssertExpectations(t)
		})
	}
}

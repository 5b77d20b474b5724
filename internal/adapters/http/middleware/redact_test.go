package middleware_test

import (
	"net/http"
	"testing"

	"github.com/jsamuelsen11/attrd/internal/adapters/http/middleware"
)

const redactedValue = "[REDACTED]"

func TestRedactHeaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		values []string
		want   string
	}{
		{name: "authorization", header: "Authorization", values: []string{"Bearer secret-token"}, want: redactedValue},
		{name: "api key", header: "X-Api-Key", values: []string{"my-api-key-value"}, want: redactedValue},
		{name: "cookie", header: "Cookie", values: []string{"session=abc123"}, want: redactedValue},
		{name: "plain header", header: "Content-Type", values: []string{"application/json"}, want: "application/json"},
		{name: "multi value", header: "Accept", values: []string{"application/json", "text/plain"}, want: "application/json,text/plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			attrs := middleware.RedactHeaders(http.Header{tt.header: tt.values})

			if len(attrs) != 1 {
				t.Fatalf("len(attrs) = %d, want 1", len(attrs))
			}
			if attrs[0].Key != tt.header {
				t.Errorf("key = %q, want %q", attrs[0].Key, tt.header)
			}
			if got := attrs[0].Value.String(); got != tt.want {
				t.Errorf("value = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRedactHeaders_SortedByName(t *testing.T) {
	t.Parallel()

	attrs := middleware.RedactHeaders(http.Header{
		"X-Request-Id":  {"abc"},
		"Authorization": {"Bearer t"},
		"Accept":        {"*/*"},
	})

	want := []string{"Accept", "Authorization", "X-Request-Id"}
	if len(attrs) != len(want) {
		t.Fatalf("len(attrs) = %d, want %d", len(attrs), len(want))
	}
	for i, key := range want {
		if attrs[i].Key != key {
			t.Errorf("attrs[%d].Key = %q, want %q", i, attrs[i].Key, key)
		}
	}
}

func TestRedactHeaders_Empty(t *testing.T) {
	t.Parallel()

	if attrs := middleware.RedactHeaders(http.Header{}); len(attrs) != 0 {
		t.Errorf("len(attrs) = %d, want 0", len(attrs))
	}
}

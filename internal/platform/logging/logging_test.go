package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/jsamuelsen11/attrd/internal/platform/logging"
)

func TestNew_Formats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format string
		want   string
	}{
		{format: "json", want: `"level":"INFO"`},
		{format: "text", want: "level=INFO"},
		{format: "xml", want: `"level":"INFO"`},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", tt.format, &buf).Info("hello")

			if out := buf.String(); !strings.Contains(out, tt.want) {
				t.Errorf("output = %q, want it to contain %q", out, tt.want)
			}
		})
	}
}

func TestNew_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		level string
		log   func(*slog.Logger)
		want  bool
	}{
		{name: "debug passes at debug", level: "debug", log: func(l *slog.Logger) { l.Debug("m") }, want: true},
		{name: "uppercase level", level: "DEBUG", log: func(l *slog.Logger) { l.Debug("m") }, want: true},
		{name: "debug filtered at info", level: "info", log: func(l *slog.Logger) { l.Debug("m") }, want: false},
		{name: "warn filtered at error", level: "error", log: func(l *slog.Logger) { l.Warn("m") }, want: false},
		{name: "unknown level is info", level: "verbose", log: func(l *slog.Logger) { l.Info("m") }, want: true},
		{name: "unknown level filters debug", level: "verbose", log: func(l *slog.Logger) { l.Debug("m") }, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			tt.log(logging.New(tt.level, "json", &buf))

			if got := buf.Len() > 0; got != tt.want {
				t.Errorf("logged = %v, want %v (output %q)", got, tt.want, buf.String())
			}
		})
	}
}

func TestNew_SourceOnlyAtDebug(t *testing.T) {
	t.Parallel()

	var debugBuf, infoBuf bytes.Buffer
	logging.New("debug", "json", &debugBuf).Info("m")
	logging.New("info", "json", &infoBuf).Info("m")

	if !strings.Contains(debugBuf.String(), `"source"`) {
		t.Errorf("debug output = %q, want source", debugBuf.String())
	}
	if strings.Contains(infoBuf.String(), `"source"`) {
		t.Errorf("info output = %q, want no source", infoBuf.String())
	}
}

func TestContext_RoundTrip(t *testing.T) {
	t.Parallel()

	if logging.FromContext(context.Background()) != slog.Default() {
		t.Error("FromContext on bare context returned something other than slog.Default()")
	}

	first := logging.New("info", "json", &bytes.Buffer{})
	second := logging.New("debug", "json", &bytes.Buffer{})
	ctx := logging.WithLogger(context.Background(), first)
	ctx = logging.WithLogger(ctx, second)

	if logging.FromContext(ctx) != second {
		t.Error("FromContext returned a stale logger, want the last one stored")
	}
}

func TestNew_Redaction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		redact []string
		attr   slog.Attr
		secret string
	}{
		{name: "authorization header", attr: slog.String("authorization", "Bearer abc-123"), secret: "abc-123"},
		{name: "password field", attr: slog.String("password", "hunter2"), secret: "hunter2"},
		{name: "secret prefix", attr: slog.String("secret_key", "k-42"), secret: "k-42"},
		{name: "bearer value", attr: slog.String("raw", "Bearer eyJhbGciOiJSUzI1NiJ9"), secret: "eyJhbGciOiJSUzI1NiJ9"},
		{name: "configured field", redact: []string{"tax_id"}, attr: slog.String("tax_id", "123-45-6789"), secret: "123-45-6789"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", "json", &buf, tt.redact...).Info("event", tt.attr)

			out := buf.String()
			if strings.Contains(out, tt.secret) {
				t.Errorf("output = %q, want %q redacted", out, tt.secret)
			}
			if !strings.Contains(out, "[REDACTED]") {
				t.Errorf("output = %q, want [REDACTED] marker", out)
			}
		})
	}
}

func TestNew_KeepsOrdinaryFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logging.New("info", "json", &buf, "tax_id").Info("event",
		slog.String("schema", "invoice"),
		slog.String("attribute", "due"),
	)

	out := buf.String()
	for _, want := range []string{"invoice", `"attribute":"due"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output = %q, want it to contain %q", out, want)
		}
	}
}

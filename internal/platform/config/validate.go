package config

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/Rhymond/go-money"

	"github.com/jsamuelsen11/attrd/internal/domain/coerce"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Telemetry.validate(),
		c.Coercion.validate(),
		validateSchemas(c.Schemas),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	if s.RequestTimeout <= 0 {
		errs = append(errs, errors.New("server.request_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	for i, f := range l.RedactFields {
		if f == "" {
			errs = append(errs, fmt.Errorf("log.redact_fields[%d] must not be empty", i))
		}
	}

	return errors.Join(errs...)
}

func (c *CoercionConfig) validate() error {
	var errs []error

	if c.TimeZone != "" {
		if _, err := time.LoadLocation(c.TimeZone); err != nil {
			errs = append(errs, fmt.Errorf("coercion.time_zone %q is not a known zone: %w", c.TimeZone, err))
		}
	}
	// Matches the normalization coerce.WithCurrency applies.
	if money.GetCurrency(strings.ToUpper(strings.TrimSpace(c.Currency))) == nil {
		errs = append(errs, fmt.Errorf("coercion.currency must be an ISO 4217 code, got %q", c.Currency))
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("coercion.workers must be >= 1, got %d", c.Workers))
	}
	if c.MaxBatch < 1 {
		errs = append(errs, fmt.Errorf("coercion.max_batch must be >= 1, got %d", c.MaxBatch))
	}

	return errors.Join(errs...)
}

// validateSchemas rejects unsupported type tags at load time so that a bad
// declaration never reaches the running service.
func validateSchemas(schemas map[string]map[string]string) error {
	var errs []error

	for _, name := range slices.Sorted(maps.Keys(schemas)) {
		attrs := schemas[name]
		for _, attr := range slices.Sorted(maps.Keys(attrs)) {
			if _, err := coerce.ParseTag(attrs[attr]); err != nil {
				errs = append(errs, fmt.Errorf("schemas.%s.%s: %w", name, attr, err))
			}
		}
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}

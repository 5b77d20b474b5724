// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Coercion  CoercionConfig  `koanf:"coercion"`

	// Schemas maps schema name to attribute name to type tag.
	Schemas map[string]map[string]string `koanf:"schemas"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host           string        `koanf:"host"`
	Port           int           `koanf:"port"`
	ReadTimeout    time.Duration `koanf:"read_timeout"`
	WriteTimeout   time.Duration `koanf:"write_timeout"`
	IdleTimeout    time.Duration `koanf:"idle_timeout"`
	RequestTimeout time.Duration `koanf:"request_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`

	// RedactFields lists extra attribute keys whose values are masked in
	// logs, such as attributes that hold personal data.
	RedactFields []string `koanf:"redact_fields"`
}

// CoercionConfig holds coercion engine and batch settings.
type CoercionConfig struct {
	// TimeZone is the IANA name of the ambient time zone. Empty means none:
	// date text is parsed without a zone and time attributes reject writes.
	TimeZone string `koanf:"time_zone"`
	Currency string `koanf:"currency"`
	Workers  int    `koanf:"workers"`
	MaxBatch int    `koanf:"max_batch"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

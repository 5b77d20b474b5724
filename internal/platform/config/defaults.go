package config

const (
	defaultServerPort = 8080

	defaultCoercionWorkers  = 4
	defaultCoercionMaxBatch = 100
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":            "0.0.0.0",
		"server.port":            defaultServerPort,
		"server.read_timeout":    "5s",
		"server.write_timeout":   "10s",
		"server.idle_timeout":    "120s",
		"server.request_timeout": "30s",

		"log.level":  "info",
		"log.format": "json",

		"coercion.time_zone": "",
		"coercion.currency":  "USD",
		"coercion.workers":   defaultCoercionWorkers,
		"coercion.max_batch": defaultCoercionMaxBatch,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "attrd",
	}
}

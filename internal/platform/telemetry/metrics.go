package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/attrd/internal/domain/attr"
	"github.com/jsamuelsen11/attrd/internal/domain/coerce"
)

// Attribute keys for metric labels.
var (
	AttrHTTPMethod = attribute.Key("http.method")
	AttrHTTPStatus = attribute.Key("http.status_code")
	AttrHTTPRoute  = attribute.Key("http.route")
	AttrType       = attribute.Key("type")
	AttrOutcome    = attribute.Key("outcome")
)

// meterScope is the instrumentation scope for every instrument in this package.
const meterScope = "github.com/jsamuelsen11/attrd"

// Metrics holds pre-registered OpenTelemetry metric instruments.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	CoercionTotal         metric.Int64Counter
}

var _ attr.Recorder = (*Metrics)(nil)

// NewMetrics creates and registers all metric instruments using the given
// MeterProvider.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	meter := mp.Meter(meterScope)

	serverDuration, err := meter.Float64Histogram(
		"http.server.request.duration",
		metric.WithDescription("Duration of incoming HTTP requests"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating http.server.request.duration: %w", err)
	}

	serverTotal, err := meter.Int64Counter(
		"http.server.request.total",
		metric.WithDescription("Total number of incoming HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating http.server.request.total: %w", err)
	}

	coercionTotal, err := meter.Int64Counter(
		"attr.coercion.total",
		metric.WithDescription("Attribute coercions by target type and outcome"),
		metric.WithUnit("{coercion}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating attr.coercion.total: %w", err)
	}

	return &Metrics{
		ServerRequestDuration: serverDuration,
		ServerRequestTotal:    serverTotal,
		CoercionTotal:         coercionTotal,
	}, nil
}

// RecordCoercion counts one coercion. A nil receiver records nothing.
func (m *Metrics) RecordCoercion(ctx context.Context, tag coerce.Tag, outcome attr.Outcome) {
	if m == nil || m.CoercionTotal == nil {
		return
	}
	m.CoercionTotal.Add(ctx, 1, metric.WithAttributes(
		AttrType.String(tag.String()),
		AttrOutcome.String(string(outcome)),
	))
}

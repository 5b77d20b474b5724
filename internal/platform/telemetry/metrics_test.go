package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/attrd/internal/domain/attr"
	"github.com/jsamuelsen11/attrd/internal/domain/coerce"
	"github.com/jsamuelsen11/attrd/internal/platform/telemetry"
)

func newTestMetrics(t *testing.T) (*telemetry.Metrics, *sdkmetric.ManualReader) {
	t.Helper()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	m, err := telemetry.NewMetrics(mp)
	require.NoError(t, err)
	return m, reader
}

func collectSum(t *testing.T, reader *sdkmetric.ManualReader, name string) metricdata.Sum[int64] {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok, "metric %s is %T, want Sum[int64]", name, m.Data)
			return sum
		}
	}
	t.Fatalf("metric %s not collected", name)
	return metricdata.Sum[int64]{}
}

func TestNewMetrics(t *testing.T) {
	t.Parallel()

	m, _ := newTestMetrics(t)

	assert.NotNil(t, m.ServerRequestDuration)
	assert.NotNil(t, m.ServerRequestTotal)
	assert.NotNil(t, m.CoercionTotal)
}

func TestMetrics_RecordCoercion(t *testing.T) {
	t.Parallel()

	m, reader := newTestMetrics(t)
	ctx := context.Background()

	m.RecordCoercion(ctx, coerce.TagMoney, attr.OutcomeFallback)
	m.RecordCoercion(ctx, coerce.TagMoney, attr.OutcomeFallback)
	m.RecordCoercion(ctx, coerce.TagTime, attr.OutcomeRejected)

	sum := collectSum(t, reader, "attr.coercion.total")

	got := make(map[string]int64, len(sum.DataPoints))
	for _, dp := range sum.DataPoints {
		typ, _ := dp.Attributes.Value(attribute.Key("type"))
		outcome, _ := dp.Attributes.Value(attribute.Key("outcome"))
		got[typ.AsString()+"/"+outcome.AsString()] = dp.Value
	}

	assert.Equal(t, map[string]int64{
		"money/fallback": 2,
		"time/rejected":  1,
	}, got)
}

func TestMetrics_RecordCoercion_NilSafe(t *testing.T) {
	t.Parallel()

	var m *telemetry.Metrics
	assert.NotPanics(t, func() {
		m.RecordCoercion(context.Background(), coerce.TagString, attr.OutcomeOK)
	})
}

func TestMetrics_AsBinderRecorder(t *testing.T) {
	t.Parallel()

	m, reader := newTestMetrics(t)

	engine, err := coerce.NewEngine()
	require.NoError(t, err)

	binder := attr.NewBinder(engine, attr.WithRecorder(m))
	schema, err := binder.Define("ledger", map[string]coerce.Tag{"count": coerce.TagInteger})
	require.NoError(t, err)

	obj := schema.New()
	require.NoError(t, obj.Set(context.Background(), "count", "12"))

	sum := collectSum(t, reader, "attr.coercion.total")
	require.Len(t, sum.DataPoints, 1)
	assert.Equal(t, int64(1), sum.DataPoints[0].Value)
}

package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// DispatchRecorder records enumdispatch metrics.
// Use NewDispatchRecorder() for OTel metrics or NoopMetrics{} when disabled.
type DispatchRecorder interface {
	// RecordDispatch records a handler dispatch with its duration and error status.
	RecordDispatch(ctx context.Context, set, member string, duration time.Duration, err error)

	// RecordBuild records a successful handler set build.
	RecordBuild(ctx context.Context, set string, members int)
}

// otelMetrics implements DispatchRecorder using OpenTelemetry.
type otelMetrics struct {
	dispatches      metric.Int64Counter
	dispatchLatency metric.Float64Histogram
	dispatchErrors  metric.Int64Counter
	builds          metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("enumdispatch")

	dispatches, err := meter.Int64Counter("enumdispatch.dispatch.count",
		metric.WithDescription("Number of handler dispatches"),
	)
	if err != nil {
		return nil, err
	}

	dispatchLatency, err := meter.Float64Histogram("enumdispatch.dispatch.latency_ms",
		metric.WithDescription("Handler dispatch latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	dispatchErrors, err := meter.Int64Counter("enumdispatch.dispatch.errors",
		metric.WithDescription("Number of handler dispatch errors"),
	)
	if err != nil {
		return nil, err
	}

	builds, err := meter.Int64Counter("enumdispatch.build.sets",
		metric.WithDescription("Number of handler sets built"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		dispatches:      dispatches,
		dispatchLatency: dispatchLatency,
		dispatchErrors:  dispatchErrors,
		builds:          builds,
	}, nil
}

// NewDispatchRecorder returns a DispatchRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewDispatchRecorder() DispatchRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordDispatch records a handler dispatch.
func (m *otelMetrics) RecordDispatch(ctx context.Context, set, member string, duration time.Duration, err error) {
	attrs := []attribute.KeyValue{
		attribute.String("set", set),
		attribute.String("member", member),
	}

	m.dispatches.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.dispatchLatency.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))

	if err != nil {
		m.dispatchErrors.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}

// RecordBuild records a handler set build.
func (m *otelMetrics) RecordBuild(ctx context.Context, set string, members int) {
	attrs := []attribute.KeyValue{
		attribute.String("set", set),
		attribute.Int("members", members),
	}
	m.builds.Add(ctx, 1, metric.WithAttributes(attrs...))
}

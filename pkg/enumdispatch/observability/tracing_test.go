package observability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// setupTracing installs an in-memory exporter as the global tracer provider.
func setupTracing(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(provider)
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	return exporter
}

// TestSpanManager_SuccessfulDispatch verifies span name, attributes, and
// OK status.
func TestSpanManager_SuccessfulDispatch(t *testing.T) {
	exporter := setupTracing(t)
	manager := NewSpanManager()

	_, span := manager.StartDispatchSpan(context.Background(), "colors", "RED")
	manager.EndSpanWithError(span, nil)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)

	got := spans[0]
	assert.Equal(t, "enumdispatch.dispatch", got.Name)
	assert.Equal(t, codes.Ok, got.Status.Code)
	assert.Contains(t, got.Attributes, attribute.String("set", "colors"))
	assert.Contains(t, got.Attributes, attribute.String("member", "RED"))
}

// TestSpanManager_FailedDispatch verifies error recording.
func TestSpanManager_FailedDispatch(t *testing.T) {
	exporter := setupTracing(t)
	manager := NewSpanManager()

	_, span := manager.StartDispatchSpan(context.Background(), "colors", "RED")
	manager.EndSpanWithError(span, errors.New("boom"))

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)

	got := spans[0]
	assert.Equal(t, codes.Error, got.Status.Code)
	assert.Equal(t, "boom", got.Status.Description)
	require.Len(t, got.Events, 1) // the recorded error
}

// TestEndSpanWithError_NilSpan verifies nil spans are tolerated.
func TestEndSpanWithError_NilSpan(t *testing.T) {
	assert.NotPanics(t, func() {
		EndSpanWithError(nil, errors.New("boom"))
	})
}

// TestAddSpanEvent verifies handler annotations land on the active span.
func TestAddSpanEvent(t *testing.T) {
	exporter := setupTracing(t)

	ctx, span := StartDispatchSpan(context.Background(), "colors", "GREEN")
	AddSpanEvent(ctx, "sibling dispatch", attribute.String("member", "BLUE"))
	EndSpanWithError(span, nil)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	require.Len(t, spans[0].Events, 1)
	assert.Equal(t, "sibling dispatch", spans[0].Events[0].Name)
}

// TestAddSpanEvent_NoActiveSpan verifies a bare context is a no-op.
func TestAddSpanEvent_NoActiveSpan(t *testing.T) {
	assert.NotPanics(t, func() {
		AddSpanEvent(context.Background(), "ignored")
	})
}

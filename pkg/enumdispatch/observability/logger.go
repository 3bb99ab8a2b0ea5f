// Package observability provides production-grade observability features
// for enumdispatch: structured logging, metrics, and distributed tracing.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds dispatch context to a logger.
// Returns a new logger with set, member, and dispatch_id fields.
//
// Example:
//
//	enriched := EnrichLogger(logger, "colors", "RED", "d-123")
//	enriched.Info("doing work") // includes set, member, dispatch_id
func EnrichLogger(logger *slog.Logger, set, member, dispatchID string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("set", set),
		slog.String("member", member),
		slog.String("dispatch_id", dispatchID),
	)
}

// LogBuild logs successful handler set construction.
func LogBuild(logger *slog.Logger, set string, members int, strategy string) {
	if logger == nil {
		return
	}
	logger.Info("handler set built",
		slog.String("set", set),
		slog.Int("members", members),
		slog.String("cache_strategy", strategy),
	)
}

// LogDispatchStart logs the start of a dispatch.
func LogDispatchStart(logger *slog.Logger, set, member, dispatchID string) {
	if logger == nil {
		return
	}
	logger.Debug("dispatch starting",
		slog.String("set", set),
		slog.String("member", member),
		slog.String("dispatch_id", dispatchID),
	)
}

// LogDispatchComplete logs successful dispatch completion.
func LogDispatchComplete(logger *slog.Logger, set, member, dispatchID string, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("dispatch completed",
		slog.String("set", set),
		slog.String("member", member),
		slog.String("dispatch_id", dispatchID),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogDispatchError logs dispatch failure.
func LogDispatchError(logger *slog.Logger, set, member, dispatchID string, err error) {
	if logger == nil {
		return
	}
	logger.Error("dispatch failed",
		slog.String("set", set),
		slog.String("member", member),
		slog.String("dispatch_id", dispatchID),
		slog.String("error", err.Error()),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in milliseconds.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	durationMs := done()
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Milliseconds())
	}
}

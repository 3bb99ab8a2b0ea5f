package enumdispatch

import (
	"fmt"
	"log/slog"

	"github.com/randalmurphal/enumdispatch/pkg/enumdispatch/config"
)

// setOptions holds configuration fixed per handler set at build time.
type setOptions struct {
	name     string
	strategy CacheStrategy
	logger   *slog.Logger
	metrics  bool
	tracing  bool
}

// defaultSetOptions returns the default handler set configuration.
func defaultSetOptions() setOptions {
	return setOptions{
		strategy: EagerCache,
	}
}

// Option configures a handler set at build time.
type Option func(*setOptions)

// WithName sets the handler set's name, used in log fields, metric
// attributes, and span attributes. Defaults to the domain name.
func WithName(name string) Option {
	return func(o *setOptions) {
		if name != "" {
			o.name = name
		}
	}
}

// WithCache selects the instance cache strategy.
// Default: EagerCache
//
// Example:
//
//	set, err := enumdispatch.New[Color, string](colors, enumdispatch.WithCache(enumdispatch.LazyCache)).
//	    ...
//	    Build()
func WithCache(strategy CacheStrategy) Option {
	return func(o *setOptions) {
		o.strategy = strategy
	}
}

// WithLogger enables structured logging of builds and dispatches.
// A nil logger disables logging (the default).
func WithLogger(logger *slog.Logger) Option {
	return func(o *setOptions) {
		o.logger = logger
	}
}

// WithMetrics enables OpenTelemetry dispatch metrics.
// Uses the global OTel meter provider.
func WithMetrics(enabled bool) Option {
	return func(o *setOptions) {
		o.metrics = enabled
	}
}

// WithTracing enables OpenTelemetry dispatch tracing.
// Uses the global OTel tracer provider.
func WithTracing(enabled bool) Option {
	return func(o *setOptions) {
		o.tracing = enabled
	}
}

// FromConfig translates a configuration map into set options.
//
// Recognized keys:
//   - name (string): handler set name
//   - cache (string): "eager", "lazy", or "none"
//   - metrics (bool): enable OTel metrics
//   - tracing (bool): enable OTel tracing
//
// Returns an error if the cache key holds an unknown strategy name.
func FromConfig(cfg config.Config) ([]Option, error) {
	var opts []Option

	if cfg.Has("name") {
		opts = append(opts, WithName(cfg.String("name", "")))
	}

	if cfg.Has("cache") {
		strategy, err := ParseCacheStrategy(cfg.String("cache", EagerCache.String()))
		if err != nil {
			return nil, fmt.Errorf("config key %q: %w", "cache", err)
		}
		opts = append(opts, WithCache(strategy))
	}

	if cfg.Has("metrics") {
		opts = append(opts, WithMetrics(cfg.Bool("metrics", false)))
	}

	if cfg.Has("tracing") {
		opts = append(opts, WithTracing(cfg.Bool("tracing", false)))
	}

	return opts, nil
}

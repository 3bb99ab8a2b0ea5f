/*
Package enumdispatch associates exactly one handler with every member of a
closed enumeration and dispatches to it through a uniform call interface.

# Overview

enumdispatch is a small library for building exhaustively-checked handler
tables over enum-like constant sets. You declare a Domain (the closed,
ordered set of members), register handlers against its members with a
Builder, and call Build to obtain an immutable HandlerSet. Build validates
the whole table at once: every member must have exactly one handler, no
member may have two, and no registration may target a value outside the
domain. A malformed table fails at build time, never at first call.

# Basic Usage

Declare a domain, register handlers, build, dispatch:

	type Color int

	const (
	    Red Color = iota
	    Green
	    Blue
	)

	colors := enumdispatch.NewDomain("colors", Red, Green, Blue)

	set, err := enumdispatch.New[Color, string](colors).
	    Handle(func(ctx context.Context, self *enumdispatch.Instance[Color, string], args ...any) (string, error) {
	        return "Red", nil
	    }, Red).
	    Handle(greenHandler, Green).
	    Handle(blueHandler, Blue).
	    Build()
	if err != nil {
	    log.Fatal(err)
	}

	name, err := set.Call(context.Background(), Red)
	fmt.Println(name) // "Red"

A single registration may cover several members:

	b.Handle(europe, Amsterdam, London, Moscow, Paris)

# Instances

Instance binds one member to its handler. Instances are how handlers reach
their siblings: the instance is passed to the handler as receiver, and
self.Set() exposes the whole set.

	adder, err := set.Instance(Add)
	sum, err := adder.Call(ctx, 3, 4, 5)

Calling a zero Instance (one not obtained from a built set) fails with
ErrUnboundInstance rather than panicking.

# Cache Strategies

How instances are constructed is fixed per set at build time:

  - EagerCache (default): every instance is built during Build, in domain
    order. Instance(m) always returns the same pointer for the same m.
  - LazyCache: instances are memoized on first request; concurrent first
    requests for the same member observe a single instance.
  - NoCache: every Instance call returns a fresh value.

	set, err := enumdispatch.New[Color, string](colors, enumdispatch.WithCache(enumdispatch.LazyCache)).
	    ...
	    Build()

# Errors

Build collects every structural failure and returns them joined:

	_, err := b.Build()
	var missing *enumdispatch.NonExhaustiveError
	if errors.As(err, &missing) {
	    log.Printf("no handlers for: %v", missing.Missing)
	}

Sentinels (ErrNotExhaustive, ErrDuplicateHandler, ErrForeignMember,
ErrFinalized, ErrUnboundInstance, ErrUnknownMember) support errors.Is.
Registering on a consumed builder panics with *FinalizedError.

# Observability

Logging, metrics, and tracing are opt-in:

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	set, err := enumdispatch.New[Color, string](colors,
	    enumdispatch.WithLogger(logger),
	    enumdispatch.WithMetrics(true),
	    enumdispatch.WithTracing(true)).
	    ...

Logs carry structured fields: set, member, dispatch_id, duration_ms.
OpenTelemetry metrics: enumdispatch.dispatch.count,
enumdispatch.dispatch.latency_ms, enumdispatch.dispatch.errors.
OpenTelemetry tracing: one enumdispatch.dispatch span per call.

# Thread Safety

  - Builder is NOT safe for concurrent use; build from one goroutine.
  - HandlerSet and Instance ARE safe for concurrent use (immutable).
  - LazyCache guarantees at-most-one construction per member under
    concurrent first requests.

# Subpackages

  - registry: generic thread-safe store backing the instance caches
  - config: configuration maps with yaml/json loaders
  - observability: logging, metrics, and tracing helpers
*/
package enumdispatch

package enumdispatch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/randalmurphal/enumdispatch/pkg/enumdispatch/observability"
	"github.com/randalmurphal/enumdispatch/pkg/enumdispatch/registry"
)

// entry holds one member's handler with its registration metadata.
type entry[E comparable, O any] struct {
	fn   HandlerFunc[E, O]
	doc  string
	name string
}

// HandlerSet is an immutable, exhaustively-checked handler table over a
// domain. Create one with Builder.Build. Safe for concurrent use.
type HandlerSet[E comparable, O any] struct {
	name     string
	domain   *Domain[E]
	table    map[E]entry[E, O]
	strategy CacheStrategy

	// cache backs EagerCache and LazyCache; nil under NoCache.
	cache *registry.Registry[E, *Instance[E, O]]

	logger  *slog.Logger
	metrics observability.DispatchRecorder
	spans   observability.SpanManager
}

// Name returns the set's name.
func (s *HandlerSet[E, O]) Name() string { return s.name }

// Domain returns the domain the set was built over.
func (s *HandlerSet[E, O]) Domain() *Domain[E] { return s.domain }

// Strategy returns the set's cache strategy.
func (s *HandlerSet[E, O]) Strategy() CacheStrategy { return s.strategy }

// CacheSize returns the number of cached instances: the full domain size
// under EagerCache, the number of members requested so far under
// LazyCache, and always 0 under NoCache.
func (s *HandlerSet[E, O]) CacheSize() int {
	if s.cache == nil {
		return 0
	}
	return s.cache.Len()
}

// Instance returns the instance bound to member, subject to the cache
// strategy: the prebuilt instance under EagerCache, a memoized one under
// LazyCache (at most one is ever constructed per member, even under
// concurrent first requests), and a fresh one on every call under
// NoCache.
//
// Returns ErrUnknownMember if member is not part of the domain.
func (s *HandlerSet[E, O]) Instance(member E) (*Instance[E, O], error) {
	if !s.domain.Contains(member) {
		return nil, fmt.Errorf("%w: %s is not a member of %s",
			ErrUnknownMember, formatMember(member), s.domain.Name())
	}

	if s.cache == nil {
		return s.newInstance(member), nil
	}
	return s.cache.GetOrCreate(member, func() *Instance[E, O] {
		return s.newInstance(member)
	}), nil
}

// MustInstance is like Instance but panics on error.
// Useful when the member is a compile-time constant known to be in the
// domain.
func (s *HandlerSet[E, O]) MustInstance(member E) *Instance[E, O] {
	inst, err := s.Instance(member)
	if err != nil {
		panic(err)
	}
	return inst
}

// Call constructs (or retrieves) the instance for member and dispatches
// to its handler with the given arguments.
func (s *HandlerSet[E, O]) Call(ctx context.Context, member E, args ...any) (O, error) {
	inst, err := s.Instance(member)
	if err != nil {
		var zero O
		return zero, err
	}
	return inst.Call(ctx, args...)
}

// newInstance builds an instance bound to member. Callers have already
// checked domain membership, so the table lookup cannot miss.
func (s *HandlerSet[E, O]) newInstance(member E) *Instance[E, O] {
	e := s.table[member]
	return &Instance[E, O]{
		set:    s,
		member: member,
		fn:     e.fn,
		doc:    e.doc,
	}
}

// dispatch runs the instance's handler with observability around it.
func (s *HandlerSet[E, O]) dispatch(ctx context.Context, inst *Instance[E, O], args ...any) (O, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	member := formatMember(inst.member)

	var dispatchID string
	if s.logger != nil {
		dispatchID = uuid.NewString()
		observability.LogDispatchStart(s.logger, s.name, member, dispatchID)
	}

	ctx, span := s.spans.StartDispatchSpan(ctx, s.name, member)
	start := time.Now()

	out, err := inst.fn(ctx, inst, args...)

	elapsed := time.Since(start)
	s.spans.EndSpanWithError(span, err)
	s.metrics.RecordDispatch(ctx, s.name, member, elapsed, err)

	if s.logger != nil {
		if err != nil {
			observability.LogDispatchError(s.logger, s.name, member, dispatchID, err)
		} else {
			observability.LogDispatchComplete(s.logger, s.name, member, dispatchID,
				float64(elapsed.Milliseconds()))
		}
	}

	return out, err
}

// Instance binds one domain member to its registered handler.
// Obtain instances from HandlerSet.Instance; the zero value has no bound
// handler and every Call on it fails with ErrUnboundInstance.
type Instance[E comparable, O any] struct {
	set    *HandlerSet[E, O]
	member E
	fn     HandlerFunc[E, O]
	doc    string
}

// Member returns the domain member the instance is bound to.
func (h *Instance[E, O]) Member() E { return h.member }

// Doc returns the documentation string attached at registration, if any.
func (h *Instance[E, O]) Doc() string { return h.doc }

// Set returns the handler set the instance belongs to, giving handlers
// access to their siblings.
func (h *Instance[E, O]) Set() *HandlerSet[E, O] { return h.set }

// Call dispatches to the bound handler, forwarding all arguments and
// returning its result unchanged.
//
// Returns ErrUnboundInstance if the instance has no bound handler, which
// only happens when a zero Instance is used instead of one obtained from
// a built HandlerSet.
func (h *Instance[E, O]) Call(ctx context.Context, args ...any) (O, error) {
	if h.fn == nil || h.set == nil {
		var zero O
		return zero, fmt.Errorf("%w: build a handler set and request instances from it", ErrUnboundInstance)
	}
	return h.set.dispatch(ctx, h, args...)
}

package enumdispatch

import (
	"context"
	"errors"
	"reflect"
	"runtime"
	"strings"

	"github.com/randalmurphal/enumdispatch/pkg/enumdispatch/observability"
	"github.com/randalmurphal/enumdispatch/pkg/enumdispatch/registry"
)

// HandlerFunc is a handler bound to one or more domain members.
// The instance it was dispatched through is passed as self, so a handler
// can reach its siblings via self.Set().
type HandlerFunc[E comparable, O any] func(ctx context.Context, self *Instance[E, O], args ...any) (O, error)

// registration is a handler annotated with the members it claims to
// handle. Purely local to the builder until Build harvests it.
type registration[E comparable, O any] struct {
	fn      HandlerFunc[E, O]
	members []E
	doc     string
	name    string
}

// Builder collects handler registrations for a domain.
// Use New to create a builder, chain Handle calls to register handlers,
// then call Build to validate the table and obtain an immutable
// HandlerSet.
//
// Builder is NOT thread-safe. Register from a single goroutine, then
// share the built HandlerSet freely.
//
// Example:
//
//	set, err := enumdispatch.New[Color, string](colors).
//	    Handle(red, Red).
//	    Handle(green, Green).
//	    Handle(blue, Blue).
//	    Build()
type Builder[E comparable, O any] struct {
	domain *Domain[E]
	regs   []registration[E, O]
	opts   setOptions
	built  bool
}

// New creates a builder for a handler set over the given domain.
// The type parameter O is the handlers' return type.
func New[E comparable, O any](domain *Domain[E], opts ...Option) *Builder[E, O] {
	if domain == nil {
		panic("enumdispatch: domain cannot be nil")
	}

	o := defaultSetOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.name == "" {
		o.name = domain.Name()
	}

	return &Builder[E, O]{
		domain: domain,
		opts:   o,
	}
}

// Handle registers fn as the handler for the given members.
// Returns the builder for method chaining.
//
// The registration is recorded locally; duplicate, foreign, and missing
// members are all reported together by Build, so registration order
// never matters.
//
// Panics if:
//   - fn is nil
//   - no members are given
//   - the builder has already been consumed by Build (*FinalizedError)
func (b *Builder[E, O]) Handle(fn HandlerFunc[E, O], members ...E) *Builder[E, O] {
	return b.HandleDoc("", fn, members...)
}

// HandleDoc registers fn like Handle and attaches a documentation string,
// which surfaces on every instance bound to these members via
// Instance.Doc().
func (b *Builder[E, O]) HandleDoc(doc string, fn HandlerFunc[E, O], members ...E) *Builder[E, O] {
	if b.built {
		panic(&FinalizedError{Domain: b.domain.Name()})
	}
	if fn == nil {
		panic("enumdispatch: handler function cannot be nil")
	}
	if len(members) == 0 {
		panic("enumdispatch: registration requires at least one member")
	}

	b.regs = append(b.regs, registration[E, O]{
		fn:      fn,
		members: append([]E(nil), members...),
		doc:     doc,
		name:    funcName(fn),
	})
	return b
}

// Build validates the registrations and creates an immutable HandlerSet.
// The builder is consumed on success; further Handle calls panic with
// *FinalizedError.
//
// Validation checks:
//  1. No member has more than one handler (*DuplicateError per member)
//  2. Every registered member belongs to the domain (*ForeignMemberError)
//  3. Every domain member has a handler (*NonExhaustiveError)
//
// All failures are collected and joined, so one Build call reports the
// full set of structural problems. Under EagerCache every instance is
// constructed here, in domain order, before the set is returned.
func (b *Builder[E, O]) Build() (*HandlerSet[E, O], error) {
	if b.built {
		panic(&FinalizedError{Domain: b.domain.Name()})
	}

	var errs []error

	table := make(map[E]entry[E, O], b.domain.Size())
	var foreign []string
	for _, reg := range b.regs {
		for _, m := range reg.members {
			if prev, exists := table[m]; exists {
				errs = append(errs, &DuplicateError{
					Domain: b.domain.Name(),
					Member: formatMember(m),
					First:  prev.name,
					Second: reg.name,
				})
				continue
			}
			table[m] = entry[E, O]{fn: reg.fn, doc: reg.doc, name: reg.name}
			if !b.domain.Contains(m) {
				foreign = append(foreign, formatMember(m))
			}
		}
	}

	if len(foreign) > 0 {
		errs = append(errs, &ForeignMemberError{Domain: b.domain.Name(), Members: foreign})
	}

	var missing []string
	for _, m := range b.domain.members {
		if _, ok := table[m]; !ok {
			missing = append(missing, formatMember(m))
		}
	}
	if len(missing) > 0 {
		errs = append(errs, &NonExhaustiveError{Domain: b.domain.Name(), Missing: missing})
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	b.built = true

	set := &HandlerSet[E, O]{
		name:     b.opts.name,
		domain:   b.domain,
		table:    table,
		strategy: b.opts.strategy,
		logger:   b.opts.logger,
		metrics:  observability.NoopMetrics{},
		spans:    observability.NoopSpanManager{},
	}
	if b.opts.metrics {
		set.metrics = observability.NewDispatchRecorder()
	}
	if b.opts.tracing {
		set.spans = observability.NewSpanManager()
	}

	if b.opts.strategy != NoCache {
		set.cache = registry.New[E, *Instance[E, O]]()
	}
	if b.opts.strategy == EagerCache {
		// Warm-up fills the cache directly, so Instance() during and
		// after Build observes exactly one instance per member.
		for _, m := range b.domain.members {
			set.cache.Register(m, set.newInstance(m))
		}
	}

	observability.LogBuild(set.logger, set.name, b.domain.Size(), set.strategy.String())
	set.metrics.RecordBuild(context.Background(), set.name, b.domain.Size())

	return set, nil
}

// funcName resolves a handler's function name for duplicate diagnostics.
func funcName(fn any) string {
	pc := reflect.ValueOf(fn).Pointer()
	f := runtime.FuncForPC(pc)
	if f == nil {
		return "unknown"
	}
	name := f.Name()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	return name
}

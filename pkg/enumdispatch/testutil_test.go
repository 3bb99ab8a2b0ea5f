package enumdispatch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// Shared test fixtures for the enumdispatch package.

// Color is a small Stringer domain used across tests.
type Color int

const (
	Red Color = iota
	Green
	Blue
)

func (c Color) String() string {
	switch c {
	case Red:
		return "RED"
	case Green:
		return "GREEN"
	case Blue:
		return "BLUE"
	default:
		return "UNKNOWN"
	}
}

func colorDomain() *Domain[Color] {
	return NewDomain("colors", Red, Green, Blue)
}

// constHandler returns a handler that ignores its arguments and returns v.
func constHandler(v string) HandlerFunc[Color, string] {
	return func(ctx context.Context, self *Instance[Color, string], args ...any) (string, error) {
		return v, nil
	}
}

// colorBuilder returns a builder covering the full color domain.
func colorBuilder(opts ...Option) *Builder[Color, string] {
	return New[Color, string](colorDomain(), opts...).
		Handle(constHandler("Red"), Red).
		Handle(constHandler("Green"), Green).
		Handle(constHandler("Blue"), Blue)
}

// colorSet builds the standard color handler set.
func colorSet(t *testing.T, opts ...Option) *HandlerSet[Color, string] {
	t.Helper()
	set, err := colorBuilder(opts...).Build()
	require.NoError(t, err)
	return set
}

// recoverError runs fn, expecting it to panic with an error value,
// and returns that error.
func recoverError(t *testing.T, fn func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		var ok bool
		err, ok = r.(error)
		require.True(t, ok, "panic value is not an error: %v", r)
	}()
	fn()
	return nil
}

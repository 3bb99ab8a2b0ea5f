package benchmarks

import (
	"context"
	"testing"

	"github.com/randalmurphal/enumdispatch/pkg/enumdispatch"
)

// Color is the benchmark domain.
type Color int

const (
	Red Color = iota
	Green
	Blue
)

func (c Color) String() string {
	return [...]string{"RED", "GREEN", "BLUE"}[c]
}

func colorName(name string) enumdispatch.HandlerFunc[Color, string] {
	return func(ctx context.Context, self *enumdispatch.Instance[Color, string], args ...any) (string, error) {
		return name, nil
	}
}

func colorBuilder(strategy enumdispatch.CacheStrategy) *enumdispatch.Builder[Color, string] {
	colors := enumdispatch.NewDomain("colors", Red, Green, Blue)
	return enumdispatch.New[Color, string](colors, enumdispatch.WithCache(strategy)).
		Handle(colorName("Red"), Red).
		Handle(colorName("Green"), Green).
		Handle(colorName("Blue"), Blue)
}

func mustBuild(b *testing.B, builder *enumdispatch.Builder[Color, string]) *enumdispatch.HandlerSet[Color, string] {
	b.Helper()
	set, err := builder.Build()
	if err != nil {
		b.Fatal(err)
	}
	return set
}

// BenchmarkDispatch_Eager dispatches through the prebuilt cache.
func BenchmarkDispatch_Eager(b *testing.B) {
	set := mustBuild(b, colorBuilder(enumdispatch.EagerCache))
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = set.Call(ctx, Red)
	}
}

// BenchmarkDispatch_Lazy dispatches through the memoizing cache.
func BenchmarkDispatch_Lazy(b *testing.B) {
	set := mustBuild(b, colorBuilder(enumdispatch.LazyCache))
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = set.Call(ctx, Red)
	}
}

// BenchmarkDispatch_None constructs a fresh instance per call.
func BenchmarkDispatch_None(b *testing.B) {
	set := mustBuild(b, colorBuilder(enumdispatch.NoCache))
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = set.Call(ctx, Red)
	}
}

// BenchmarkDispatch_Instance measures dispatch with construction hoisted out.
func BenchmarkDispatch_Instance(b *testing.B) {
	set := mustBuild(b, colorBuilder(enumdispatch.EagerCache))
	inst := set.MustInstance(Red)
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = inst.Call(ctx)
	}
}

// BenchmarkBuild measures the full validation and warm-up pass.
func BenchmarkBuild(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, err := colorBuilder(enumdispatch.EagerCache).Build()
		if err != nil {
			b.Fatal(err)
		}
	}
}

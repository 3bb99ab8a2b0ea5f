package enumdispatch

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// CacheStrategy controls how a handler set constructs instances.
type CacheStrategy int

const (
	// EagerCache builds every instance during Build, in domain order.
	// Instance(m) then always returns the same value for the same m.
	// This is the default strategy.
	EagerCache CacheStrategy = iota

	// LazyCache memoizes instances on first request. At most one
	// instance is ever constructed per member, even under concurrent
	// first requests.
	LazyCache

	// NoCache constructs a fresh instance on every request.
	NoCache
)

// String returns the strategy name.
func (s CacheStrategy) String() string {
	switch s {
	case EagerCache:
		return "eager"
	case LazyCache:
		return "lazy"
	case NoCache:
		return "none"
	default:
		return "unknown"
	}
}

// ParseCacheStrategy parses a strategy name. Accepted values are
// "eager", "lazy", and "none" (case-insensitive).
func ParseCacheStrategy(s string) (CacheStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "eager":
		return EagerCache, nil
	case "lazy":
		return LazyCache, nil
	case "none":
		return NoCache, nil
	default:
		return EagerCache, fmt.Errorf("unknown cache strategy: %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler, so CacheStrategy
// round-trips through json configuration and flag values.
func (s CacheStrategy) MarshalText() ([]byte, error) {
	if s < EagerCache || s > NoCache {
		return nil, fmt.Errorf("invalid cache strategy: %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *CacheStrategy) UnmarshalText(text []byte) error {
	parsed, err := ParseCacheStrategy(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (s CacheStrategy) MarshalYAML() (any, error) {
	if s < EagerCache || s > NoCache {
		return nil, fmt.Errorf("invalid cache strategy: %d", int(s))
	}
	return s.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *CacheStrategy) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ParseCacheStrategy(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

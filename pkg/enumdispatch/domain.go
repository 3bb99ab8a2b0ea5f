package enumdispatch

import "fmt"

// Domain is the closed, ordered set of members a handler set must cover.
// It is immutable after construction; member order is the order passed to
// NewDomain and determines eager warm-up order.
type Domain[E comparable] struct {
	name    string
	members []E
	index   map[E]int
}

// NewDomain creates a domain from the given members.
//
// Panics if:
//   - name is empty
//   - no members are given
//   - the same member appears twice
func NewDomain[E comparable](name string, members ...E) *Domain[E] {
	if name == "" {
		panic("enumdispatch: domain name cannot be empty")
	}
	if len(members) == 0 {
		panic("enumdispatch: domain must have at least one member")
	}

	index := make(map[E]int, len(members))
	for i, m := range members {
		if _, exists := index[m]; exists {
			panic(fmt.Sprintf("enumdispatch: duplicate domain member: %s", formatMember(m)))
		}
		index[m] = i
	}

	return &Domain[E]{
		name:    name,
		members: append([]E(nil), members...),
		index:   index,
	}
}

// Name returns the domain's name, used in error messages and log fields.
func (d *Domain[E]) Name() string { return d.name }

// Size returns the number of members in the domain.
func (d *Domain[E]) Size() int { return len(d.members) }

// Contains reports whether member belongs to the domain.
func (d *Domain[E]) Contains(member E) bool {
	_, ok := d.index[member]
	return ok
}

// Members returns the members in declaration order.
// The returned slice is a copy.
func (d *Domain[E]) Members() []E {
	out := make([]E, len(d.members))
	copy(out, d.members)
	return out
}

// formatMember renders a member for error messages and log fields.
// Uses the member's Stringer when it has one.
func formatMember[E comparable](member E) string {
	if s, ok := any(member).(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", member)
}

package enumdispatch

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for handler set construction.
var (
	// ErrNotExhaustive indicates some domain member has no handler.
	ErrNotExhaustive = errors.New("handler set is not exhaustive")

	// ErrDuplicateHandler indicates two registrations target the same member.
	ErrDuplicateHandler = errors.New("duplicate handler registration")

	// ErrForeignMember indicates a registration targets a value outside the domain.
	ErrForeignMember = errors.New("handler registered for non-member of domain")

	// ErrFinalized indicates a registration on an already-built handler set.
	ErrFinalized = errors.New("handler set already built")
)

// Sentinel errors for dispatch.
var (
	// ErrUnboundInstance indicates Call() on an instance with no bound
	// handler, i.e. a zero Instance not obtained from a built set.
	ErrUnboundInstance = errors.New("instance has no bound handler")

	// ErrUnknownMember indicates Instance() or Call() with a value that
	// is not a member of the set's domain.
	ErrUnknownMember = errors.New("member not in domain")
)

// NonExhaustiveError reports domain members left without a handler.
type NonExhaustiveError struct {
	// Domain is the name of the domain the set was built over.
	Domain string
	// Missing lists every member with no registered handler, in domain order.
	Missing []string
}

// Error implements the error interface.
func (e *NonExhaustiveError) Error() string {
	return fmt.Sprintf("handler set over %s is not exhaustive, missing: %s",
		e.Domain, strings.Join(e.Missing, ", "))
}

// Unwrap returns ErrNotExhaustive for errors.Is support.
func (e *NonExhaustiveError) Unwrap() error { return ErrNotExhaustive }

// DuplicateError reports a member targeted by more than one registration.
type DuplicateError struct {
	// Domain is the name of the domain the set was built over.
	Domain string
	// Member is the member registered twice.
	Member string
	// First is the name of the handler already registered for Member.
	First string
	// Second is the name of the handler that collided with it.
	Second string
}

// Error implements the error interface.
func (e *DuplicateError) Error() string {
	return fmt.Sprintf("handler set over %s: multiple handlers for %s (%s and %s)",
		e.Domain, e.Member, e.First, e.Second)
}

// Unwrap returns ErrDuplicateHandler for errors.Is support.
func (e *DuplicateError) Unwrap() error { return ErrDuplicateHandler }

// ForeignMemberError reports registrations targeting values outside the domain.
type ForeignMemberError struct {
	// Domain is the name of the domain the set was built over.
	Domain string
	// Members lists every registered value that is not a domain member,
	// in registration order.
	Members []string
}

// Error implements the error interface.
func (e *ForeignMemberError) Error() string {
	return fmt.Sprintf("handler set over %s has handlers for non-members: %s",
		e.Domain, strings.Join(e.Members, ", "))
}

// Unwrap returns ErrForeignMember for errors.Is support.
func (e *ForeignMemberError) Unwrap() error { return ErrForeignMember }

// FinalizedError is the panic value when a registration is attempted on a
// consumed builder. Define a new builder instead; a built set cannot be
// extended.
type FinalizedError struct {
	// Domain is the name of the domain the builder was created over.
	Domain string
}

// Error implements the error interface.
func (e *FinalizedError) Error() string {
	return fmt.Sprintf("handler set over %s is finalized; registration is only legal before Build", e.Domain)
}

// Unwrap returns ErrFinalized for errors.Is support.
func (e *FinalizedError) Unwrap() error { return ErrFinalized }

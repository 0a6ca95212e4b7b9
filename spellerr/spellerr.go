// Package spellerr defines the typed error kinds surfaced at the
// spellguard core boundary.
//
// Every error the core returns wraps one of a small, closed set of kinds
// so callers (and outer-language bindings) can branch on failure class
// without parsing message strings. The shape is modeled on the envelope
// pattern used elsewhere in this stack, trimmed to what a library needs:
// a kind, a message, an optional wrapped cause, and optional structured
// details for debugging.
package spellerr

import (
	"errors"
	"fmt"
)

// Kind identifies the class of failure. See spec §7.
type Kind string

const (
	// NotLoaded is returned when an operation other than Load/Healthcheck
	// is attempted before any snapshot has been published.
	NotLoaded Kind = "not_loaded"

	// InvalidArgument covers null/empty words, non-list token batches,
	// edit_distance outside {1,2}, non-finite or negative frequency
	// thresholds, and malformed configuration.
	InvalidArgument Kind = "invalid_argument"

	// FileNotFound is returned when a dictionary or protected-terms path
	// cannot be read.
	FileNotFound Kind = "file_not_found"

	// MalformedPattern is returned when a supplied or built-in regular
	// expression fails to compile.
	MalformedPattern Kind = "malformed_pattern"

	// InternalInvariant signals a bug: a state the implementation
	// believes to be unreachable.
	InternalInvariant Kind = "internal_invariant"
)

// Error is the concrete error type returned across the spellguard core
// boundary.
type Error struct {
	Kind    Kind
	Message string
	Details map[string]any
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("spellguard: %s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("spellguard: %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is a *Error with the same Kind, so callers
// can write errors.Is(err, spellerr.New(spellerr.NotLoaded, "")).
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return t.Kind == e.Kind
	}
	return false
}

// New constructs an *Error with the given kind and message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap constructs an *Error wrapping cause.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// WithDetails attaches structured diagnostic context and returns e for
// chaining.
func (e *Error) WithDetails(details map[string]any) *Error {
	e.Details = details
	return e
}

// Of reports whether err (or something it wraps) carries the given Kind.
func Of(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

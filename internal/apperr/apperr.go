// Package apperr defines the closed set of error kinds that cross layer
// boundaries. Repositories and services return *Error values; the HTTP layer
// maps each Kind to a response without inspecting messages.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for response mapping.
type Kind int

const (
	// Internal is any failure the client cannot act on.
	Internal Kind = iota
	// InvalidID means an identifier does not have the shape the store expects.
	InvalidID
	// Validation means the request payload broke a field rule or a uniqueness constraint.
	Validation
	// NotFound means the addressed entity does not exist.
	NotFound
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case InvalidID:
		return "invalid_id"
	case Validation:
		return "validation"
	case NotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// MalformattedID is the client-facing message for InvalidID errors.
const MalformattedID = "malformatted id"

// Error is a classified error.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// InvalidIDf reports a malformed identifier.
func InvalidIDf(id string, cause error) *Error {
	return &Error{
		Kind:    InvalidID,
		Message: MalformattedID,
		Err:     fmt.Errorf("id %q: %w", id, cause),
	}
}

// NewValidation reports a rejected payload. msg is shown to the client.
func NewValidation(msg string) *Error {
	return &Error{Kind: Validation, Message: msg}
}

// NewNotFound reports a missing entity.
func NewNotFound(entity, id string) *Error {
	return &Error{Kind: NotFound, Message: fmt.Sprintf("%s %s not found", entity, id)}
}

// KindOf returns the Kind of err, or Internal when err carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// Is reports whether err is classified as kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// Message returns the client-facing message carried by err, or "" if none.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return ""
}

package core

import (
	"errors"
	"fmt"
)

// Failure kinds. Every failure raised by the service unwraps to exactly one of these; anything
// else is an internal error.
var (
	ErrNotFound       = errors.New("not found")
	ErrAlreadyExists  = errors.New("already exists")
	ErrInvalidRequest = errors.New("invalid request")
	ErrValidation     = errors.New("validation failure")
)

// Error is a typed failure with a human-readable message. It unwraps to its Kind so callers can
// use errors.Is(err, core.ErrNotFound).
type Error struct {
	Kind    error
	Message string
	// Detail is optional additional context, e.g. the offending field of a validation failure.
	Detail string
}

// NewError creates a new failure of the given kind with a formatted message.
func NewError(kind error, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// WithDetail returns a copy of the error with the specified detail attached.
func (e *Error) WithDetail(detail string) *Error {
	c := *e
	c.Detail = detail
	return &c
}

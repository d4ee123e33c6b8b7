package services

import "errors"

// Error kinds surfaced to callers. Anything that does not wrap one of these
// is an internal failure.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
)

// Error is a caller-facing failure: Message is safe to return as is and Kind
// is ErrValidation or ErrNotFound.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func validationError(message string) error {
	return &Error{Kind: ErrValidation, Message: message}
}

func notFoundError(message string) error {
	return &Error{Kind: ErrNotFound, Message: message}
}

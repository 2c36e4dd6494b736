package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure for the transport layer. Every failure in the
// core is terminal for the request; the controller maps Kind to a status.
type Kind int

const (
	KindInternal Kind = iota
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindValidation
)

type Error struct {
	Kind   Kind
	Reason string
}

func (e *Error) Error() string { return e.Reason }

func New(kind Kind, reason string) *Error {
	return &Error{Kind: kind, Reason: reason}
}

func Unauthorized(reason string) *Error { return New(KindUnauthorized, reason) }
func Forbidden(reason string) *Error    { return New(KindForbidden, reason) }
func NotFound(reason string) *Error     { return New(KindNotFound, reason) }
func Conflict(reason string) *Error     { return New(KindConflict, reason) }
func Validation(reason string) *Error   { return New(KindValidation, reason) }

func NotFoundf(format string, args ...any) *Error {
	return New(KindNotFound, fmt.Sprintf(format, args...))
}

func Conflictf(format string, args ...any) *Error {
	return New(KindConflict, fmt.Sprintf(format, args...))
}

func Validationf(format string, args ...any) *Error {
	return New(KindValidation, fmt.Sprintf(format, args...))
}

// KindOf extracts the Kind from err. Anything that is not an *Error is
// internal: store errors are not surfaced to clients with detail.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}

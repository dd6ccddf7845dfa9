// Package apperr defines the error kinds operations report to callers.
// Each kind maps to one HTTP status; the message of an Error is safe to show to clients.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error.
type Kind int

const (
	// KindStore is an unexpected persistence failure. Its detail is never shown to clients.
	KindStore Kind = iota
	// KindValidation is malformed or out of range input.
	KindValidation
	// KindConflict is a uniqueness or dependency conflict.
	KindConflict
	// KindAuth is a missing, invalid or expired credential.
	KindAuth
	// KindForbidden is an authenticated caller lacking the admin role.
	KindForbidden
	// KindNotFound is a reference that does not resolve.
	KindNotFound
)

// Sentinels for errors.Is checks against a kind.
var (
	ErrStore      = &Error{Kind: KindStore}
	ErrValidation = &Error{Kind: KindValidation}
	ErrConflict   = &Error{Kind: KindConflict}
	ErrAuth       = &Error{Kind: KindAuth}
	ErrForbidden  = &Error{Kind: KindForbidden}
	ErrNotFound   = &Error{Kind: KindNotFound}
)

// Error carries a kind, a client facing message and an optional cause.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

// Error implements error.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}

	return e.Message
}

// Unwrap returns the cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error of the same kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}

	return t.Kind == e.Kind
}

// Status maps the kind to an HTTP status code.
func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation, KindConflict:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Validation returns a KindValidation error.
func Validation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// Conflict returns a KindConflict error.
func Conflict(format string, args ...interface{}) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// Auth returns a KindAuth error wrapping cause, which may be nil.
func Auth(cause error, message string) *Error {
	return &Error{Kind: KindAuth, Message: message, Cause: cause}
}

// Forbidden returns a KindForbidden error.
func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

// NotFound returns a KindNotFound error.
func NotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Store wraps an unexpected persistence error. message names the failed operation.
func Store(cause error, message string) *Error {
	return &Error{Kind: KindStore, Message: message, Cause: cause}
}

// From returns the *Error in err's chain, or a KindStore error wrapping err.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}

	return Store(err, "internal error")
}

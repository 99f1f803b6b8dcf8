// Package shared holds cross-cutting helpers used by every entity vertical.
package shared

import (
	"errors"
	"fmt"
)

// Sentinel errors for the domain layer. Services return errors that wrap
// one of these; the transport adapters map them to status codes.
var (
	// ErrNotFound indicates the referenced id or natural key does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict indicates a uniqueness constraint or dependency violation.
	ErrConflict = errors.New("conflict")
	// ErrValidation indicates a field or domain rule violation.
	ErrValidation = errors.New("validation failed")
)

// Error carries a user-facing message together with its taxonomy sentinel so
// errors.Is keeps working while Error() stays presentable.
type Error struct {
	kind error
	msg  string
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.kind }

// NotFoundf builds a not-found error with a formatted message.
func NotFoundf(format string, args ...any) error {
	return &Error{kind: ErrNotFound, msg: fmt.Sprintf(format, args...)}
}

// Conflictf builds a conflict error with a formatted message.
func Conflictf(format string, args ...any) error {
	return &Error{kind: ErrConflict, msg: fmt.Sprintf(format, args...)}
}

// Validationf builds a validation error with a formatted message.
func Validationf(format string, args ...any) error {
	return &Error{kind: ErrValidation, msg: fmt.Sprintf(format, args...)}
}

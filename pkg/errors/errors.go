// Package errors provides reldir's structured error type. Every error
// leaving a command carries a stable code so callers (and tests) can
// branch on the failure kind without string matching.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a failure category.
type ErrorCode string

const (
	ErrUnknown  ErrorCode = "UNKNOWN"
	ErrInternal ErrorCode = "INTERNAL"

	// ErrValidation covers bad or missing input: nonexistent or
	// unwritable destination, negative counts, missing versions
	// directory or current link. Never retried, never partially
	// applied.
	ErrValidation ErrorCode = "VALIDATION"

	// ErrState covers a layout that parses but cannot be operated on:
	// the current link resolves to a release not present in the
	// listing, or a rollback target falls outside the release list.
	// No mutation is performed.
	ErrState ErrorCode = "STATE"

	// ErrPermission is returned by cleanup's pre-flight check when a
	// deletion candidate is not writable. No deletions are performed.
	ErrPermission ErrorCode = "PERMISSION"

	// ErrNotFound is returned when the versions directory itself does
	// not exist.
	ErrNotFound ErrorCode = "NOT_FOUND"

	// ErrBrokenLink is returned when the current link is missing or
	// cannot be resolved.
	ErrBrokenLink ErrorCode = "BROKEN_LINK"
)

// ReldirError is a structured error with a code, a human-readable
// message, and optional details keyed by name (typically the offending
// path).
type ReldirError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

func (e *ReldirError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *ReldirError) Unwrap() error {
	return e.Wrapped
}

// Is matches two ReldirErrors by code.
func (e *ReldirError) Is(target error) bool {
	var targetErr *ReldirError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a ReldirError with the given code and message.
func New(code ErrorCode, message string) *ReldirError {
	return &ReldirError{Code: code, Message: message}
}

// Newf creates a ReldirError with a formatted message.
func Newf(code ErrorCode, format string, args ...interface{}) *ReldirError {
	return &ReldirError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps err with a code and message. Returns nil when err is nil.
func Wrap(err error, code ErrorCode, message string) *ReldirError {
	if err == nil {
		return nil
	}
	return &ReldirError{Code: code, Message: message, Wrapped: err}
}

// Wrapf wraps err with a code and a formatted message. Returns nil
// when err is nil.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ReldirError {
	if err == nil {
		return nil
	}
	return &ReldirError{Code: code, Message: fmt.Sprintf(format, args...), Wrapped: err}
}

// WithDetail attaches a named detail to the error and returns it.
func (e *ReldirError) WithDetail(key string, value interface{}) *ReldirError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode reports whether err (or anything it wraps) carries code.
func IsErrorCode(err error, code ErrorCode) bool {
	var relErr *ReldirError
	if errors.As(err, &relErr) {
		return relErr.Code == code
	}
	return false
}

// GetErrorCode returns the code carried by err, or ErrUnknown for
// errors that are not ReldirErrors.
func GetErrorCode(err error) ErrorCode {
	var relErr *ReldirError
	if errors.As(err, &relErr) {
		return relErr.Code
	}
	return ErrUnknown
}

// Package errors provides structured error types for plotutil.
//
// Every failure surfaced by the formatting and geometry packages carries a
// machine-readable [Code], so callers (the CLI, the HTTP API, scripts) can
// branch on the kind of failure without parsing messages.
//
// # Error Codes
//
//   - FORMAT: a value could not be rounded or decomposed (zero where a
//     logarithm is needed, NaN, Inf, malformed scientific notation)
//   - GEOMETRY: non-positive tick spacing, degenerate axis range, or an
//     unknown corner/location
//   - INVALID_*: input validation failures
//   - RENDER: the plot surface failed to draw or save
//   - INTERNAL: unexpected internal errors
//
// # Usage
//
//	err := errors.Format("cannot round %v: log10 undefined", x)
//	if errors.Is(err, errors.ErrCodeFormat) {
//	    // bad input value
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeRender, origErr, "save %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Core failures
	ErrCodeFormat   Code = "FORMAT"
	ErrCodeGeometry Code = "GEOMETRY"

	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidPath   Code = "INVALID_PATH"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"

	// Resource not found errors
	ErrCodeNotFound Code = "NOT_FOUND"

	// Output errors
	ErrCodeRender Code = "RENDER"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Format creates a FORMAT error: the input to a formatting routine was zero,
// non-finite, or could not be decomposed into mantissa, sign and exponent.
func Format(format string, args ...any) *Error {
	return New(ErrCodeFormat, format, args...)
}

// Geometry creates a GEOMETRY error: a spacing was not positive, an axis
// range was degenerate, or a location index was out of range.
func Geometry(format string, args ...any) *Error {
	return New(ErrCodeGeometry, format, args...)
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

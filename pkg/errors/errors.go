// Package errors provides structured error types for the panels layout layer.
//
// Every failure raised by a container mutation or access is a programmer-contract
// violation and is reported synchronously with a machine-readable code:
//   - OUT_OF_BOUNDS: index or slice outside the current collection
//   - SHAPE_MISMATCH: replacement length does not match the addressed slice
//   - OVERLAP: grid region intersects an occupied cell
//   - INVARIANT_VIOLATION: internal collections desynchronized
//   - INVALID_TYPE: a value of the wrong kind was supplied
//   - INVALID_INPUT, NOT_FOUND, READ_ONLY: property and lookup failures
//
// # Usage
//
//	err := errors.New(errors.ErrCodeOutOfBounds, "index %d out of bounds on %s", i, name)
//	if errors.Is(err, errors.ErrCodeOutOfBounds) {
//	    // Handle bounds error
//	}
//
//	// Wrap backend failures
//	err := errors.Wrap(errors.ErrCodeBackend, origErr, "update %s node", kind)
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Collection contract errors
	ErrCodeOutOfBounds   Code = "OUT_OF_BOUNDS"
	ErrCodeShapeMismatch Code = "SHAPE_MISMATCH"
	ErrCodeOverlap       Code = "OVERLAP"
	ErrCodeInvariant     Code = "INVARIANT_VIOLATION"
	ErrCodeInvalidType   Code = "INVALID_TYPE"

	// Property errors
	ErrCodeInvalidInput Code = "INVALID_INPUT"
	ErrCodeReadOnly     Code = "READ_ONLY"
	ErrCodeNotFound     Code = "NOT_FOUND"

	// Backend and internal errors
	ErrCodeBackend     Code = "BACKEND_ERROR"
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
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

// coder is implemented by specialised error types that carry a code.
type coder interface {
	error
	Code() Code
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error or a coded error type
// with a matching code.
func Is(err error, code Code) bool {
	return GetCode(err) == code && code != ""
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error carries no code.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var c coder
	if errors.As(err, &c) {
		return c.Code()
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

// Conflict describes one existing grid region hit by an overlapping placement.
type Conflict struct {
	Row, Col int    // First overlapping cell found for this region
	Region   string // Region key, formatted
	Owner    string // Description of the component occupying the region
}

// OverlapError reports a grid placement that intersects occupied cells.
// Map is the rendered occupancy grid (0 empty, 1 occupied, 2+ overlapping)
// including the rejected region.
type OverlapError struct {
	Conflicts []Conflict
	Map       string
}

// Error implements the error interface.
func (e *OverlapError) Error() string {
	var b strings.Builder
	b.WriteString("specified region overlaps with the following existing object(s) in the grid:\n\n")
	for _, c := range e.Conflicts {
		fmt.Fprintf(&b, "    (%d, %d): %s %s\n\n", c.Row, c.Col, c.Region, c.Owner)
	}
	b.WriteString("the following shows a view of the grid (empty: 0, occupied: 1, overlapping: 2):\n\n")
	b.WriteString(e.Map)
	return b.String()
}

// Code returns the error code for this error type.
func (e *OverlapError) Code() Code {
	return ErrCodeOverlap
}

// Package errors provides structured error types for the windowgram compiler.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across CLI and API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Families
//
// Codes fall into two disjoint families:
//   - Structural: the text is not a windowgram (bad character, ragged width,
//     no content). Raised while parsing; never retryable.
//   - Semantic: the text parsed but the layout cannot serve the requested
//     operation (overlapping panes, layouts that are not nested splits,
//     degenerate scales, incomplete groups).
//
// Structural errors may carry the 1-based input line they were found on.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeOverlap, "panes %c and %c overlap", a, b)
//	if errors.Is(err, errors.ErrCodeOverlap) {
//	    // Handle layered layout
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeCache, origErr, "failed to read %s", key)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Structural (parse-time) errors
	ErrCodeInvalidCharacter  Code = "INVALID_CHARACTER"
	ErrCodeInconsistentWidth Code = "INCONSISTENT_WIDTH"
	ErrCodeEmptyWindowgram   Code = "EMPTY_WINDOWGRAM"

	// Semantic (post-parse) errors
	ErrCodeOverlap            Code = "OVERLAP"
	ErrCodeUnsupportedLayout  Code = "UNSUPPORTED_LAYOUT"
	ErrCodeDegenerateScale    Code = "DEGENERATE_SCALE"
	ErrCodeIncompleteGroup    Code = "INCOMPLETE_GROUP"
	ErrCodeInvalidPanes       Code = "INVALID_PANES"
	ErrCodeNonRectangularPane Code = "NON_RECTANGULAR_PANE"

	// Input validation errors
	ErrCodeInvalidInput Code = "INVALID_INPUT"
	ErrCodeInvalidPath  Code = "INVALID_PATH"

	// Infrastructure errors
	ErrCodeCache    Code = "CACHE_ERROR"
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// IsStructural reports whether code belongs to the parse-time family.
func (c Code) IsStructural() bool {
	switch c {
	case ErrCodeInvalidCharacter, ErrCodeInconsistentWidth, ErrCodeEmptyWindowgram:
		return true
	}
	return false
}

// IsSemantic reports whether code belongs to the post-parse family.
func (c Code) IsSemantic() bool {
	switch c {
	case ErrCodeOverlap, ErrCodeUnsupportedLayout, ErrCodeDegenerateScale,
		ErrCodeIncompleteGroup, ErrCodeInvalidPanes, ErrCodeNonRectangularPane:
		return true
	}
	return false
}

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Line    int    // 1-based source line (0 when not associated with a line)
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, msg)
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

// NewAtLine creates a new Error associated with a 1-based source line.
func NewAtLine(code Code, line int, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Line:    line,
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

// AtLine shifts the line association of err by offset. Callers that embed a
// windowgram inside a larger document use it to report document lines.
// Errors without a line association are returned unchanged.
func AtLine(err error, offset int) error {
	var e *Error
	if !errors.As(err, &e) || e.Line == 0 {
		return err
	}
	shifted := *e
	shifted.Line += offset
	return &shifted
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

// GetLine extracts the source line from an error, or 0.
func GetLine(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Line
	}
	return 0
}

// IsStructural reports whether err is a parse-time error.
func IsStructural(err error) bool {
	return GetCode(err).IsStructural()
}

// IsSemantic reports whether err is a post-parse error.
func IsSemantic(err error) bool {
	return GetCode(err).IsSemantic()
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Line > 0 {
			return fmt.Sprintf("line %d: %s", e.Line, e.Message)
		}
		return e.Message
	}
	return err.Error()
}

package errors

import (
	"strings"
	"unicode"
)

// MaxInputBytes bounds the size of windowgram text accepted from untrusted
// callers. 62 panes never need more than a few thousand cells.
const MaxInputBytes = 64 << 10

// MaxDimension bounds scale targets and canvas sizes.
const MaxDimension = 4096

// ValidateInput validates raw windowgram text received from an untrusted
// source (HTTP body, stdin) before it is parsed.
//
// The validation rules are intentionally conservative:
//   - No empty input
//   - Maximum length of MaxInputBytes
//   - No control characters other than newline, carriage return and tab
func ValidateInput(text string) error {
	if strings.TrimSpace(text) == "" {
		return New(ErrCodeInvalidInput, "windowgram cannot be empty")
	}

	if len(text) > MaxInputBytes {
		return New(ErrCodeInvalidInput, "windowgram too large (max %d bytes)", MaxInputBytes)
	}

	for _, r := range text {
		if r == '\n' || r == '\r' || r == '\t' {
			continue
		}
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "windowgram contains invalid control characters")
		}
	}

	return nil
}

// ValidateDimension validates a width or height argument.
func ValidateDimension(name string, v int) error {
	if v < 1 {
		return New(ErrCodeInvalidInput, "%s must be at least 1, got %d", name, v)
	}
	if v > MaxDimension {
		return New(ErrCodeInvalidInput, "%s too large (max %d), got %d", name, MaxDimension, v)
	}
	return nil
}

// ValidatePath validates a cache or config file path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	for _, part := range strings.Split(path, "/") {
		if part == ".." {
			return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
		}
	}

	return nil
}

package cli

import (
	"strconv"
	"strings"

	"github.com/matzehuels/windowgram/pkg/errors"
)

// Size expressions are relative to a base length in characters:
//
//	12    exactly 12 characters
//	50%   half of the base
//	2x    twice the base (also 2X and 2*)
//
// Fractions are truncated toward zero.

// parseSize converts one size expression into characters.
func parseSize(expr string, base int) (int, error) {
	s := strings.TrimSpace(expr)
	if s == "" {
		return 0, errors.New(errors.ErrCodeInvalidInput, "empty size")
	}

	var factor float64
	switch last := s[len(s)-1]; last {
	case '%', 'x', 'X', '*':
		f, err := parseFactor(s[:len(s)-1])
		if err != nil {
			return 0, errors.New(errors.ErrCodeInvalidInput, "invalid size %q", expr)
		}
		factor = f
		if last == '%' {
			factor /= 100
		}
	default:
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, errors.New(errors.ErrCodeInvalidInput,
				"invalid size %q (use characters, a percentage like 50%% or a multiplier like 2x)", expr)
		}
		return n, nil
	}
	return int(float64(base) * factor), nil
}

// parseFactor accepts digits with at most one decimal point; a comma is
// read as a decimal point.
func parseFactor(s string) (float64, error) {
	s = strings.ReplaceAll(s, ",", ".")
	if s == "" || strings.Trim(s, "0123456789.") != "" {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseFloat(s, 64)
}

// parseDims converts one or two size expressions into a width and height.
// A single expression may hold both axes as WxH or W:H; otherwise it
// applies to both axes.
func parseDims(args []string, width, height int) (int, int, error) {
	switch len(args) {
	case 1:
		if x, y, ok := splitDims(args[0]); ok {
			return parseDims([]string{x, y}, width, height)
		}
		return parseDims([]string{args[0], args[0]}, width, height)
	case 2:
		w, err := parseSize(args[0], width)
		if err != nil {
			return 0, 0, err
		}
		h, err := parseSize(args[1], height)
		if err != nil {
			return 0, 0, err
		}
		return w, h, nil
	}
	return 0, 0, errors.New(errors.ErrCodeInvalidInput, "expected one or two sizes, got %d", len(args))
}

// splitDims splits "64x36" or "200%:50%". A trailing x is a multiplier, so
// "2x" does not split; use "2x:3x" for two multipliers.
func splitDims(s string) (string, string, bool) {
	if strings.Count(s, "x") == 1 && !strings.HasSuffix(s, "x") {
		x, y, _ := strings.Cut(s, "x")
		return x, y, true
	}
	if strings.Count(s, ":") == 1 {
		x, y, _ := strings.Cut(s, ":")
		return x, y, true
	}
	return "", "", false
}

// parseCanvas parses an exact WxH canvas size.
func parseCanvas(s string) (int, int, error) {
	x, y, ok := splitDims(s)
	if !ok {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "invalid canvas %q, expected WxH", s)
	}
	w, errW := strconv.Atoi(x)
	h, errH := strconv.Atoi(y)
	if errW != nil || errH != nil {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "invalid canvas %q, expected WxH", s)
	}
	if err := errors.ValidateDimension("canvas width", w); err != nil {
		return 0, 0, err
	}
	if err := errors.ValidateDimension("canvas height", h); err != nil {
		return 0, 0, err
	}
	return w, h, nil
}

// parseGrid parses a break grid such as "3x2" (columns x rows).
func parseGrid(s string) (int, int, error) {
	x, y, ok := strings.Cut(strings.ToLower(s), "x")
	cols, errC := strconv.Atoi(x)
	rows, errR := strconv.Atoi(y)
	if !ok || errC != nil || errR != nil || cols < 1 || rows < 1 {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "invalid grid %q, expected COLSxROWS like 3x2", s)
	}
	return cols, rows, nil
}

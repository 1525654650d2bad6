// Package group decides whether a set of panes forms exactly one rectangle.
//
// [Analyze] grows the set to a fixed point: it takes the bounding box of the
// set's panes, collects every other pane found inside it, adds those, and
// repeats. When nothing new is found the set's box is covered by members only.
// Panes that had to be added are returned as suggestions, so a caller can
// offer "join AC" → "join ABCD".
package group

import (
	"strings"

	"github.com/matzehuels/windowgram/pkg/errors"
	"github.com/matzehuels/windowgram/pkg/windowgram"
)

// Status is the outcome of Analyze.
type Status int

const (
	// Success means the panes already form one rectangle.
	Success Status = iota + 1
	// InvalidPanes means an identifier is not used by the windowgram.
	InvalidPanes
	// InsufficientPanes means the suggestions must be added to form one
	// rectangle.
	InsufficientPanes
)

func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case InvalidPanes:
		return "invalid_panes"
	case InsufficientPanes:
		return "insufficient_panes"
	}
	return "unknown"
}

// MarshalText encodes the status name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Result is the outcome of Analyze.
type Result struct {
	Status Status `json:"status"`

	// Suggestions lists, in alphabet order, the panes to add. Empty unless
	// Status is InsufficientPanes.
	Suggestions string `json:"suggestions,omitempty"`

	// Invalid lists the identifiers that caused InvalidPanes.
	Invalid string `json:"invalid,omitempty"`

	// Bounds is the rectangle covered by the completed group.
	Bounds windowgram.Rect `json:"bounds"`
}

// Err maps a non-success result to an INVALID_PANES or INCOMPLETE_GROUP error.
func (r Result) Err() error {
	switch r.Status {
	case InvalidPanes:
		return errors.New(errors.ErrCodeInvalidPanes, "panes %s are not in the windowgram", r.Invalid)
	case InsufficientPanes:
		return errors.New(errors.ErrCodeIncompleteGroup,
			"group is not a rectangle, but it would be if you add: %s", r.Suggestions)
	}
	return nil
}

// Analyze reports whether ids forms one rectangle in w, and if not, which
// panes complete it.
func Analyze(w *windowgram.Windowgram, ids string) Result {
	used := w.Used()
	var invalid []byte
	for i := 0; i < len(ids); i++ {
		c := ids[i]
		if !windowgram.IsPaneID(c) || strings.IndexByte(used, c) < 0 {
			invalid = append(invalid, c)
		}
	}
	if len(invalid) > 0 || ids == "" {
		return Result{Status: InvalidPanes, Invalid: string(invalid)}
	}

	set := windowgram.SortIDs(ids)
	suggestions := ""
	for {
		mask, err := windowgram.GenerateMask(w, set)
		if err != nil {
			return Result{Status: InvalidPanes, Invalid: set}
		}
		bounds, _ := windowgram.MaskBounds(mask)

		var deficient []byte
		for y := bounds.Y; y < bounds.Bottom(); y++ {
			for x := bounds.X; x < bounds.Right(); x++ {
				if c := w.At(x, y); strings.IndexByte(set, c) < 0 {
					deficient = append(deficient, c)
				}
			}
		}
		if len(deficient) == 0 {
			res := Result{Status: Success, Bounds: bounds}
			if suggestions != "" {
				res.Status, res.Suggestions = InsufficientPanes, suggestions
			}
			return res
		}
		set = windowgram.Union(set, string(deficient))
		suggestions = windowgram.Union(suggestions, string(deficient))
	}
}

// Package flex provides windowgram modifiers: operations that derive a new
// layout from an existing one, such as splitting a pane, joining a group or
// renaming panes.
//
// Every operation takes an immutable windowgram and returns a new one; on
// error the input is untouched. Sizes are plain character counts. Parsing of
// percentages and multipliers belongs to the caller.
package flex

import (
	"fmt"
	"strings"

	"github.com/matzehuels/windowgram/pkg/errors"
	"github.com/matzehuels/windowgram/pkg/windowgram"
)

// Edge names a side of a windowgram or pane.
type Edge int

const (
	Top Edge = iota
	Bottom
	Right
	Left
)

var edgeNames = [...][]string{
	Top:    {"top", "t", "tp", "north", "n", "up", "u", "over", "above"},
	Bottom: {"bottom", "b", "bt", "south", "s", "down", "d", "under", "below"},
	Right:  {"right", "r", "rt", "east", "e"},
	Left:   {"left", "l", "lt", "west", "w"},
}

// ParseEdge recognizes an edge by name or alias, case-insensitively.
func ParseEdge(s string) (Edge, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for e, names := range edgeNames {
		for _, n := range names {
			if n == s {
				return Edge(e), nil
			}
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidInput,
		"invalid edge %q, please specify either: top, bottom, left, or right", s)
}

func (e Edge) String() string {
	if e < Top || e > Left {
		return fmt.Sprintf("Edge(%d)", int(e))
	}
	return edgeNames[e][0]
}

// Vertical reports whether the edge is horizontal in extent, i.e. a split
// against it stacks panes vertically.
func (e Edge) Vertical() bool { return e == Top || e == Bottom }

// Pair is one from → to mapping for Rename and Swap. Both sides hold the same
// number of pane identifiers; the i-th of From maps to the i-th of To.
type Pair struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Pairs groups a flat argument list into pairs.
func Pairs(args []string) ([]Pair, error) {
	if len(args) == 0 || len(args)%2 != 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "insufficient data, every <from> must be followed by <to>")
	}
	pairs := make([]Pair, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		pairs = append(pairs, Pair{From: args[i], To: args[i+1]})
	}
	return pairs, nil
}

// Mirror reverses the windowgram left to right.
func Mirror(w *windowgram.Windowgram) *windowgram.Windowgram {
	chars := w.Chars()
	for _, row := range chars {
		for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
			row[i], row[j] = row[j], row[i]
		}
	}
	return mustChars(chars, w.Extended())
}

// Flip reverses the windowgram top to bottom.
func Flip(w *windowgram.Windowgram) *windowgram.Windowgram {
	chars := w.Chars()
	for i, j := 0, len(chars)-1; i < j; i, j = i+1, j-1 {
		chars[i], chars[j] = chars[j], chars[i]
	}
	return mustChars(chars, w.Extended())
}

// mustChars rebuilds a grid derived from a valid windowgram by moving or
// substituting valid identifiers.
func mustChars(chars [][]byte, extended bool) *windowgram.Windowgram {
	out, err := windowgram.FromChars(chars, extended)
	if err != nil {
		panic(err)
	}
	return out
}

// paneOf validates that id names a pane in w and returns its box.
func paneOf(w *windowgram.Windowgram, id byte) (windowgram.Pane, error) {
	if !windowgram.IsPaneID(id) {
		return windowgram.Pane{}, errors.New(errors.ErrCodeInvalidPanes, "pane %q is invalid", id)
	}
	p, ok := w.Pane(id)
	if !ok {
		return windowgram.Pane{}, errors.New(errors.ErrCodeInvalidPanes, "pane %c does not exist", id)
	}
	return p, nil
}

// inUseMessage reports identifiers that are requested as new panes but are
// already taken.
func inUseMessage(inUse string) error {
	if inUse == "" {
		return nil
	}
	if len(inUse) == 1 {
		return errors.New(errors.ErrCodeInvalidPanes, "specified pane (%s) is already in use", inUse)
	}
	return errors.New(errors.ErrCodeInvalidPanes, "specified panes (%s) are already in use", inUse)
}

// preferentialOrder reorders the free identifiers so that the valid ones in
// newpanes come first, in the order given, followed by the remaining free
// identifiers starting at the first one not below the last valid entry of
// newpanes and wrapping around.
func preferentialOrder(used, unused, newpanes string) string {
	var chosen []byte
	var last byte
	for i := 0; i < len(newpanes); i++ {
		c := newpanes[i]
		if windowgram.IsPaneID(c) {
			last = c
		}
		if strings.IndexByte(unused, c) >= 0 && strings.IndexByte(used, c) < 0 &&
			strings.IndexByte(string(chosen), c) < 0 {
			chosen = append(chosen, c)
		}
	}
	work := windowgram.Subtract(unused, string(chosen))
	ix := 0
	if last != 0 {
		for i := 0; i < len(work); i++ {
			if windowgram.Index(work[i]) >= windowgram.Index(last) {
				ix = i
				break
			}
		}
	}
	return string(chosen) + work[ix:] + work[:ix]
}

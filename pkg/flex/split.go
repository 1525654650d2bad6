package flex

import (
	"strings"

	"github.com/matzehuels/windowgram/pkg/errors"
	"github.com/matzehuels/windowgram/pkg/windowgram"
)

// SplitPane divides a pane in two. The new pane takes size characters along
// edge and the remainder keeps the second identifier.
//
// newpanes names the results: the first character is the new pane and the
// optional second one renames the remainder. Missing names default to the
// first free identifier and the split pane itself.
func SplitPane(w *windowgram.Windowgram, id byte, edge Edge, size int, newpanes string) (*windowgram.Windowgram, error) {
	p, err := paneOf(w, id)
	if err != nil {
		return nil, err
	}
	if p.W < 2 && p.H < 2 {
		return nil, errors.New(errors.ErrCodeInvalidPanes, "pane %c is too small to be split", id)
	}
	length := p.W
	if edge.Vertical() {
		length = p.H
	}
	if length < 2 {
		return nil, errors.New(errors.ErrCodeInvalidPanes, "pane %c is too small to be split from the %s", id, edge)
	}
	if size < 1 || size >= length {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"size %d is out of range, pane %c can be split by 1 to %d characters from the %s", size, id, length-1, edge)
	}

	free := w.Unused()
	if free == "" {
		return nil, errors.New(errors.ErrCodeInvalidPanes, "all pane identifiers have been used")
	}
	if len(newpanes) > 2 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "split yields two panes, but %d names were given", len(newpanes))
	}
	if bad := windowgram.InvalidIDs(newpanes); bad != "" {
		return nil, errors.New(errors.ErrCodeInvalidPanes, "invalid pane identifiers: %s", bad)
	}
	switch len(newpanes) {
	case 0:
		newpanes = string(free[0]) + string(id)
	case 1:
		newpanes += string(id)
	}
	if newpanes[0] == newpanes[1] {
		return nil, errors.New(errors.ErrCodeInvalidPanes, "split panes must have different names, got %s", newpanes)
	}
	var taken []byte
	for i := 0; i < len(newpanes); i++ {
		if c := newpanes[i]; c != id && strings.IndexByte(free, c) < 0 {
			taken = append(taken, c)
		}
	}
	if err := inUseMessage(string(taken)); err != nil {
		return nil, err
	}

	// first fills offsets below cut, measured from the pane's origin.
	first, second, cut := newpanes[0], newpanes[1], size
	if edge == Bottom || edge == Right {
		first, second, cut = second, first, length-size
	}

	chars := w.Chars()
	for y := p.Y; y < p.Bottom(); y++ {
		for x := p.X; x < p.Right(); x++ {
			if chars[y-1][x-1] != id {
				continue
			}
			offset := x - p.X
			if edge.Vertical() {
				offset = y - p.Y
			}
			if offset < cut {
				chars[y-1][x-1] = first
			} else {
				chars[y-1][x-1] = second
			}
		}
	}
	return windowgram.FromChars(chars, w.Extended())
}

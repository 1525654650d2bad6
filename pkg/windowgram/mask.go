package windowgram

import (
	"bytes"

	"github.com/matzehuels/windowgram/pkg/errors"
)

// GenerateMask returns an extended windowgram of the same shape as w in which
// every cell inside the bounding box of a pane in ids is [MaskOne] and every
// other cell is [MaskZero].
func GenerateMask(w *Windowgram, ids string) (*Windowgram, error) {
	panes := w.Panes()
	chars := make([][]byte, w.Height())
	for y := range chars {
		chars[y] = bytes.Repeat([]byte{MaskZero}, w.Width())
	}
	for i := 0; i < len(ids); i++ {
		p, ok := panes[ids[i]]
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidPanes, "pane %c is not in the windowgram", ids[i])
		}
		for y := p.Y; y < p.Bottom(); y++ {
			for x := p.X; x < p.Right(); x++ {
				chars[y-1][x-1] = MaskOne
			}
		}
	}
	return fromTrustedChars(chars, true), nil
}

// MaskBounds returns the bounding box of the [MaskOne] cells of a mask.
func MaskBounds(mask *Windowgram) (Rect, bool) {
	p, ok := mask.Panes()[MaskOne]
	return p.Rect, ok
}

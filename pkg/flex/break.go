package flex

import (
	"strings"

	"github.com/matzehuels/windowgram/pkg/errors"
	"github.com/matzehuels/windowgram/pkg/scale"
	"github.com/matzehuels/windowgram/pkg/windowgram"
)

// Break replaces a pane with a cols x rows grid of new panes. The windowgram
// is scaled up first when the pane does not divide evenly, so every cell of
// the grid gets the same size. Grid cells are named from newpanes, in order,
// then from the remaining free identifiers; the broken pane's own identifier
// is reusable.
func Break(w *windowgram.Windowgram, id byte, cols, rows int, newpanes string) (*windowgram.Windowgram, error) {
	p, err := paneOf(w, id)
	if err != nil {
		return nil, err
	}
	if cols < 1 || rows < 1 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "invalid grid %dx%d", cols, rows)
	}
	count := cols * rows
	if count > windowgram.MaxPanes {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"too many panes specified (%d), the limit is %d", count, windowgram.MaxPanes)
	}
	free := w.Unused()
	if count > len(free)+1 {
		return nil, errors.New(errors.ErrCodeInvalidPanes,
			"not enough panes are available for a %dx%d grid (%d free)", cols, rows, len(free)+1)
	}
	if bad := windowgram.InvalidIDs(newpanes); bad != "" {
		return nil, errors.New(errors.ErrCodeInvalidPanes, "invalid pane identifiers: %s", bad)
	}
	var taken []byte
	for i := 0; i < len(newpanes); i++ {
		c := newpanes[i]
		if c != id && strings.IndexByte(free, c) < 0 && strings.IndexByte(string(taken), c) < 0 {
			taken = append(taken, c)
		}
	}
	if err := inUseMessage(string(taken)); err != nil {
		return nil, err
	}

	// Grow the pane to the nearest multiple of the grid in each axis, then
	// scale the whole windowgram so the pane reaches that size.
	pw, ph := scaleTo(p.W, cols), scaleTo(p.H, rows)
	width := w.Width() * pw / p.W
	height := w.Height() * ph / p.H
	ex, err := scale.Exact(w, width, height, scale.Target{ID: id, W: pw, H: ph})
	if err != nil {
		return nil, err
	}
	scaled := ex.Windowgram
	sp, ok := scaled.Pane(id)
	if !ok || sp.W != pw || sp.H != ph {
		return nil, errors.New(errors.ErrCodeDegenerateScale,
			"could not scale pane %c to %dx%d for a %dx%d grid", id, pw, ph, cols, rows)
	}

	used := windowgram.Subtract(scaled.Used(), string(id))
	order := preferentialOrder(used, windowgram.Union(scaled.Unused(), string(id)), newpanes)

	chars := scaled.Chars()
	for y := sp.Y; y < sp.Bottom(); y++ {
		for x := sp.X; x < sp.Right(); x++ {
			if chars[y-1][x-1] != id {
				continue
			}
			gy := (y - sp.Y) * rows / sp.H
			gx := (x - sp.X) * cols / sp.W
			chars[y-1][x-1] = order[gy*cols+gx]
		}
	}
	return windowgram.FromChars(chars, scaled.Extended())
}

// scaleTo returns the smallest size that is at least n and divisible by
// parts; below parts it is parts itself.
func scaleTo(n, parts int) int {
	if n <= parts {
		return parts
	}
	if n%parts != 0 {
		return (n/parts + 1) * parts
	}
	return n
}

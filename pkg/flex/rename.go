package flex

import (
	"strings"

	"github.com/matzehuels/windowgram/pkg/errors"
	"github.com/matzehuels/windowgram/pkg/windowgram"
)

// Rename changes pane identifiers. All pairs apply at once, so a pane may
// take a name that another pair frees. A target must be unused after the
// renames.
//
// Each pane is selected by its bounding box, so layered input is not
// supported: boxes that overlap are painted over one another.
func Rename(w *windowgram.Windowgram, pairs []Pair) (*windowgram.Windowgram, error) {
	from, to, err := flatten(pairs)
	if err != nil {
		return nil, err
	}

	used := w.Used()
	var renamed, named []byte
	for i := 0; i < len(from); i++ {
		f := from[i]
		if strings.IndexByte(used, f) < 0 {
			return nil, errors.New(errors.ErrCodeInvalidPanes, "pane %c does not exist", f)
		}
		if strings.IndexByte(string(renamed), f) >= 0 {
			return nil, errors.New(errors.ErrCodeInvalidPanes, "pane %c is renamed more than once", f)
		}
		renamed = append(renamed, f)
	}
	// Panes left after the renames, not counting the targets.
	remaining := windowgram.Subtract(used, string(renamed))
	for i := 0; i < len(to); i++ {
		t := to[i]
		if strings.IndexByte(remaining, t) >= 0 {
			return nil, errors.New(errors.ErrCodeInvalidPanes, "pane %c is in use", t)
		}
		if strings.IndexByte(string(named), t) >= 0 {
			return nil, errors.New(errors.ErrCodeInvalidPanes, "pane %c is the target of more than one rename", t)
		}
		named = append(named, t)
	}

	layers := make([]windowgram.Layer, 0, len(from))
	for i := 0; i < len(from); i++ {
		mask, err := windowgram.GenerateMask(w, from[i:i+1])
		if err != nil {
			return nil, err
		}
		layers = append(layers, windowgram.Layer{Variant: w.Replace(from[i:i+1], to[i]), Mask: mask})
	}
	return windowgram.Composite(w, layers)
}

// Swap exchanges pane identifiers pairwise. Every pane involved must exist
// and appear in only one swap.
func Swap(w *windowgram.Windowgram, pairs []Pair) (*windowgram.Windowgram, error) {
	from, to, err := flatten(pairs)
	if err != nil {
		return nil, err
	}

	used := w.Used()
	var swapped []byte
	for _, c := range []byte(from + to) {
		if strings.IndexByte(used, c) < 0 {
			return nil, errors.New(errors.ErrCodeInvalidPanes, "pane %c does not exist", c)
		}
		if strings.IndexByte(string(swapped), c) >= 0 {
			return nil, errors.New(errors.ErrCodeInvalidPanes, "pane %c is swapped more than once", c)
		}
		swapped = append(swapped, c)
	}

	var mapping [256]byte
	for i := range mapping {
		mapping[i] = byte(i)
	}
	for i := 0; i < len(from); i++ {
		mapping[from[i]], mapping[to[i]] = to[i], from[i]
	}
	chars := w.Chars()
	for _, row := range chars {
		for x, c := range row {
			row[x] = mapping[c]
		}
	}
	return windowgram.FromChars(chars, w.Extended())
}

// flatten validates pairs and concatenates their sides.
func flatten(pairs []Pair) (from, to string, err error) {
	if len(pairs) == 0 {
		return "", "", errors.New(errors.ErrCodeInvalidInput, "no panes specified")
	}
	for _, p := range pairs {
		if len(p.From) != len(p.To) {
			return "", "", errors.New(errors.ErrCodeInvalidInput,
				"the number of panes in %s does not match %s", p.From, p.To)
		}
		if p.From == "" {
			return "", "", errors.New(errors.ErrCodeInvalidInput, "empty pane list")
		}
		if bad := windowgram.InvalidIDs(p.From + p.To); bad != "" {
			return "", "", errors.New(errors.ErrCodeInvalidPanes, "invalid pane identifiers: %s", bad)
		}
		for i := 0; i < len(p.From); i++ {
			if p.From[i] == p.To[i] {
				return "", "", errors.New(errors.ErrCodeInvalidPanes, "pane %c cannot be mapped to itself", p.From[i])
			}
		}
		from += p.From
		to += p.To
	}
	return from, to, nil
}

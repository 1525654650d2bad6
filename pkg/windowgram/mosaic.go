package windowgram

import "github.com/matzehuels/windowgram/pkg/errors"

// Layer is one transformed variant of a windowgram together with the mask
// selecting which of its cells take part in a composite.
type Layer struct {
	Variant *Windowgram
	Mask    *Windowgram
}

// Composite merges layers, ordered bottom to top, over base. For each cell the
// topmost layer whose mask marks the cell [MaskOne] supplies the character;
// cells no mask selects keep the base character.
//
// Each variant is computed independently against the same pre-transform
// layout, so simultaneous renames such as 1→2 and 2→1 do not collide.
func Composite(base *Windowgram, layers []Layer) (*Windowgram, error) {
	extended := base.extended
	for i, l := range layers {
		if l.Variant == nil || l.Mask == nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "layer %d is incomplete", i+1)
		}
		for _, g := range []*Windowgram{l.Variant, l.Mask} {
			if g.Width() != base.Width() || g.Height() != base.Height() {
				return nil, errors.New(errors.ErrCodeInvalidInput,
					"layer %d is %dx%d, base is %dx%d", i+1, g.Width(), g.Height(), base.Width(), base.Height())
			}
		}
		extended = extended || l.Variant.extended
	}

	chars := base.Chars()
	for y := range chars {
		for x := range chars[y] {
			for i := len(layers) - 1; i >= 0; i-- {
				if layers[i].Mask.lines[y][x] == MaskOne {
					chars[y][x] = layers[i].Variant.lines[y][x]
					break
				}
			}
		}
	}
	return fromTrustedChars(chars, extended), nil
}

package windowgram

import (
	"strings"

	"github.com/matzehuels/windowgram/pkg/errors"
)

// Windowgram is an immutable rectangular grid of pane identifiers.
//
// The zero value is not usable; construct with [Parse], [ParseExtended],
// [FromLines], [FromChars] or [FromPanes].
type Windowgram struct {
	lines    []string
	extended bool
}

// =============================================================================
// Construction
// =============================================================================

// Parse builds a windowgram from raw text over the pane alphabet.
func Parse(text string) (*Windowgram, error) {
	return parse(text, false)
}

// ParseExtended builds a windowgram that may also contain the reserved
// symbols [Transparent], [MaskOne] and [MaskZero].
func ParseExtended(text string) (*Windowgram, error) {
	return parse(text, true)
}

// MustParse is like Parse but panics on error. For tests and fixed layouts.
func MustParse(text string) *Windowgram {
	w, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return w
}

// FromLines builds a windowgram from already-split lines.
func FromLines(lines []string, extended bool) (*Windowgram, error) {
	return parse(strings.Join(lines, "\n"), extended)
}

// FromChars builds a windowgram from a character grid.
func FromChars(chars [][]byte, extended bool) (*Windowgram, error) {
	lines := make([]string, len(chars))
	for i, row := range chars {
		lines[i] = string(row)
	}
	return FromLines(lines, extended)
}

func parse(text string, extended bool) (*Windowgram, error) {
	var lines []string
	width := 0
	for i, raw := range strings.Split(text, "\n") {
		line := raw
		if ix := strings.IndexByte(line, '#'); ix >= 0 {
			line = line[:ix]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		for col := 0; col < len(line); col++ {
			if !validSymbol(line[col], extended) {
				return nil, errors.NewAtLine(errors.ErrCodeInvalidCharacter, i+1,
					"invalid character %q at column %d", line[col], col+1)
			}
		}
		if len(lines) == 0 {
			width = len(line)
		} else if len(line) != width {
			return nil, errors.NewAtLine(errors.ErrCodeInconsistentWidth, i+1,
				"line is %d characters wide, expected %d", len(line), width)
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyWindowgram, "windowgram not specified")
	}
	return &Windowgram{lines: lines, extended: extended}, nil
}

// =============================================================================
// Export
// =============================================================================

// Width returns the number of columns.
func (w *Windowgram) Width() int { return len(w.lines[0]) }

// Height returns the number of rows.
func (w *Windowgram) Height() int { return len(w.lines) }

// Extended reports whether reserved symbols are permitted.
func (w *Windowgram) Extended() bool { return w.extended }

// At returns the identifier at the 1-based cell (x, y).
func (w *Windowgram) At(x, y int) byte { return w.lines[y-1][x-1] }

// Lines returns a copy of the rows.
func (w *Windowgram) Lines() []string {
	out := make([]string, len(w.lines))
	copy(out, w.lines)
	return out
}

// Chars returns a mutable copy of the character grid.
func (w *Windowgram) Chars() [][]byte {
	out := make([][]byte, len(w.lines))
	for i, line := range w.lines {
		out[i] = []byte(line)
	}
	return out
}

// String returns the canonical text form: rows joined by newlines with a
// trailing newline.
func (w *Windowgram) String() string {
	return strings.Join(w.lines, "\n") + "\n"
}

// MarshalText implements encoding.TextMarshaler.
func (w *Windowgram) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for plain windowgrams.
func (w *Windowgram) UnmarshalText(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*w = *parsed
	return nil
}

// Equal reports whether both windowgrams have identical cells.
func (w *Windowgram) Equal(o *Windowgram) bool {
	if w == nil || o == nil {
		return w == o
	}
	if len(w.lines) != len(o.lines) {
		return false
	}
	for i := range w.lines {
		if w.lines[i] != o.lines[i] {
			return false
		}
	}
	return true
}

// =============================================================================
// Pane Map
// =============================================================================

// PaneMap maps identifiers to their bounding boxes.
type PaneMap map[byte]Pane

// Sorted returns the panes in scan order.
func (m PaneMap) Sorted() []Pane {
	out := make([]Pane, 0, len(m))
	for _, p := range m {
		out = append(out, p)
	}
	SortPanes(out)
	return out
}

// Panes returns the bounding box of every identifier present.
func (w *Windowgram) Panes() PaneMap {
	type bounds struct{ x1, y1, x2, y2 int }
	seen := make(map[byte]*bounds)
	for y, line := range w.lines {
		for x := 0; x < len(line); x++ {
			c := line[x]
			b, ok := seen[c]
			if !ok {
				seen[c] = &bounds{x, y, x, y}
				continue
			}
			b.x1 = min(b.x1, x)
			b.x2 = max(b.x2, x)
			b.y2 = y
		}
	}
	m := make(PaneMap, len(seen))
	for c, b := range seen {
		m[c] = Pane{ID: c, Rect: Rect{X: b.x1 + 1, Y: b.y1 + 1, W: b.x2 - b.x1 + 1, H: b.y2 - b.y1 + 1}}
	}
	return m
}

// SortedPanes returns the panes in scan order.
func (w *Windowgram) SortedPanes() []Pane {
	return w.Panes().Sorted()
}

// Pane returns the bounding box of id.
func (w *Windowgram) Pane(id byte) (Pane, bool) {
	p, ok := w.Panes()[id]
	return p, ok
}

// HasPane reports whether id occurs anywhere in the grid.
func (w *Windowgram) HasPane(id byte) bool {
	for _, line := range w.lines {
		if strings.IndexByte(line, id) >= 0 {
			return true
		}
	}
	return false
}

// Used returns the identifiers present, in alphabet order.
func (w *Windowgram) Used() string {
	return SortIDs(strings.Join(w.lines, ""))
}

// Unused returns the pane identifiers not present, in alphabet order.
func (w *Windowgram) Unused() string {
	return Subtract(Alphabet, w.Used())
}

// NewPaneID returns preferred if it is a free identifier, or the first free
// identifier when preferred is 0.
func (w *Windowgram) NewPaneID(preferred byte) (byte, error) {
	unused := w.Unused()
	if unused == "" {
		return 0, errors.New(errors.ErrCodeInvalidPanes, "all pane identifiers have been used")
	}
	if preferred == 0 {
		return unused[0], nil
	}
	if !IsPaneID(preferred) {
		return 0, errors.New(errors.ErrCodeInvalidPanes, "invalid pane identifier %q", preferred)
	}
	if strings.IndexByte(unused, preferred) < 0 {
		return 0, errors.New(errors.ErrCodeInvalidPanes, "pane %c is in use", preferred)
	}
	return preferred, nil
}

// Replace returns a copy where every identifier in ids becomes id.
func (w *Windowgram) Replace(ids string, id byte) *Windowgram {
	chars := w.Chars()
	for _, row := range chars {
		for x, c := range row {
			if strings.IndexByte(ids, c) >= 0 {
				row[x] = id
			}
		}
	}
	return fromTrustedChars(chars, w.extended || IsReserved(id))
}

// Lost returns the identifiers used by before but absent from after.
func Lost(before, after *Windowgram) string {
	return Subtract(before.Used(), after.Used())
}

// fromTrustedChars wraps a grid produced by this package from a valid
// windowgram; it skips re-validation.
func fromTrustedChars(chars [][]byte, extended bool) *Windowgram {
	lines := make([]string, len(chars))
	for i, row := range chars {
		lines[i] = string(row)
	}
	return &Windowgram{lines: lines, extended: extended}
}

// FromPanes paints pane boxes, in slice order, onto a grid sized to their
// union and returns the result. Panes with no area are skipped. Every cell
// must be painted.
func FromPanes(panes []Pane) (*Windowgram, error) {
	width, height := 0, 0
	extended := false
	for _, p := range panes {
		if p.Empty() {
			continue
		}
		if p.X < 1 || p.Y < 1 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "pane %c has origin %d,%d outside the grid", p.ID, p.X, p.Y)
		}
		width = max(width, p.Right()-1)
		height = max(height, p.Bottom()-1)
		extended = extended || IsReserved(p.ID)
	}
	if width == 0 || height == 0 {
		return nil, errors.New(errors.ErrCodeEmptyWindowgram, "no pane has any area")
	}
	chars := make([][]byte, height)
	for y := range chars {
		chars[y] = make([]byte, width)
	}
	for _, p := range panes {
		if p.Empty() {
			continue
		}
		for y := p.Y; y < p.Bottom(); y++ {
			for x := p.X; x < p.Right(); x++ {
				chars[y-1][x-1] = p.ID
			}
		}
	}
	for y, row := range chars {
		for x, c := range row {
			if c == 0 {
				return nil, errors.New(errors.ErrCodeInvalidInput, "cell %d,%d is not covered by any pane", x+1, y+1)
			}
		}
	}
	return FromChars(chars, extended)
}

// =============================================================================
// Shape Validation
// =============================================================================

// ValidateShapes checks that every identifier fills its bounding box. Parsing
// does not enforce this; "12\n21" parses, and is reported here.
func (w *Windowgram) ValidateShapes() error {
	for _, p := range w.SortedPanes() {
		for y := p.Y; y < p.Bottom(); y++ {
			for x := p.X; x < p.Right(); x++ {
				if c := w.At(x, y); c != p.ID {
					return errors.New(errors.ErrCodeNonRectangularPane,
						"pane %c does not fill its box %s: cell %d,%d is %c", p.ID, p.Rect, x, y, c)
				}
			}
		}
	}
	return nil
}

package windowgram

import (
	"cmp"
	"encoding/json"
	"fmt"
	"slices"
)

// Rect is an axis-aligned rectangle in 1-based cell coordinates.
type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Right returns the exclusive right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Area returns the number of cells covered.
func (r Rect) Area() int { return r.W * r.H }

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Intersects reports whether r and o share any cell, using half-open
// intervals on both axes.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && r.Right() > o.X && r.Y < o.Bottom() && r.Bottom() > o.Y
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.W, r.H, r.X, r.Y)
}

// Pane is a named rectangular region of a windowgram.
type Pane struct {
	ID byte
	Rect
}

// paneJSON is the wire form of Pane with a string identifier.
type paneJSON struct {
	ID string `json:"id"`
	Rect
}

// MarshalJSON encodes the identifier as a one-character string.
func (p Pane) MarshalJSON() ([]byte, error) {
	return json.Marshal(paneJSON{ID: string(p.ID), Rect: p.Rect})
}

// UnmarshalJSON decodes a pane written by MarshalJSON.
func (p *Pane) UnmarshalJSON(data []byte) error {
	var v paneJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if len(v.ID) != 1 {
		return fmt.Errorf("pane id must be one character, got %q", v.ID)
	}
	p.ID, p.Rect = v.ID[0], v.Rect
	return nil
}

func (p Pane) String() string {
	return fmt.Sprintf("%c:%s", p.ID, p.Rect)
}

// Overlaps reports whether the bounding boxes of a and b intersect.
func Overlaps(a, b Pane) bool {
	return a.Rect.Intersects(b.Rect)
}

// FindOverlap returns the first pair of panes, in slice order, whose bounding
// boxes intersect. Pass panes in scan order (see [SortPanes]) for a
// deterministic result.
func FindOverlap(panes []Pane) (Pane, Pane, bool) {
	for i := range panes {
		for j := i + 1; j < len(panes); j++ {
			if Overlaps(panes[i], panes[j]) {
				return panes[i], panes[j], true
			}
		}
	}
	return Pane{}, Pane{}, false
}

// SortPanes sorts panes into scan order: top edge, then left edge, then
// identifier.
func SortPanes(panes []Pane) {
	slices.SortFunc(panes, func(a, b Pane) int {
		return cmp.Or(
			cmp.Compare(a.Y, b.Y),
			cmp.Compare(a.X, b.X),
			cmp.Compare(Index(a.ID), Index(b.ID)),
		)
	})
}

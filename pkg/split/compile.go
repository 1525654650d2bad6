package split

import (
	"github.com/charmbracelet/log"

	"github.com/matzehuels/windowgram/pkg/errors"
	"github.com/matzehuels/windowgram/pkg/windowgram"
)

// Options configures a compilation.
type Options struct {
	// Canvas is the target size. Zero uses DefaultCanvas.
	Canvas Canvas

	// Divider is subtracted from the new region's length along the split
	// axis, for multiplexers that draw a one-cell border between panes.
	Divider int

	// Logger receives a debug trace of the decomposition. Nil disables it.
	Logger *log.Logger
}

// Compile decomposes w into nested binary splits.
//
// Overlapping panes are an OVERLAP error naming both panes. A layout that
// is not expressible as nested splits is not an error: the returned plan has
// Complete() == false and lists the unsupported regions.
func Compile(w *windowgram.Windowgram, opts Options) (*Plan, error) {
	if opts.Canvas == (Canvas{}) {
		opts.Canvas = DefaultCanvas
	}
	if opts.Canvas.W < 1 || opts.Canvas.H < 1 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "canvas must be at least 1x1, got %dx%d", opts.Canvas.W, opts.Canvas.H)
	}
	if opts.Divider < 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "divider cannot be negative")
	}

	panes := w.SortedPanes()
	if a, b, ok := windowgram.FindOverlap(panes); ok {
		return nil, errors.New(errors.ErrCodeOverlap, "panes %c and %c overlap", a.ID, b.ID)
	}

	c := &compiler{
		width:  w.Width(),
		height: w.Height(),
		opts:   opts,
		nodes:  make([]node, len(panes)),
		next:   RootLinkID,
		links:  []Link{{LinkID: RootLinkID, Index: 0}},
	}
	for i, p := range panes {
		c.nodes[i] = node{pane: p}
	}

	c.decompose(RootLinkID, windowgram.Rect{X: 1, Y: 1, W: c.width, H: c.height})
	return c.plan(), nil
}

// node is an arena slot; linked is 0 while the pane is unconsumed.
type node struct {
	pane   windowgram.Pane
	linked int
}

type compiler struct {
	width, height int
	opts          Options

	nodes       []node
	next        int
	splits      []Record
	links       []Link
	unsupported []windowgram.Rect
}

func (c *compiler) decompose(link int, region windowgram.Rect) {
	for i := range c.nodes {
		n := &c.nodes[i]
		if n.linked == 0 && n.pane.Rect == region {
			n.linked = link
			c.debug("perfect fit", "pane", string(n.pane.ID), "link", link, "region", region)
			return
		}
	}

	for _, n := range c.nodes {
		if n.linked != 0 || !n.pane.Intersects(region) {
			continue
		}
		p := n.pane
		candidates := []struct {
			axis Axis
			pos  int
			ok   bool
		}{
			{Vertical, p.Y, p.Y > region.Y},
			{Vertical, p.Bottom(), p.Bottom() < region.Bottom()},
			{Horizontal, p.X, p.X > region.X},
			{Horizontal, p.Right(), p.Right() < region.Right()},
		}
		for _, cand := range candidates {
			if cand.ok && c.cleanBreak(cand.axis, cand.pos, region) {
				c.split(link, cand.axis, cand.pos, region)
				return
			}
		}
	}

	c.unsupported = append(c.unsupported, region)
	c.debug("unsupported region", "link", link, "region", region)
}

// cleanBreak reports whether the line at pos across bounds is fully covered
// by edges of unconsumed panes. Vertical splits cut along a row boundary,
// horizontal splits along a column boundary.
func (c *compiler) cleanBreak(axis Axis, pos int, bounds windowgram.Rect) bool {
	length, origin := bounds.W, bounds.X
	if axis == Horizontal {
		length, origin = bounds.H, bounds.Y
	}
	covered := make([]bool, length)

	for _, n := range c.nodes {
		p := n.pane
		if n.linked != 0 || !p.Intersects(bounds) {
			continue
		}
		var from, to int
		switch axis {
		case Vertical:
			if p.Y != pos && p.Bottom() != pos {
				continue
			}
			from, to = max(p.X, bounds.X), min(p.Right(), bounds.Right())
		case Horizontal:
			if p.X != pos && p.Right() != pos {
				continue
			}
			from, to = max(p.Y, bounds.Y), min(p.Bottom(), bounds.Bottom())
		}
		for i := from; i < to; i++ {
			covered[i-origin] = true
		}
	}

	for _, ok := range covered {
		if !ok {
			return false
		}
	}
	return true
}

func (c *compiler) split(parent int, axis Axis, pos int, region windowgram.Rect) {
	at := c.index(parent)
	for i := range c.links {
		if c.links[i].Index > at {
			c.links[i].Index++
		}
	}
	c.next++
	id := c.next
	c.links = append(c.links, Link{LinkID: id, Index: at + 1})

	first, second := region, region
	switch axis {
	case Vertical:
		first.H = pos - region.Y
		second.Y, second.H = pos, region.Bottom()-pos
	case Horizontal:
		first.W = pos - region.X
		second.X, second.W = pos, region.Right()-pos
	}

	parentCanvas, newCanvas := c.toCanvas(region), c.toCanvas(second)
	rec := Record{LinkID: id, Parent: parent, Axis: axis, W: newCanvas.W, H: newCanvas.H, Region: second}
	switch axis {
	case Vertical:
		rec.H = max(rec.H-c.opts.Divider, 0)
		rec.Percent = percent(newCanvas.H, parentCanvas.H)
	case Horizontal:
		rec.W = max(rec.W-c.opts.Divider, 0)
		rec.Percent = percent(newCanvas.W, parentCanvas.W)
	}
	c.splits = append(c.splits, rec)
	c.debug("split", "parent", parent, "link", id, "axis", axis.String(), "at", pos, "percent", rec.Percent)

	c.decompose(parent, first)
	c.decompose(id, second)
}

func (c *compiler) index(link int) int {
	return c.links[link-RootLinkID].Index
}

// toCanvas maps a region in windowgram cells to 0-based canvas units.
func (c *compiler) toCanvas(r windowgram.Rect) windowgram.Rect {
	x0 := translate(r.X-1, c.width, c.opts.Canvas.W)
	x1 := translate(r.Right()-1, c.width, c.opts.Canvas.W)
	y0 := translate(r.Y-1, c.height, c.opts.Canvas.H)
	y1 := translate(r.Bottom()-1, c.height, c.opts.Canvas.H)
	return windowgram.Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

func translate(v, size, canvas int) int {
	return v * canvas / size
}

func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

func (c *compiler) plan() *Plan {
	p := &Plan{
		Canvas:      c.opts.Canvas,
		Width:       c.width,
		Height:      c.height,
		Splits:      c.splits,
		Links:       c.links,
		Unsupported: c.unsupported,
	}
	var unassigned []byte
	for _, n := range c.nodes {
		if n.linked == 0 {
			unassigned = append(unassigned, n.pane.ID)
			continue
		}
		p.Assignments = append(p.Assignments, Assignment{
			Pane:   n.pane,
			LinkID: n.linked,
			Index:  c.index(n.linked),
			Canvas: c.toCanvas(n.pane.Rect),
		})
	}
	p.Unassigned = windowgram.SortIDs(string(unassigned))
	return p
}

func (c *compiler) debug(msg string, keyvals ...any) {
	if c.opts.Logger != nil {
		c.opts.Logger.Debug(msg, keyvals...)
	}
}

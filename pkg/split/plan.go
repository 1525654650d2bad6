package split

import (
	"fmt"

	"github.com/matzehuels/windowgram/pkg/errors"
	"github.com/matzehuels/windowgram/pkg/windowgram"
)

// RootLinkID names the region covering the whole windowgram.
const RootLinkID = 1001

// Axis is the direction of a split.
type Axis byte

const (
	// Vertical places the new region below its parent.
	Vertical Axis = 'v'
	// Horizontal places the new region to the right of its parent.
	Horizontal Axis = 'h'
)

func (a Axis) String() string {
	switch a {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	}
	return fmt.Sprintf("Axis(%d)", byte(a))
}

// MarshalText encodes the axis as "v" or "h".
func (a Axis) MarshalText() ([]byte, error) {
	return []byte{byte(a)}, nil
}

// UnmarshalText decodes "v" or "h".
func (a *Axis) UnmarshalText(data []byte) error {
	if len(data) != 1 || (Axis(data[0]) != Vertical && Axis(data[0]) != Horizontal) {
		return fmt.Errorf("invalid axis %q", data)
	}
	*a = Axis(data[0])
	return nil
}

// Canvas is the target size regions are measured against.
type Canvas struct {
	W int `json:"w"`
	H int `json:"h"`
}

// DefaultCanvas is a large nominal canvas used for classification.
var DefaultCanvas = Canvas{W: 1024, H: 1024}

// Record is one split in decomposition order.
type Record struct {
	LinkID  int             `json:"link_id"`
	Parent  int             `json:"parent"`
	Axis    Axis            `json:"axis"`
	W       int             `json:"w"`       // canvas width of the new region
	H       int             `json:"h"`       // canvas height of the new region
	Percent float64         `json:"percent"` // new region length / parent length along the axis
	Region  windowgram.Rect `json:"region"`  // new region in windowgram cells
}

// Link binds a linkid to its destination index.
type Link struct {
	LinkID int `json:"link_id"`
	Index  int `json:"index"`
}

// Assignment links a pane to the region that produces it.
type Assignment struct {
	Pane   windowgram.Pane `json:"pane"`
	LinkID int             `json:"link_id"`
	Index  int             `json:"index"`
	Canvas windowgram.Rect `json:"canvas"` // 0-based canvas offset and size
}

// Plan is the result of a compilation.
type Plan struct {
	Canvas      Canvas            `json:"canvas"`
	Width       int               `json:"width"`
	Height      int               `json:"height"`
	Splits      []Record          `json:"splits"`
	Links       []Link            `json:"links"`
	Assignments []Assignment      `json:"assignments"`
	Unassigned  string            `json:"unassigned,omitempty"`
	Unsupported []windowgram.Rect `json:"unsupported,omitempty"`
}

// Complete reports whether every pane was linked to a region.
func (p *Plan) Complete() bool {
	return len(p.Unsupported) == 0 && p.Unassigned == ""
}

// Err returns an UNSUPPORTED_LAYOUT error when the plan is incomplete.
func (p *Plan) Err() error {
	if p.Complete() {
		return nil
	}
	if len(p.Unsupported) > 0 {
		return errors.New(errors.ErrCodeUnsupportedLayout,
			"region %s cannot be produced by nested splits (panes %s)", p.Unsupported[0], p.Unassigned)
	}
	return errors.New(errors.ErrCodeUnsupportedLayout, "panes %s were not linked to a region", p.Unassigned)
}

// Index returns the destination index bound to linkid.
func (p *Plan) Index(linkid int) (int, bool) {
	for _, l := range p.Links {
		if l.LinkID == linkid {
			return l.Index, true
		}
	}
	return 0, false
}

// Assignment returns the assignment of pane id.
func (p *Plan) Assignment(id byte) (Assignment, bool) {
	for _, a := range p.Assignments {
		if a.Pane.ID == id {
			return a, true
		}
	}
	return Assignment{}, false
}

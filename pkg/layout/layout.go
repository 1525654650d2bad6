// Package layout classifies windowgrams by how they can be reproduced.
//
// Every parseable windowgram is one of three types:
//
//   - [TypeSplit]: reproducible by nested binary splits (see pkg/split)
//   - [TypeTiled]: no overlapping panes, yet not expressible as nested splits
//     (for example a pinwheel of four panes around a centre pane)
//   - [TypeLayered]: at least two pane bounding boxes intersect
//
// Text that does not parse classifies as [TypeError].
package layout

import (
	"github.com/charmbracelet/log"

	"github.com/matzehuels/windowgram/pkg/errors"
	"github.com/matzehuels/windowgram/pkg/split"
	"github.com/matzehuels/windowgram/pkg/windowgram"
)

// Type is a layout classification.
type Type string

const (
	TypeSplit   Type = "split"
	TypeTiled   Type = "tiled"
	TypeLayered Type = "layered"
	TypeError   Type = "ERROR"
)

// Analysis is a classification with the evidence behind it.
type Analysis struct {
	Type Type `json:"type"`

	// Overlap holds the first overlapping pair for layered layouts.
	Overlap []windowgram.Pane `json:"overlap,omitempty"`

	// Plan is the split plan for split and tiled layouts.
	Plan *split.Plan `json:"plan,omitempty"`

	// Err is the parse or compile error for TypeError, or the
	// UNSUPPORTED_LAYOUT / OVERLAP explanation for tiled and layered.
	Err error `json:"-"`
}

// Classify parses text and classifies it.
func Classify(text string) Type {
	return Analyze(text, nil).Type
}

// Analyze parses text and classifies it against split.DefaultCanvas.
// logger may be nil.
func Analyze(text string, logger *log.Logger) Analysis {
	w, err := windowgram.Parse(text)
	if err != nil {
		return Analysis{Type: TypeError, Err: err}
	}
	return AnalyzeWindowgram(w, logger)
}

// AnalyzeWindowgram classifies an already parsed windowgram.
func AnalyzeWindowgram(w *windowgram.Windowgram, logger *log.Logger) Analysis {
	panes := w.SortedPanes()
	if a, b, ok := windowgram.FindOverlap(panes); ok {
		return Analysis{
			Type:    TypeLayered,
			Overlap: []windowgram.Pane{a, b},
			Err:     errors.New(errors.ErrCodeOverlap, "panes %c and %c overlap", a.ID, b.ID),
		}
	}

	plan, err := split.Compile(w, split.Options{Canvas: split.DefaultCanvas, Logger: logger})
	if err != nil {
		return Analysis{Type: TypeError, Err: err}
	}
	if plan.Complete() {
		return Analysis{Type: TypeSplit, Plan: plan}
	}
	return Analysis{Type: TypeTiled, Plan: plan, Err: plan.Err()}
}

// Package scale resizes windowgrams to a target size in characters.
//
// Two strategies are available behind the [Strategy] interface and must be
// chosen explicitly, since layouts can depend on their different rounding:
//
//   - [Corner] transforms each pane's top-left and exclusive bottom-right
//     corners independently and rounds half up. Panes keep their relative
//     positions and never start to overlap. This is the preferred strategy.
//   - [Resample] samples the source cell under every destination cell. It is
//     simpler and loses panes more readily at fractional multipliers.
//
// [Exact] repeats a corner scale, nudging the target size, until a named pane
// reaches an exact size.
package scale

import (
	"math"
	"strings"

	"github.com/matzehuels/windowgram/pkg/errors"
	"github.com/matzehuels/windowgram/pkg/windowgram"
)

// Result is a scaled windowgram.
type Result struct {
	Windowgram *windowgram.Windowgram

	// Panes are the scaled boxes in source scan order. Lost panes are
	// included with zero width or height.
	Panes []windowgram.Pane

	// Lost lists, in alphabet order, panes that no longer have any area.
	Lost string
}

// Strategy scales a windowgram to width x height characters.
type Strategy interface {
	Name() string
	Scale(w *windowgram.Windowgram, width, height int) (*Result, error)
}

// Strategy names.
const (
	NameCorner   = "corner"
	NameResample = "resample"
)

// Strategies lists the available strategy names.
func Strategies() []string {
	return []string{NameCorner, NameResample}
}

// StrategyByName returns the strategy registered under name.
func StrategyByName(name string) (Strategy, error) {
	switch strings.ToLower(name) {
	case NameCorner:
		return Corner{}, nil
	case NameResample:
		return Resample{}, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidInput,
		"unknown scale strategy %q (valid: %s)", name, strings.Join(Strategies(), ", "))
}

func validate(w *windowgram.Windowgram, width, height int) (xm, ym float64, err error) {
	if err := errors.ValidateDimension("width", width); err != nil {
		return 0, 0, err
	}
	if err := errors.ValidateDimension("height", height); err != nil {
		return 0, 0, err
	}
	return float64(width) / float64(w.Width()), float64(height) / float64(w.Height()), nil
}

// =============================================================================
// Corner
// =============================================================================

// Corner scales pane corners with round-half-up.
type Corner struct{}

// Name implements Strategy.
func (Corner) Name() string { return NameCorner }

// Scale implements Strategy.
func (Corner) Scale(w *windowgram.Windowgram, width, height int) (*Result, error) {
	xm, ym, err := validate(w, width, height)
	if err != nil {
		return nil, err
	}

	src := w.SortedPanes()
	panes := make([]windowgram.Pane, len(src))
	var lost []byte
	for i, p := range src {
		x1, x2 := Edge(p.X, xm), Edge(p.Right(), xm)
		y1, y2 := Edge(p.Y, ym), Edge(p.Bottom(), ym)
		panes[i] = windowgram.Pane{ID: p.ID, Rect: windowgram.Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}}
		if panes[i].Empty() {
			lost = append(lost, p.ID)
		}
	}

	out, err := windowgram.FromPanes(panes)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDegenerateScale, err, "scale produced a blank windowgram")
	}
	if out.Width() != width || out.Height() != height {
		return nil, errors.New(errors.ErrCodeDegenerateScale,
			"scale produced %dx%d, expected %dx%d", out.Width(), out.Height(), width, height)
	}
	return &Result{Windowgram: out, Panes: panes, Lost: windowgram.SortIDs(string(lost))}, nil
}

// Edge maps a 1-based edge coordinate through multiplier m:
// round_half_up((c-1) * m) + 1.
func Edge(c int, m float64) int {
	whole, frac := math.Modf(float64(c-1) * m)
	r := int(whole)
	if frac >= 0.5 {
		r++
	}
	return r + 1
}

// =============================================================================
// Resample
// =============================================================================

// Resample samples the source cell at floor(dest / multiplier).
type Resample struct{}

// Name implements Strategy.
func (Resample) Name() string { return NameResample }

// Scale implements Strategy.
func (Resample) Scale(w *windowgram.Windowgram, width, height int) (*Result, error) {
	xm, ym, err := validate(w, width, height)
	if err != nil {
		return nil, err
	}

	src := w.Chars()
	chars := make([][]byte, height)
	for y := range chars {
		sy := min(int(float64(y)/ym), w.Height()-1)
		row := make([]byte, width)
		for x := range row {
			row[x] = src[sy][min(int(float64(x)/xm), w.Width()-1)]
		}
		chars[y] = row
	}

	out, err := windowgram.FromChars(chars, w.Extended())
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDegenerateScale, err, "scale produced an invalid windowgram")
	}
	return &Result{Windowgram: out, Panes: out.SortedPanes(), Lost: windowgram.Lost(w, out)}, nil
}

// =============================================================================
// Exact
// =============================================================================

// MaxAttempts bounds the retries of Exact.
const MaxAttempts = 16

// Target is a pane and the exact size it should reach.
type Target struct {
	ID   byte
	W, H int
}

// ExactResult is the outcome of Exact.
type ExactResult struct {
	*Result

	// Width and Height are the target size of the last attempt.
	Width, Height int

	Attempts int
	Matched  bool
}

// Exact scales w with [Corner] starting at width x height. After each attempt
// it measures the target pane and moves each axis of the trial size one
// character toward the wanted pane size, for at most MaxAttempts attempts.
// If the pane is missing from w a single attempt is made. The last result is
// returned even when the pane size was never matched.
func Exact(w *windowgram.Windowgram, width, height int, target Target) (*ExactResult, error) {
	tries := 1
	if w.HasPane(target.ID) {
		tries = MaxAttempts
	}

	var res *ExactResult
	tryW, tryH := width, height
	for attempt := 1; attempt <= tries; attempt++ {
		r, err := Corner{}.Scale(w, tryW, tryH)
		if err != nil {
			if res != nil {
				return res, nil
			}
			return nil, err
		}
		res = &ExactResult{Result: r, Width: tryW, Height: tryH, Attempts: attempt}
		if tries == 1 {
			break
		}

		p, _ := r.Windowgram.Pane(target.ID)
		if p.W == target.W && p.H == target.H {
			res.Matched = true
			break
		}
		tryW += step(p.W, target.W)
		tryH += step(p.H, target.H)
		if tryW < 1 || tryH < 1 {
			break
		}
	}
	return res, nil
}

func step(got, want int) int {
	switch {
	case got < want:
		return 1
	case got > want:
		return -1
	}
	return 0
}

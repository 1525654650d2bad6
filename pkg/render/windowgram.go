package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/windowgram/pkg/windowgram"
)

// palette is cycled by alphabet position; adjacent identifiers get
// contrasting colors.
var palette = []lipgloss.Color{
	"31", "167", "71", "179", "68", "133", "37", "173", "103", "142", "61", "131",
}

var (
	styleDim  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	styleMask = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Background(lipgloss.Color("36"))
)

// Options controls Windowgram rendering.
type Options struct {
	// CellWidth repeats every cell horizontally so that cells look roughly
	// square. Zero means 2.
	CellWidth int

	// Color paints pane backgrounds. Without it only the identifiers are
	// printed.
	Color bool

	// Highlight, when not empty, dims every pane not listed.
	Highlight string
}

// PaneColor returns the background color of a pane identifier.
func PaneColor(id byte) lipgloss.Color {
	ix := windowgram.Index(id)
	if ix < 0 {
		return lipgloss.Color("240")
	}
	return palette[ix%len(palette)]
}

// Windowgram renders w one line per row, without a trailing newline.
func Windowgram(w *windowgram.Windowgram, opts Options) string {
	cw := opts.CellWidth
	if cw <= 0 {
		cw = 2
	}

	styles := make(map[byte]lipgloss.Style)
	style := func(c byte) lipgloss.Style {
		if s, ok := styles[c]; ok {
			return s
		}
		var s lipgloss.Style
		switch {
		case opts.Highlight != "" && strings.IndexByte(opts.Highlight, c) < 0:
			s = styleDim
		case c == windowgram.MaskOne:
			s = styleMask
		case windowgram.IsReserved(c):
			s = styleDim
		default:
			s = lipgloss.NewStyle().Bold(true).
				Foreground(lipgloss.Color("255")).
				Background(PaneColor(c))
		}
		styles[c] = s
		return s
	}

	var b strings.Builder
	for y, line := range w.Lines() {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < len(line); {
			// Render runs of one identifier in a single style call.
			end := x
			for end < len(line) && line[end] == line[x] {
				end++
			}
			run := strings.Repeat(string(line[x]), (end-x)*cw)
			if opts.Color || opts.Highlight != "" {
				run = style(line[x]).Render(run)
			}
			b.WriteString(run)
			x = end
		}
	}
	return b.String()
}

// Legend lists the panes of w with their boxes, one per line, in scan order.
func Legend(w *windowgram.Windowgram, color bool) string {
	var b strings.Builder
	for i, p := range w.SortedPanes() {
		if i > 0 {
			b.WriteByte('\n')
		}
		id := string(p.ID)
		if color {
			id = lipgloss.NewStyle().Bold(true).Padding(0, 1).
				Foreground(lipgloss.Color("255")).
				Background(PaneColor(p.ID)).Render(id)
		}
		b.WriteString(id + " " + styleDim.Render(p.Rect.String()))
	}
	return b.String()
}

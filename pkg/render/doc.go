// Package render draws windowgrams, masks and split plans for the terminal.
//
// # Windowgrams
//
// [Windowgram] paints every cell with a background color derived from its
// pane identifier, so that the panes of a layout read as colored blocks:
//
//	fmt.Println(render.Windowgram(w, render.Options{Color: true}))
//
// Passing Options.Highlight dims every pane outside the given set, which is
// how group analysis and masks are shown.
//
// # Plans
//
// [SplitTable] and [AssignmentTable] format a split plan as lipgloss tables:
// one row per split record, and one row per linked pane.
//
// Output contains ANSI escape sequences only when lipgloss detects a color
// capable terminal; otherwise the same layout is produced in plain text.
package render

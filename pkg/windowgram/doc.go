// Package windowgram provides the canonical in-memory model of a windowgram.
//
// A windowgram is a rectangular grid of single-character pane identifiers:
//
//	1112
//	3332
//	3332
//
// Each identifier names one pane; the pane's rectangle is the bounding box of
// every cell carrying that identifier. Coordinates are 1-based.
//
// # Alphabet
//
// Pane identifiers are drawn from a 62-symbol ordered alphabet:
//
//	0-9  a-z  A-Z
//
// Extended windowgrams additionally accept three reserved symbols that are
// never persisted: [Transparent] ('.'), [MaskOne] ('@') and [MaskZero] (':').
// Masks produced by [GenerateMask] are extended windowgrams.
//
// # Text Format
//
// [Parse] strips '#' comments and surrounding whitespace from every line and
// drops blank lines. All remaining lines must have the same width and at least
// one must remain. Failures are structural errors from pkg/errors carrying the
// 1-based input line.
//
// # Immutability
//
// A [Windowgram] is never modified in place. Every transformation
// ([Windowgram.Replace], [Composite], [FromPanes]) builds a complete new value,
// so a caller's windowgram is untouched when an operation fails.
//
// # Panes and Overlap
//
// [Windowgram.Panes] returns the pane map; [Windowgram.SortedPanes] returns
// the same panes in scan order (top edge, then left edge). [FindOverlap] tests
// bounding boxes pairwise with half-open intervals. Note that "12\n21" has two
// panes whose boxes both cover the whole grid, so they overlap even though no
// cell is shared.
package windowgram

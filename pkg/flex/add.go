package flex

import (
	"github.com/matzehuels/windowgram/pkg/errors"
	"github.com/matzehuels/windowgram/pkg/windowgram"
)

// Add appends a band of size characters along edge, filled with a new pane.
// newpane selects the identifier; 0 picks the first free one.
func Add(w *windowgram.Windowgram, edge Edge, size int, newpane byte) (*windowgram.Windowgram, error) {
	if size < 1 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "size must be at least one character, got %d", size)
	}
	id, err := w.NewPaneID(newpane)
	if err != nil {
		return nil, err
	}

	chars := w.Chars()
	width := w.Width()
	band := func(n int) []byte {
		row := make([]byte, n)
		for i := range row {
			row[i] = id
		}
		return row
	}

	switch edge {
	case Top, Bottom:
		rows := make([][]byte, size)
		for i := range rows {
			rows[i] = band(width)
		}
		if edge == Top {
			chars = append(rows, chars...)
		} else {
			chars = append(chars, rows...)
		}
	case Left, Right:
		for y, row := range chars {
			if edge == Left {
				chars[y] = append(band(size), row...)
			} else {
				chars[y] = append(row, band(size)...)
			}
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "invalid edge %s", edge)
	}
	return windowgram.FromChars(chars, w.Extended())
}

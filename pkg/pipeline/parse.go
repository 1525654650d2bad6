package pipeline

import (
	"github.com/matzehuels/windowgram/pkg/errors"
	"github.com/matzehuels/windowgram/pkg/windowgram"
)

// ParseInput validates untrusted text and parses it into a windowgram.
func ParseInput(text string) (*windowgram.Windowgram, error) {
	if err := errors.ValidateInput(text); err != nil {
		return nil, err
	}
	return windowgram.Parse(text)
}

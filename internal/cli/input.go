package cli

import (
	"io"
	"os"

	"github.com/matzehuels/windowgram/pkg/errors"
	"github.com/matzehuels/windowgram/pkg/pipeline"
	"github.com/matzehuels/windowgram/pkg/windowgram"
)

// stdinPath selects standard input instead of a file.
const stdinPath = "-"

// readText returns the raw text of path, or of standard input for "-".
// Input larger than errors.MaxInputBytes is rejected before it is parsed.
func (c *CLI) readText(path string) (string, error) {
	var r io.Reader
	if path == stdinPath {
		r = c.Stdin
	} else {
		if err := errors.ValidatePath(path); err != nil {
			return "", err
		}
		f, err := os.Open(path)
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(io.LimitReader(r, errors.MaxInputBytes+1))
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", displayName(path))
	}
	return string(data), nil
}

// readWindowgram reads and parses path.
func (c *CLI) readWindowgram(path string) (*windowgram.Windowgram, error) {
	text, err := c.readText(path)
	if err != nil {
		return nil, err
	}
	return pipeline.ParseInput(text)
}

func displayName(path string) string {
	if path == stdinPath {
		return "stdin"
	}
	return path
}

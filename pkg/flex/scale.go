package flex

import (
	"github.com/matzehuels/windowgram/pkg/errors"
	"github.com/matzehuels/windowgram/pkg/scale"
	"github.com/matzehuels/windowgram/pkg/windowgram"
)

// Scale resizes w to width x height characters using strategy s. Panes that
// vanish in the result are an error unless allowLoss is set, in which case
// they are reported in the result's Lost field.
func Scale(w *windowgram.Windowgram, width, height int, s scale.Strategy, allowLoss bool) (*scale.Result, error) {
	if s == nil {
		s = scale.Corner{}
	}
	res, err := s.Scale(w, width, height)
	if err != nil {
		return nil, err
	}
	if res.Lost != "" && !allowLoss {
		return nil, errors.New(errors.ErrCodeDegenerateScale,
			"scaling to %dx%d would lose %d pane(s): %s", width, height, len(res.Lost), res.Lost)
	}
	return res, nil
}

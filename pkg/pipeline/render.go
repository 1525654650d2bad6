package pipeline

import (
	"context"
	"encoding/json"

	"github.com/matzehuels/windowgram/pkg/errors"
	"github.com/matzehuels/windowgram/pkg/split"
)

// Render encodes a plan in one of ValidFormats.
func Render(ctx context.Context, plan *split.Plan, format string) ([]byte, error) {
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}
	switch format {
	case FormatDOT:
		return []byte(plan.DOT()), nil
	case FormatSVG:
		svg, err := split.RenderSVG(ctx, plan.DOT())
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "render svg")
		}
		return svg, nil
	default:
		data, err := json.MarshalIndent(plan, "", "  ")
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode plan")
		}
		return append(data, '\n'), nil
	}
}

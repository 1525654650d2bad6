package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/windowgram/pkg/flex"
	"github.com/matzehuels/windowgram/pkg/scale"
)

// scaleCommand creates the scale command.
func (c *CLI) scaleCommand() *cobra.Command {
	var (
		strategy  string
		allowLoss bool
	)

	cmd := &cobra.Command{
		Use:   "scale FILE SIZE [SIZE]",
		Short: "Resize a windowgram",
		Long: `Scale resizes a windowgram. Sizes are characters (25), percentages (50%) or
multipliers (2x). One size applies to both axes unless it is written as WxH
or W:H; two sizes give width and height.

Panes that become too small to occupy a cell are lost. This is an error
unless --allow-loss is given.

Strategies:
  corner    scale pane corners with round-half-up (default)
  resample  sample every target cell from the source`,
		Example: `  windowgram scale layout.wg 200%
  windowgram scale layout.wg 80x24
  windowgram scale layout.wg 50% 100% --strategy resample`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strategy == "" {
				strategy = c.Config.Strategy
			}
			s, err := scale.StrategyByName(strategy)
			if err != nil {
				return err
			}
			w, err := c.readWindowgram(args[0])
			if err != nil {
				return err
			}
			width, height, err := parseDims(args[1:], w.Width(), w.Height())
			if err != nil {
				return err
			}

			res, err := flex.Scale(w, width, height, s, allowLoss)
			if err != nil {
				return err
			}
			c.Logger.Debug("scaled", "from", fmt.Sprintf("%dx%d", w.Width(), w.Height()),
				"to", fmt.Sprintf("%dx%d", width, height), "strategy", s.Name())
			if res.Lost != "" {
				printWarning("Lost %d panes: %s", len(res.Lost), res.Lost)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), res.Windowgram.String())
			return err
		},
	}

	cmd.Flags().StringVar(&strategy, "strategy", "", "scale strategy: corner, resample (default from config)")
	cmd.Flags().BoolVar(&allowLoss, "allow-loss", false, "allow panes to disappear")
	return cmd
}

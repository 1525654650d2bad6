package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/windowgram/pkg/errors"
	"github.com/matzehuels/windowgram/pkg/pipeline"
	"github.com/matzehuels/windowgram/pkg/render"
	"github.com/matzehuels/windowgram/pkg/windowgram"
)

// formatTable is the CLI-only plan format: the colored windowgram followed
// by split and assignment tables.
const formatTable = "table"

// splitCommand creates the split command.
func (c *CLI) splitCommand() *cobra.Command {
	var (
		format string
		output string
		flags  compileFlags
	)

	cmd := &cobra.Command{
		Use:   "split FILE",
		Short: "Compile a windowgram into a split plan",
		Long: `Split compiles a windowgram into the ordered list of splits that reproduces it,
starting from one full-size region.

Formats:
  table  colored windowgram and plan tables (default)
  json   the plan as JSON
  dot    the split tree as Graphviz DOT
  svg    the split tree rendered as SVG

Plans are cached by windowgram content, canvas and divider.`,
		Example: `  windowgram split layout.wg
  windowgram split layout.wg --format svg -o layout.svg
  echo "112" | windowgram split - --canvas 200x50 --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if format != formatTable {
				if err := pipeline.ValidateFormat(format); err != nil {
					return err
				}
			}
			opts, err := flags.options(c)
			if err != nil {
				return err
			}
			text, err := c.readText(args[0])
			if err != nil {
				return err
			}

			runner, err := c.newRunner(ctx, flags.noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			prog := newProgress(c.Logger)
			res, err := runner.Compile(ctx, text, opts)
			if err != nil {
				return err
			}
			c.Logger.Debug("compiled", "plan", res.String(), "cached", res.Cached, "took", prog.elapsed())
			if err := res.Plan.Err(); err != nil {
				return err
			}

			if format == formatTable {
				w := windowgram.MustParse(res.Windowgram)
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, render.Windowgram(w, render.Options{Color: true}))
				fmt.Fprintln(out)
				fmt.Fprintln(out, render.SplitTable(res.Plan))
				fmt.Fprintln(out, render.AssignmentTable(res.Plan))
				printPlanStats(len(res.Plan.Splits), len(res.Plan.Assignments), res.Cached)
				return nil
			}

			var spinner *Spinner
			if format == pipeline.FormatSVG {
				spinner = newSpinner(ctx, "Rendering split tree...")
				spinner.Start()
			}
			prog = newProgress(c.Logger)
			data, err := pipeline.Render(ctx, res.Plan, format)
			if spinner != nil {
				spinner.Stop()
			}
			if err != nil {
				return err
			}
			if format == pipeline.FormatSVG {
				prog.done("Rendered split tree")
			}

			if output == "" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if err := errors.ValidatePath(output); err != nil {
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", output)
			}
			printSuccess("Wrote %s plan", format)
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format: table, json, dot, svg")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	flags.register(cmd)
	return cmd
}

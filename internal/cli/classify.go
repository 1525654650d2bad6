package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/windowgram/pkg/errors"
	"github.com/matzehuels/windowgram/pkg/layout"
	"github.com/matzehuels/windowgram/pkg/pipeline"
)

// classifyResult pairs an input name with its classification for JSON output.
type classifyResult struct {
	File string `json:"file"`
	pipeline.Classification
}

// classifyCommand creates the classify command.
func (c *CLI) classifyCommand() *cobra.Command {
	var (
		jsonOut bool
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "classify FILE...",
		Short: "Report whether windowgrams are split, tiled or layered",
		Long: `Classify reports the layout type of each windowgram:

  split    expressible as nested splits
  tiled    rectangular panes that cannot be produced by splitting
  layered  overlapping panes
  ERROR    not a valid windowgram

Inputs are classified concurrently. Use "-" to read standard input.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			texts := make([]string, len(args))
			for i, path := range args {
				text, err := c.readText(path)
				if err != nil {
					return err
				}
				texts[i] = text
			}

			runner, err := c.newRunner(ctx, noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			prog := newProgress(c.Logger)
			results, err := runner.ClassifyAll(ctx, texts)
			if err != nil {
				return err
			}
			c.Logger.Debug("classified", "inputs", len(results), "took", prog.elapsed())

			out := cmd.OutOrStdout()
			if jsonOut {
				rows := make([]classifyResult, len(results))
				for i, r := range results {
					rows[i] = classifyResult{File: displayName(args[i]), Classification: r}
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			}

			for i, r := range results {
				line := string(r.Type)
				if len(args) > 1 {
					line = displayName(args[i]) + ": " + line
				}
				fmt.Fprintln(out, line)
				if r.Type != layout.TypeSplit {
					if err := r.Err(); err != nil {
						printDetail("%s", errors.UserMessage(err))
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "print results as JSON")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the result cache")
	return cmd
}

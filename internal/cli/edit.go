package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/windowgram/pkg/errors"
	"github.com/matzehuels/windowgram/pkg/scale"
)

// editCommand creates the edit command.
func (c *CLI) editCommand() *cobra.Command {
	var (
		write    bool
		strategy string
	)
	ops := newEditRegistry()

	cmd := &cobra.Command{
		Use:   "edit FILE OP [ARGS...] [; OP [ARGS...]]...",
		Short: "Apply modifiers to a windowgram",
		Long: `Edit applies one or more modifiers to a windowgram and prints the result.
Separate several operations with ";" (quote it in the shell). Operation names
may be abbreviated to any unambiguous prefix.

Edges are top, bottom, left, right or an abbreviation such as t, b, l, r,
north, south, up, down. Sizes are characters, percentages or multipliers.

Operations:
` + ops.help(),
		Example: `  windowgram edit layout.wg split 1 bottom 3
  windowgram edit layout.wg break 1 3x2 ';' join 12.x
  windowgram edit layout.wg half -w`,
		Args: cobra.MinimumNArgs(2),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return nil, cobra.ShellCompDirectiveDefault
			}
			return ops.complete(args[1:], toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if write && args[0] == stdinPath {
				return errors.New(errors.ErrCodeInvalidInput, "--write needs a file, not standard input")
			}
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
			env := editEnv{strategy: s, warn: printWarning}
			for _, line := range splitCommands(args[1:]) {
				c.Logger.Debug("edit", "op", line[0], "args", line[1:])
				if w, err = ops.apply(w, line, env); err != nil {
					return fmt.Errorf("%s: %w", line[0], err)
				}
			}

			if !write {
				_, err := fmt.Fprint(cmd.OutOrStdout(), w.String())
				return err
			}
			if err := os.WriteFile(args[0], []byte(w.String()), 0o644); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", args[0])
			}
			printSuccess("Updated %s", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the result back to FILE")
	cmd.Flags().StringVar(&strategy, "strategy", "", "scale strategy for scale and its aliases")
	return cmd
}

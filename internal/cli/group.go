package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/windowgram/pkg/group"
	"github.com/matzehuels/windowgram/pkg/render"
)

// groupCommand creates the group command.
func (c *CLI) groupCommand() *cobra.Command {
	var (
		jsonOut bool
		show    bool
	)

	cmd := &cobra.Command{
		Use:   "group FILE PANES",
		Short: "Check whether panes form one rectangle",
		Long: `Group checks whether the given panes together cover exactly one rectangle.
If they do not, it lists the panes that must be added to complete it.`,
		Example: `  windowgram group layout.wg 12
  windowgram group layout.wg 13 --show`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := c.readWindowgram(args[0])
			if err != nil {
				return err
			}
			res := group.Analyze(w, args[1])
			out := cmd.OutOrStdout()

			if jsonOut {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}

			switch res.Status {
			case group.InvalidPanes:
				return res.Err()
			case group.Success:
				fmt.Fprintf(out, "%s %s\n", res.Status, res.Bounds)
			case group.InsufficientPanes:
				fmt.Fprintf(out, "%s %s\n", res.Status, res.Suggestions)
				printInfo("Add %s to form the rectangle %s", res.Suggestions, res.Bounds)
			}
			if show {
				fmt.Fprintln(out, render.Windowgram(w, render.Options{Highlight: args[1] + res.Suggestions}))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the result as JSON")
	cmd.Flags().BoolVar(&show, "show", false, "draw the windowgram with the group highlighted")
	return cmd
}

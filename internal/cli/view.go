package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/windowgram/pkg/layout"
	"github.com/matzehuels/windowgram/pkg/render"
)

// viewCommand creates the view command.
func (c *CLI) viewCommand() *cobra.Command {
	var static bool

	cmd := &cobra.Command{
		Use:   "view FILE",
		Short: "Browse the panes of a windowgram",
		Long: `View draws the windowgram in color and lets you step through its panes,
showing each pane's box and, for split layouts, the region it is linked to.

With --static the colored windowgram and a pane legend are printed instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := c.readWindowgram(args[0])
			if err != nil {
				return err
			}

			if static {
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, render.Windowgram(w, render.Options{Color: true}))
				fmt.Fprintln(out)
				fmt.Fprintln(out, render.Legend(w, true))
				return nil
			}

			model := NewViewModel(w, layout.AnalyzeWindowgram(w, c.Logger))
			p := tea.NewProgram(model, tea.WithContext(cmd.Context()), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().BoolVar(&static, "static", false, "print once instead of opening the browser")
	return cmd
}

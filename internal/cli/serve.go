package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/windowgram/pkg/api"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Long: `Serve runs the JSON HTTP API until interrupted.

Endpoints:
  GET  /healthz
  GET  /v1/stats
  POST /v1/classify
  POST /v1/split
  POST /v1/scale
  POST /v1/group`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if addr == "" {
				addr = c.Config.Server.Addr
			}

			runner, err := c.newRunner(ctx, noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			srv := api.NewServer(runner, api.Config{
				Logger:   c.Logger,
				Defaults: c.Config.PipelineOptions(),
			})
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the plan cache")
	return cmd
}

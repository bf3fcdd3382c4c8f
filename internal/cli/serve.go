package cli

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/distinct/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the palette HTTP API",
		Long: `Serve palette generation over HTTP until interrupted.

Endpoints:
  GET /health
  GET /api/v1/palette?n=5&mode=normal&seed=42
  GET /api/v1/simulate?hex=%23ff0000&mode=both
  GET /api/v1/distance?a=ff0000&b=00aa00&mode=deuteranopia

Settings may also be given as DISTINCT_* environment variables, for example
DISTINCT_ADDR, DISTINCT_RATE_LIMIT and DISTINCT_LOG_JSON.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return server.New(a.cfg, a.logger.Named("server")).Run(cmd.Context())
		},
	}

	a.cfg.BindServerFlags(cmd.Flags())
	a.cfg.BindGeneratorFlags(cmd.Flags())

	return cmd
}

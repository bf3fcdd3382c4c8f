// Package cli provides the command-line interface for distinct.
package cli

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/distinct/internal/config"
	"github.com/jmylchreest/distinct/internal/logger"
	"github.com/jmylchreest/distinct/internal/version"
)

// app carries state shared by every subcommand of one command tree.
type app struct {
	verbose bool
	quiet   bool

	cfg    config.Config
	cfgErr error
	logger hclog.Logger
}

// NewRootCmd builds the command tree. Configuration is read from the
// environment once here; flags registered by subcommands then override it.
func NewRootCmd() *cobra.Command {
	a := &app{logger: logger.Discard()}
	a.cfg, a.cfgErr = config.Load()
	if a.cfgErr != nil {
		a.cfg = config.Default()
	}

	rootCmd := &cobra.Command{
		Use:   "distinct",
		Short: "Generate colour palettes that stay distinguishable under colour vision deficiency",
		Long: `distinct generates sets of colours that remain maximally distinguishable
for viewers with normal vision, deuteranopia, protanopia or tritanopia.

Candidates are sampled in sRGB, projected into Oklab through a colour vision
deficiency simulation, and picked greedily so each new colour is as far as
possible from the ones already chosen.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenerateCmd(a))
	rootCmd.AddCommand(newSimulateCmd(a))
	rootCmd.AddCommand(newDistanceCmd(a))
	rootCmd.AddCommand(newSwatchCmd(a))
	rootCmd.AddCommand(newServeCmd(a))

	return rootCmd
}

// Execute runs the command tree with ctx. This is called by main.main().
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// setup validates the final configuration and builds the logger once flags
// have been parsed.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.cfgErr != nil {
		return fmt.Errorf("failed to load configuration: %w", a.cfgErr)
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	a.logger = logger.New(logger.Options{
		Output:  cmd.ErrOrStderr(),
		Verbose: a.verbose,
		Quiet:   a.quiet,
		JSON:    a.cfg.Logger.JSON,
		Level:   a.cfg.Logger.Level,
	})
	return nil
}

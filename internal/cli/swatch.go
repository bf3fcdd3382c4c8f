package cli

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/distinct/internal/colour"
	"github.com/jmylchreest/distinct/internal/swatch"
)

type swatchOptions struct {
	output   string
	modes    []string
	noLabels bool
}

func newSwatchCmd(a *app) *cobra.Command {
	opts := &swatchOptions{}

	cmd := &cobra.Command{
		Use:   "swatch <hex>...",
		Short: "Render colours as a PNG swatch with simulated rows",
		Long: `Render colours as a PNG image with one row per simulation, so palettes can
be compared by eye.

Examples:
  distinct swatch e41a1c 4daf4a 377eb8 -o palette.png
  distinct swatch e41a1c 4daf4a -o p.png --modes normal,tritanopia`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSwatch(args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "PNG file to write (required)")
	cmd.Flags().StringSliceVar(&opts.modes, "modes", nil, "vision modes to render as rows (default: all)")
	cmd.Flags().BoolVar(&opts.noLabels, "no-labels", false, "omit row labels")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func (a *app) runSwatch(args []string, opts *swatchOptions) error {
	colors, err := parseColours(args)
	if err != nil {
		return err
	}

	variants := swatch.DefaultVariants()
	if len(opts.modes) > 0 {
		modes := make([]colour.Mode, len(opts.modes))
		for i, m := range opts.modes {
			if modes[i], err = colour.ParseMode(m); err != nil {
				return err
			}
		}
		variants = swatch.VariantsFor(modes)
	}

	swatchOpts := swatch.DefaultOptions()
	swatchOpts.ShowLabels = !opts.noLabels

	if err := writeSwatch(opts.output, colors, variants, swatchOpts); err != nil {
		return err
	}
	a.logger.Info("saved swatch", "path", opts.output, "colours", len(colors), "rows", len(variants))
	return nil
}

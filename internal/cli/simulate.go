package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/distinct/internal/colour"
	"github.com/jmylchreest/distinct/internal/swatch"
)

// previewCellWidth fits a hex code with a space either side.
const previewCellWidth = 9

type simulateOptions struct {
	mode    string
	preview bool
}

func newSimulateCmd(a *app) *cobra.Command {
	opts := &simulateOptions{}

	cmd := &cobra.Command{
		Use:   "simulate <hex>...",
		Short: "Show how colours appear under colour vision deficiency",
		Long: `Show each colour as seen under a vision mode. Without --mode every
simulation is shown.

Examples:
  distinct simulate '#ff0000' '#00aa00'
  distinct simulate ff8800 -m tritanopia`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSimulate(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "", "vision mode (normal, deuteranopia, protanopia, tritanopia, both)")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "show ANSI colour blocks (default on for terminals)")

	return cmd
}

func (a *app) runSimulate(cmd *cobra.Command, args []string, opts *simulateOptions) error {
	colors, err := parseColours(args)
	if err != nil {
		return err
	}

	variants := swatch.DefaultVariants()
	if opts.mode != "" {
		mode, err := colour.ParseMode(opts.mode)
		if err != nil {
			return err
		}
		variants = mode.Variants()
	}

	preview := opts.preview
	if !cmd.Flags().Changed("preview") {
		preview = isTerminal(cmd.OutOrStdout())
	}

	a.logger.Debug("simulating colours", "count", len(colors), "variants", variants)
	return renderSimulation(cmd.OutOrStdout(), colors, variants, preview)
}

func renderSimulation(w io.Writer, colors []colour.Color, variants []colour.Variant, preview bool) error {
	headers := make([]string, 0, len(variants)+1)
	headers = append(headers, "Input")
	for _, v := range variants {
		headers = append(headers, string(v))
	}

	table := NewTable(headers)
	for _, c := range colors {
		row := []string{cell(c, preview)}
		for _, v := range variants {
			row = append(row, cell(colour.Simulate(c, v), preview))
		}
		table.AddRow(row)
	}

	_, err := fmt.Fprint(w, table.Render())
	return err
}

// cell formats a colour for a table. With preview the hex code is drawn
// inside a block of the colour itself.
func cell(c colour.Color, preview bool) string {
	rgb := c.RGB()
	if preview {
		return colour.ColourPreviewWithText(rgb, rgb.Hex(), previewCellWidth)
	}
	return rgb.Hex()
}

// parseColours parses hex arguments, reporting the first bad one.
func parseColours(args []string) ([]colour.Color, error) {
	colors := make([]colour.Color, len(args))
	for i, arg := range args {
		c, err := colour.ParseHex(arg)
		if err != nil {
			return nil, err
		}
		colors[i] = c
	}
	return colors, nil
}

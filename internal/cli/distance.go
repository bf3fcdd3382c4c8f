package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/distinct/internal/colour"
)

type distanceOptions struct {
	mode string
}

func newDistanceCmd(a *app) *cobra.Command {
	opts := &distanceOptions{}

	cmd := &cobra.Command{
		Use:   "distance <hex> <hex>...",
		Short: "Print the pairwise perceptual distance between colours",
		Long: `Print the Oklab distance between every pair of colours as seen under a
vision mode. Pairs closer than --min-delta are marked with '*'.

Examples:
  distinct distance '#ff0000' '#00aa00' '#0000ff'
  distinct distance e41a1c 4daf4a 377eb8 -m both`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDistance(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.mode, "mode", "m", string(colour.ModeNormal), "vision mode (normal, deuteranopia, protanopia, tritanopia, both)")
	cmd.Flags().Float64Var(&a.cfg.Generator.MinDelta, "min-delta", a.cfg.Generator.MinDelta, "distances below this are marked")

	return cmd
}

func (a *app) runDistance(cmd *cobra.Command, args []string, opts *distanceOptions) error {
	colors, err := parseColours(args)
	if err != nil {
		return err
	}
	mode, err := colour.ParseMode(opts.mode)
	if err != nil {
		return err
	}

	n := renderDistances(cmd.OutOrStdout(), colors, colour.NewView(mode), a.cfg.Generator.MinDelta)
	if n > 0 {
		a.logger.Warn("colours too close to tell apart", "pairs", n, "mode", mode, "min_delta", a.cfg.Generator.MinDelta)
	}
	return nil
}

// renderDistances writes the distance matrix and returns how many pairs fall
// below minDelta.
func renderDistances(w io.Writer, colors []colour.Color, view colour.View, minDelta float64) int {
	projections := make([]colour.Projection, len(colors))
	headers := make([]string, 0, len(colors)+1)
	headers = append(headers, "")
	for i, c := range colors {
		projections[i] = view.Project(c)
		headers = append(headers, c.Hex())
	}

	table := NewTable(headers)
	for col := 1; col < len(headers); col++ {
		table.SetRightAlign(col)
	}

	tooClose := 0
	for i := range colors {
		row := []string{colors[i].Hex()}
		for j := range colors {
			if i == j {
				row = append(row, "-")
				continue
			}
			d := view.ProjectedDistance(projections[i], projections[j])
			text := fmt.Sprintf("%.4f", d)
			if d < minDelta {
				text += "*"
				if j > i {
					tooClose++
				}
			} else {
				text += " "
			}
			row = append(row, text)
		}
		table.AddRow(row)
	}

	fmt.Fprint(w, table.Render())
	return tooClose
}

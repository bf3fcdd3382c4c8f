package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/distinct/internal/colour"
	"github.com/jmylchreest/distinct/internal/palette"
	"github.com/jmylchreest/distinct/internal/seed"
	"github.com/jmylchreest/distinct/internal/swatch"
)

// Output formats for generate.
const (
	formatHex  = "hex"
	formatRGB  = "rgb"
	formatJSON = "json"
)

type generateOptions struct {
	count      int
	mode       string
	seedMode   string
	seedValue  int64
	format     string
	preview    bool
	outputPath string
	swatchPath string
}

func newGenerateCmd(a *app) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a palette of distinguishable colours",
		Long: `Generate a palette of colours that remain distinguishable under the chosen
vision mode.

Modes:
  normal        - normal colour vision
  deuteranopia  - green-blind (most common)
  protanopia    - red-blind
  tritanopia    - blue-blind
  both          - normal vision and deuteranopia at once

Seed modes:
  random   - a new palette every run (default)
  manual   - use --seed (implied when --seed is given)
  request  - derived from count and mode, so equal requests repeat

Examples:
  # Five colours for normal vision
  distinct generate

  # Eight colours safe for deuteranopes, as JSON
  distinct generate -n 8 -m deuteranopia -f json

  # Reproducible palette with a PNG swatch
  distinct generate -n 6 -m both --seed 42 --swatch palette.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runGenerate(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&opts.count, "count", "n", palette.DefaultCount, fmt.Sprintf("number of colours (%d-%d)", palette.MinCount, palette.MaxCount))
	flags.StringVarP(&opts.mode, "mode", "m", string(colour.ModeNormal), "vision mode (normal, deuteranopia, protanopia, tritanopia, both)")
	flags.StringVar(&opts.seedMode, "seed-mode", string(seed.ModeRandom), "seed mode (random, manual, request)")
	flags.Int64Var(&opts.seedValue, "seed", 0, "seed value for reproducible output")
	flags.StringVarP(&opts.format, "format", "f", formatHex, "output format (hex, rgb, json)")
	flags.BoolVar(&opts.preview, "preview", false, "show ANSI colour blocks (default on for terminals)")
	flags.StringVarP(&opts.outputPath, "output", "o", "", "write the palette to a file instead of stdout")
	flags.StringVar(&opts.swatchPath, "swatch", "", "also render a PNG swatch to this path")
	a.cfg.BindGeneratorFlags(flags)

	return cmd
}

func (a *app) runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	mode, err := colour.ParseMode(opts.mode)
	if err != nil {
		return err
	}

	format := strings.ToLower(opts.format)
	switch format {
	case formatHex, formatRGB, formatJSON:
	default:
		return fmt.Errorf("invalid format: %s (valid: hex, rgb, json)", opts.format)
	}

	seedCfg, err := a.seedConfig(cmd, opts)
	if err != nil {
		return err
	}
	req := palette.Request{Count: opts.count, Mode: mode}.Normalise()
	if req.Count != opts.count {
		a.logger.Warn("count clamped", "requested", opts.count, "count", req.Count)
	}

	seedValue, err := seed.Calculate(req.Count, string(req.Mode), seedCfg)
	if err != nil {
		return err
	}
	a.logger.Debug("seed selected", "mode", seedCfg.Mode, "seed", seedValue)

	gen := palette.NewGenerator(a.cfg.PaletteConfig(), seed.NewRand(seedValue), a.logger.Named("generator"))
	p, err := gen.Generate(cmd.Context(), req)
	if err != nil {
		return err
	}
	p.Seed = seedValue
	if p.Len() < req.Count {
		a.logger.Warn("palette shorter than requested", "requested", req.Count, "count", p.Len())
	}

	preview := opts.preview
	if !cmd.Flags().Changed("preview") {
		preview = opts.outputPath == "" && isTerminal(cmd.OutOrStdout())
	}

	if opts.outputPath != "" {
		if err := writePaletteFile(opts.outputPath, p, format, preview); err != nil {
			return err
		}
		a.logger.Info("saved palette", "path", opts.outputPath)
	} else if err := writePalette(cmd.OutOrStdout(), p, format, preview); err != nil {
		return err
	}

	if opts.swatchPath != "" {
		if err := writeSwatch(opts.swatchPath, p.Colors, swatch.VariantsFor([]colour.Mode{colour.ModeNormal, mode}), swatch.DefaultOptions()); err != nil {
			return err
		}
		a.logger.Info("saved swatch", "path", opts.swatchPath)
	}

	return nil
}

// seedConfig resolves the seed flags. Giving --seed without --seed-mode
// selects manual mode.
func (a *app) seedConfig(cmd *cobra.Command, opts *generateOptions) (seed.Config, error) {
	mode, err := seed.ParseMode(opts.seedMode)
	if err != nil {
		return seed.Config{}, err
	}
	seedGiven := cmd.Flags().Changed("seed")
	if seedGiven && !cmd.Flags().Changed("seed-mode") {
		mode = seed.ModeManual
	}

	cfg := seed.Config{Mode: mode}
	if seedGiven {
		v := opts.seedValue
		cfg.Value = &v
	}
	return cfg, nil
}

// writePalette renders p in format. Preview only affects the hex and rgb
// formats.
func writePalette(w io.Writer, p *palette.Palette, format string, preview bool) error {
	if format == formatJSON {
		data, err := p.ToJSON()
		if err != nil {
			return fmt.Errorf("failed to encode palette: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	for _, rgb := range p.ToRGBSlice() {
		text := rgb.Hex()
		if format == formatRGB {
			text = rgb.String()
		}
		if preview {
			text = colour.ColourPreview(rgb, 4) + " " + text
		}
		if _, err := fmt.Fprintln(w, text); err != nil {
			return err
		}
	}
	return nil
}

func writePaletteFile(path string, p *palette.Palette, format string, preview bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := writePalette(f, p, format, preview); err != nil {
		f.Close()
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return f.Close()
}

func writeSwatch(path string, colors []colour.Color, variants []colour.Variant, opts swatch.Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create swatch file: %w", err)
	}
	if err := swatch.Render(f, colors, variants, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) // #nosec G115 -- file descriptors fit in int
}

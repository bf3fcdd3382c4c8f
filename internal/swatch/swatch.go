// Package swatch renders palettes to PNG, one row per simulated observer.
package swatch

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"slices"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/jmylchreest/distinct/internal/colour"
)

// Options controls swatch geometry.
type Options struct {
	CellWidth  int
	CellHeight int
	LabelWidth int
	ShowLabels bool
	Background colour.Color
	Foreground colour.Color
}

// DefaultOptions returns the default swatch geometry.
func DefaultOptions() Options {
	return Options{
		CellWidth:  96,
		CellHeight: 48,
		LabelWidth: 112,
		ShowLabels: true,
		Background: colour.White,
		Foreground: colour.Black,
	}
}

// DefaultVariants are the rows rendered when none are requested.
func DefaultVariants() []colour.Variant {
	return []colour.Variant{
		colour.VariantNone,
		colour.VariantDeuteranopia,
		colour.VariantProtanopia,
		colour.VariantTritanopia,
	}
}

// VariantsFor expands modes into distinct simulation rows, keeping order.
func VariantsFor(modes []colour.Mode) []colour.Variant {
	var out []colour.Variant
	for _, m := range modes {
		for _, v := range m.Variants() {
			if !slices.Contains(out, v) {
				out = append(out, v)
			}
		}
	}
	return out
}

// Draw renders the palette into a new RGBA image.
func Draw(colors []colour.Color, variants []colour.Variant, opts Options) (*image.RGBA, error) {
	if len(colors) == 0 {
		return nil, errors.New("cannot render an empty palette")
	}
	if len(variants) == 0 {
		variants = DefaultVariants()
	}
	if opts.CellWidth <= 0 || opts.CellHeight <= 0 || opts.LabelWidth < 0 {
		return nil, fmt.Errorf("invalid swatch geometry: cell %dx%d, label %d", opts.CellWidth, opts.CellHeight, opts.LabelWidth)
	}

	width := opts.LabelWidth + len(colors)*opts.CellWidth
	height := len(variants) * opts.CellHeight
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(toRGBA(opts.Background)), image.Point{}, draw.Src)

	for row, v := range variants {
		sim := colour.SimulatorFor(v)
		y := row * opts.CellHeight

		if opts.LabelWidth > 0 {
			drawText(img, sim.Name(), opts.Foreground, image.Rect(0, y, opts.LabelWidth, y+opts.CellHeight))
		}

		for col, c := range colors {
			x := opts.LabelWidth + col*opts.CellWidth
			cell := image.Rect(x, y, x+opts.CellWidth, y+opts.CellHeight)
			seen := sim.Simulate(c)
			draw.Draw(img, cell, image.NewUniform(toRGBA(seen)), image.Point{}, draw.Src)
			if opts.ShowLabels {
				drawText(img, c.Hex(), colour.LabelColour(seen), cell)
			}
		}
	}

	return img, nil
}

// Render writes the palette as a PNG to w.
func Render(w io.Writer, colors []colour.Color, variants []colour.Variant, opts Options) error {
	img, err := Draw(colors, variants, opts)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode swatch: %w", err)
	}
	return nil
}

// drawText centres text inside rect using the 7x13 bitmap face.
func drawText(img draw.Image, text string, fg colour.Color, rect image.Rectangle) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(toRGBA(fg)),
		Face: face,
	}

	advance := d.MeasureString(text)
	metrics := face.Metrics()
	textHeight := (metrics.Ascent + metrics.Descent).Ceil()

	x := rect.Min.X + (rect.Dx()-advance.Ceil())/2
	y := rect.Min.Y + (rect.Dy()-textHeight)/2 + metrics.Ascent.Ceil()
	d.Dot = fixed.P(max(x, rect.Min.X), y)
	d.DrawString(text)
}

func toRGBA(c colour.Color) color.RGBA {
	rgb := c.RGB()
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

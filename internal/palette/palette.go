// Package palette generates colour palettes that stay distinguishable under
// normal and colour-deficient vision.
package palette

import (
	"encoding/json"
	"fmt"

	"github.com/jmylchreest/distinct/internal/colour"
)

// Palette is an ordered set of generated colours. The first colour is the
// seed; the rest follow in selection order.
type Palette struct {
	Colors []colour.Color
	Mode   colour.Mode
	Seed   int64
	Stats  BuildStats
}

// NewPalette creates a new Palette with the given colours.
func NewPalette(colors []colour.Color, mode colour.Mode) *Palette {
	return &Palette{
		Colors: colors,
		Mode:   mode,
	}
}

// Len returns the number of colours in the palette.
func (p *Palette) Len() int {
	return len(p.Colors)
}

// ToHex converts the palette colours to hex strings.
// Returns a slice of hex colour codes (e.g., ["#1a2b3c", "#4d5e6f"]).
func (p *Palette) ToHex() []string {
	hexColors := make([]string, len(p.Colors))
	for i, c := range p.Colors {
		hexColors[i] = c.Hex()
	}
	return hexColors
}

// ToRGBSlice converts the palette colours to RGB structs.
func (p *Palette) ToRGBSlice() []colour.RGB {
	rgbColors := make([]colour.RGB, len(p.Colors))
	for i, c := range p.Colors {
		rgbColors[i] = c.RGB()
	}
	return rgbColors
}

// ColorJSON represents a colour in JSON output format.
type ColorJSON struct {
	Hex string     `json:"hex"`
	RGB colour.RGB `json:"rgb"`
}

// JSON represents the palette in JSON format.
type JSON struct {
	Count  int         `json:"count"`
	Mode   colour.Mode `json:"mode"`
	Seed   int64       `json:"seed,string"`
	Colors []ColorJSON `json:"colors"`
}

// ToJSON converts the palette to indented JSON.
func (p *Palette) ToJSON() ([]byte, error) {
	colors := make([]ColorJSON, len(p.Colors))
	for i, c := range p.Colors {
		colors[i] = ColorJSON{
			Hex: c.Hex(),
			RGB: c.RGB(),
		}
	}

	return json.MarshalIndent(JSON{
		Count:  len(p.Colors),
		Mode:   p.Mode,
		Seed:   p.Seed,
		Colors: colors,
	}, "", "  ")
}

// String returns a human-readable string representation of the palette.
func (p *Palette) String() string {
	if len(p.Colors) == 0 {
		return "Empty palette"
	}

	result := fmt.Sprintf("Palette with %d colours (%s):\n", len(p.Colors), p.Mode)
	for i, c := range p.Colors {
		rgb := c.RGB()
		result += fmt.Sprintf("  %2d: %s (%s)\n", i+1, rgb.Hex(), rgb.String())
	}
	return result
}

// Get returns the colour at the specified index.
// Returns an error if the index is out of bounds.
func (p *Palette) Get(index int) (colour.Color, error) {
	if index < 0 || index >= len(p.Colors) {
		return colour.Color{}, fmt.Errorf("index out of bounds: %d (palette has %d colours)", index, len(p.Colors))
	}
	return p.Colors[index], nil
}

// All returns an iterator over all colours in the palette.
func (p *Palette) All() func(func(int, colour.Color) bool) {
	return func(yield func(int, colour.Color) bool) {
		for i, c := range p.Colors {
			if !yield(i, c) {
				return
			}
		}
	}
}

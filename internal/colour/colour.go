// Package colour provides colour representation, perceptual conversion,
// colour-vision-deficiency simulation and distance functions.
package colour

import (
	"fmt"
	"math"
)

// Color is an sRGB colour with each channel normalised to [0, 1].
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// MidGrey is the neutral reference used when picking a vibrant seed colour.
var MidGrey = Color{R: 0.5, G: 0.5, B: 0.5}

// Clamp returns the colour with every channel limited to [0, 1].
func (c Color) Clamp() Color {
	return Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}
}

// Equal reports whether every channel of c and o differs by at most tol.
func (c Color) Equal(o Color, tol float64) bool {
	return math.Abs(c.R-o.R) <= tol &&
		math.Abs(c.G-o.G) <= tol &&
		math.Abs(c.B-o.B) <= tol
}

// RGB quantises the colour to 8 bits per channel.
func (c Color) RGB() RGB {
	return RGB{R: quantise(c.R), G: quantise(c.G), B: quantise(c.B)}
}

// Hex returns the colour as a lowercase "#rrggbb" string.
func (c Color) Hex() string {
	return c.RGB().Hex()
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// RGB represents a colour in 8-bit RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// Color converts the 8-bit value back to a normalised Color.
func (rgb RGB) Color() Color {
	return Color{
		R: float64(rgb.R) / 255.0,
		G: float64(rgb.G) / 255.0,
		B: float64(rgb.B) / 255.0,
	}
}

// quantise clamps v and rounds it to the nearest of 256 levels.
func quantise(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255.0))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

package colour

import "math"

// Oklab is a point in the Oklab perceptual colour space.
// L is lightness in roughly [0, 1]; A and B are unbounded chroma axes.
type Oklab struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// DistanceTo returns the Euclidean distance between two Oklab points.
func (p Oklab) DistanceTo(q Oklab) float64 {
	dl := p.L - q.L
	da := p.A - q.A
	db := p.B - q.B
	return math.Sqrt(dl*dl + da*da + db*db)
}

// ToOklab converts an sRGB colour to Oklab using Ottosson's published matrices.
func ToOklab(c Color) Oklab {
	r := srgbToLinear(c.R)
	g := srgbToLinear(c.G)
	b := srgbToLinear(c.B)

	// Linear RGB -> LMS.
	l := 0.4122214708*r + 0.5363325363*g + 0.0514459929*b
	m := 0.2119034982*r + 0.6806995451*g + 0.1073969566*b
	s := 0.0883024619*r + 0.2817188376*g + 0.6299787005*b

	lp := math.Cbrt(l)
	mp := math.Cbrt(m)
	sp := math.Cbrt(s)

	// LMS' -> Lab.
	return Oklab{
		L: 0.2104542553*lp + 0.7936177850*mp - 0.0040720468*sp,
		A: 1.9779984951*lp - 2.4285922050*mp + 0.4505937099*sp,
		B: 0.0259040371*lp + 0.7827717662*mp - 0.8086757660*sp,
	}
}

// FromOklab converts an Oklab point back to sRGB, clamping to the gamut.
func FromOklab(p Oklab) Color {
	lp := p.L + 0.3963377774*p.A + 0.2158037573*p.B
	mp := p.L - 0.1055613458*p.A - 0.0638541728*p.B
	sp := p.L - 0.0894841775*p.A - 1.2914855480*p.B

	l := lp * lp * lp
	m := mp * mp * mp
	s := sp * sp * sp

	r := +4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	g := -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	b := -0.0041960863*l - 0.7034186147*m + 1.7076147010*s

	return Color{
		R: clamp01(linearToSRGB(r)),
		G: clamp01(linearToSRGB(g)),
		B: clamp01(linearToSRGB(b)),
	}
}

// srgbToLinear decodes a gamma-encoded sRGB channel.
func srgbToLinear(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// linearToSRGB gamma-encodes a linear channel. Negative input stays on the
// linear segment so the caller's clamp decides the result.
func linearToSRGB(v float64) float64 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math.Pow(v, 1.0/2.4) - 0.055
}

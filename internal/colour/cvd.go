package colour

// Variant identifies a dichromacy simulation.
type Variant string

const (
	// VariantNone leaves colours unchanged.
	VariantNone Variant = "none"
	// VariantDeuteranopia collapses the medium-wavelength cone response.
	VariantDeuteranopia Variant = "deuteranopia"
	// VariantProtanopia collapses the long-wavelength cone response.
	VariantProtanopia Variant = "protanopia"
	// VariantTritanopia collapses the short-wavelength cone response.
	VariantTritanopia Variant = "tritanopia"
)

// Simulator maps a colour to how a given observer perceives it.
// Implementations must be pure and deterministic.
type Simulator interface {
	Simulate(c Color) Color
	Name() string
}

// Identity is the simulator for normal vision.
type Identity struct{}

// Simulate returns c unchanged.
func (Identity) Simulate(c Color) Color { return c }

// Name returns "normal".
func (Identity) Name() string { return string(ModeNormal) }

// dichromat applies a full-severity Machado, Oliveira & Fernandes (2009)
// matrix in linear RGB.
type dichromat struct {
	name string
	m    [3][3]float64
}

func (d dichromat) Simulate(c Color) Color {
	r := srgbToLinear(c.R)
	g := srgbToLinear(c.G)
	b := srgbToLinear(c.B)

	sr := d.m[0][0]*r + d.m[0][1]*g + d.m[0][2]*b
	sg := d.m[1][0]*r + d.m[1][1]*g + d.m[1][2]*b
	sb := d.m[2][0]*r + d.m[2][1]*g + d.m[2][2]*b

	return Color{
		R: linearToSRGB(clamp01(sr)),
		G: linearToSRGB(clamp01(sg)),
		B: linearToSRGB(clamp01(sb)),
	}
}

func (d dichromat) Name() string { return d.name }

var (
	deuteranope = dichromat{
		name: string(VariantDeuteranopia),
		m: [3][3]float64{
			{0.367322, 0.860646, -0.227968},
			{0.280085, 0.672501, 0.047413},
			{-0.011820, 0.042940, 0.968881},
		},
	}
	protanope = dichromat{
		name: string(VariantProtanopia),
		m: [3][3]float64{
			{0.152286, 1.052583, -0.204868},
			{0.114503, 0.786281, 0.099216},
			{-0.003882, -0.048116, 1.051998},
		},
	}
	tritanope = dichromat{
		name: string(VariantTritanopia),
		m: [3][3]float64{
			{1.255528, -0.076749, -0.178779},
			{-0.078411, 0.930809, 0.147602},
			{0.004733, 0.691367, 0.303900},
		},
	}
)

// SimulatorFor returns the simulator for a variant. Unknown variants
// resolve to Identity.
func SimulatorFor(v Variant) Simulator {
	switch v {
	case VariantDeuteranopia:
		return deuteranope
	case VariantProtanopia:
		return protanope
	case VariantTritanopia:
		return tritanope
	default:
		return Identity{}
	}
}

// Simulate returns c as seen under variant v.
func Simulate(c Color, v Variant) Color {
	return SimulatorFor(v).Simulate(c)
}

// SimulateMode returns c as seen under the first variant of mode. For
// ModeBoth this is the unsimulated colour.
func SimulateMode(c Color, mode Mode) Color {
	return SimulatorFor(mode.Variants()[0]).Simulate(c)
}

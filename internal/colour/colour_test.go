package colour

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  RGB
	}{
		{name: "with hash", input: "#ff0000", want: RGB{R: 255}},
		{name: "without hash", input: "00ff00", want: RGB{G: 255}},
		{name: "uppercase", input: "#0000FF", want: RGB{B: 255}},
		{name: "mixed", input: "1a2B3c", want: RGB{R: 0x1a, G: 0x2b, B: 0x3c}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseHex(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.RGB())
		})
	}
}

func TestParseHex_Invalid(t *testing.T) {
	inputs := []string{"", "#", "#fff", "ff00000", "#gg0000", "##ff000", "+12345", "0x1234", " ff0000"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ParseHex(input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidHex))

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, input, parseErr.Input)
		})
	}
}

func TestColorHex(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		want  string
	}{
		{name: "black", color: Color{}, want: "#000000"},
		{name: "white", color: Color{R: 1, G: 1, B: 1}, want: "#ffffff"},
		{name: "grey rounds", color: Color{R: 0.5, G: 0.5, B: 0.5}, want: "#808080"},
		{name: "clamps out of range", color: Color{R: -0.2, G: 1.7, B: 0.2}, want: "#00ff33"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.color.Hex())
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 15 {
		for g := 0; g < 256; g += 17 {
			for b := 0; b < 256; b += 51 {
				c := RGB{R: uint8(r), G: uint8(g), B: uint8(b)}.Color()
				got, err := ParseHex(c.Hex())
				require.NoError(t, err)
				assert.Equal(t, c, got)
			}
		}
	}
}

func TestOklabKnownValues(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		want  Oklab
	}{
		{name: "white", color: White, want: Oklab{L: 1}},
		{name: "black", color: Black, want: Oklab{}},
		{name: "red", color: Color{R: 1}, want: Oklab{L: 0.627955, A: 0.224863, B: 0.125846}},
		{name: "blue", color: Color{B: 1}, want: Oklab{L: 0.452014, A: -0.032457, B: -0.311528}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToOklab(tt.color)
			assert.InDelta(t, tt.want.L, got.L, 1e-3)
			assert.InDelta(t, tt.want.A, got.A, 1e-3)
			assert.InDelta(t, tt.want.B, got.B, 1e-3)
		})
	}
}

func TestOklabRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for range 2000 {
		c := RGB{R: uint8(rng.IntN(256)), G: uint8(rng.IntN(256)), B: uint8(rng.IntN(256))}.Color()
		got := FromOklab(ToOklab(c))
		assert.True(t, c.Equal(got, 1.0/255.0), "round trip of %s gave %s", c.Hex(), got.Hex())
		assert.Equal(t, c.Hex(), got.Hex())
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range ValidModes() {
		got, err := ParseMode(string(m))
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	got, err := ParseMode("  Deuteranopia ")
	require.NoError(t, err)
	assert.Equal(t, ModeDeuteranopia, got)

	_, err = ParseMode("achromatopsia")
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestModeOrDefault(t *testing.T) {
	assert.Equal(t, ModeNormal, ModeOrDefault(""))
	assert.Equal(t, ModeNormal, ModeOrDefault("bogus"))
	assert.Equal(t, ModeTritanopia, ModeOrDefault("tritanopia"))
	assert.Equal(t, ModeBoth, ModeOrDefault("BOTH"))
}

func TestLabelColour(t *testing.T) {
	assert.Equal(t, Black, LabelColour(White))
	assert.Equal(t, White, LabelColour(Black))
	assert.Equal(t, Black, LabelColour(MustParseHex("#ffdd00")))
	assert.Equal(t, White, LabelColour(MustParseHex("#202080")))
}

func TestContrastRatio(t *testing.T) {
	assert.InDelta(t, 21.0, ContrastRatio(Black, White), 1e-9)
	assert.InDelta(t, 1.0, ContrastRatio(MidGrey, MidGrey), 1e-9)
	assert.Equal(t, ContrastRatio(Black, White), ContrastRatio(White, Black))
}

func TestLuminanceMonotonic(t *testing.T) {
	prev := -1.0
	for v := 0.0; v <= 1.0; v += 0.05 {
		l := Luminance(Color{R: v, G: v, B: v})
		assert.Greater(t, l, prev)
		prev = l
	}
	assert.False(t, math.IsNaN(prev))
}

package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	manual := int64(-77)

	tests := []struct {
		name    string
		config  Config
		want    int64
		wantErr bool
	}{
		{name: "manual", config: Config{Mode: ModeManual, Value: &manual}, want: -77},
		{name: "manual without value", config: Config{Mode: ModeManual}, wantErr: true},
		{name: "request", config: Config{Mode: ModeRequest}, want: CalculateRequestSeed(6, "both")},
		{name: "unknown", config: Config{Mode: "content"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Calculate(6, "both", tt.config)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculate_RandomDefault(t *testing.T) {
	_, err := Calculate(5, "normal", Config{})
	require.NoError(t, err)

	a, err := Calculate(5, "normal", Config{Mode: ModeRandom})
	require.NoError(t, err)
	b, err := Calculate(5, "normal", Config{Mode: ModeRandom})
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestCalculateRequestSeed(t *testing.T) {
	assert.Equal(t, CalculateRequestSeed(5, "normal"), CalculateRequestSeed(5, "normal"))
	assert.NotEqual(t, CalculateRequestSeed(5, "normal"), CalculateRequestSeed(6, "normal"))
	assert.NotEqual(t, CalculateRequestSeed(5, "normal"), CalculateRequestSeed(5, "both"))
	// The separator keeps "1"+"2x" distinct from "12"+"x".
	assert.NotEqual(t, CalculateRequestSeed(1, "2x"), CalculateRequestSeed(12, "x"))
}

func TestNewRand(t *testing.T) {
	a := NewRand(42)
	b := NewRand(42)
	c := NewRand(43)

	same := true
	for range 16 {
		x, y, z := a.Uint64(), b.Uint64(), c.Uint64()
		assert.Equal(t, x, y)
		if x != z {
			same = false
		}
	}
	assert.False(t, same)
}

func TestParseValue(t *testing.T) {
	v, err := ParseValue("-12345")
	require.NoError(t, err)
	assert.Equal(t, int64(-12345), v)

	_, err = ParseValue("12abc")
	assert.Error(t, err)
}

func TestParseMode(t *testing.T) {
	for _, m := range ValidModes() {
		got, err := ParseMode(string(m))
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	_, err := ParseMode("filepath")
	assert.Error(t, err)
}

package cli_test

import (
	"bytes"
	"encoding/json"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/distinct/internal/cli"
	"github.com/jmylchreest/distinct/internal/colour"
	"github.com/jmylchreest/distinct/internal/palette"
	"github.com/jmylchreest/distinct/internal/swatch"
)

// run executes a fresh command tree and returns its stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func TestGenerateCommand_Hex(t *testing.T) {
	out, _, err := run(t, "generate", "-n", "4", "--seed", "1", "--pool-size", "2000")
	require.NoError(t, err)

	got := lines(out)
	require.Len(t, got, 4)
	for _, l := range got {
		assert.Regexp(t, `^#[0-9a-f]{6}$`, l)
	}

	again, _, err := run(t, "generate", "-n", "4", "--seed", "1", "--pool-size", "2000")
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestGenerateCommand_JSON(t *testing.T) {
	out, _, err := run(t, "generate", "-n", "3", "-m", "deuteranopia", "--seed", "9", "-f", "json", "--pool-size", "2000")
	require.NoError(t, err)

	assert.Contains(t, out, `"seed": "9"`)

	var p palette.JSON
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	assert.Equal(t, 3, p.Count)
	assert.Equal(t, colour.ModeDeuteranopia, p.Mode)
	assert.Equal(t, int64(9), p.Seed)
	require.Len(t, p.Colors, 3)
	for _, c := range p.Colors {
		assert.Equal(t, c.Hex, c.RGB.Hex())
	}
}

func TestGenerateCommand_RGBWithPreview(t *testing.T) {
	out, _, err := run(t, "generate", "-n", "2", "--seed", "3", "-f", "rgb", "--preview", "--pool-size", "2000")
	require.NoError(t, err)

	for _, l := range lines(out) {
		assert.True(t, strings.HasPrefix(l, "\x1b[48;2;"), "missing preview block: %q", l)
		assert.Contains(t, l, " rgb(")
	}
}

func TestGenerateCommand_RequestSeedIsStable(t *testing.T) {
	args := []string{"generate", "-n", "5", "-m", "both", "--seed-mode", "request", "--pool-size", "2000"}
	first, _, err := run(t, args...)
	require.NoError(t, err)
	second, _, err := run(t, args...)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGenerateCommand_ClampsCount(t *testing.T) {
	out, _, err := run(t, "generate", "-n", "0", "--seed", "1", "--pool-size", "500")
	require.NoError(t, err)
	assert.Len(t, lines(out), 1)
}

func TestGenerateCommand_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
		wantMsg string
	}{
		{name: "unknown mode", args: []string{"generate", "-m", "monochrome"}, wantErr: colour.ErrUnknownMode},
		{name: "bad format", args: []string{"generate", "-f", "yaml"}, wantMsg: "invalid format"},
		{name: "bad seed mode", args: []string{"generate", "--seed-mode", "sometimes"}, wantMsg: "invalid seed mode"},
		{name: "manual without seed", args: []string{"generate", "--seed-mode", "manual"}, wantMsg: "seed value is required"},
		{name: "bad lightness", args: []string{"generate", "--min-lightness", "0.9", "--max-lightness", "0.2"}, wantMsg: "invalid configuration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.args...)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestGenerateCommand_Files(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "palette.txt")
	swatchPath := filepath.Join(dir, "palette.png")

	stdout, _, err := run(t, "generate", "-n", "3", "-m", "deuteranopia", "--seed", "5", "--pool-size", "2000",
		"-o", outPath, "--swatch", swatchPath)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Len(t, lines(string(data)), 3)

	f, err := os.Open(swatchPath)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)

	opts := swatch.DefaultOptions()
	assert.Equal(t, opts.LabelWidth+3*opts.CellWidth, cfg.Width)
	assert.Equal(t, 2*opts.CellHeight, cfg.Height) // normal and deuteranopia rows
}

func TestSimulateCommand(t *testing.T) {
	out, _, err := run(t, "simulate", "#FF0000", "00aa00", "-m", "deuteranopia")
	require.NoError(t, err)

	got := lines(out)
	require.Len(t, got, 4)
	assert.Equal(t, "Input    deuteranopia", got[0])
	red := colour.MustParseHex("#ff0000")
	assert.Equal(t, "#ff0000  "+colour.Simulate(red, colour.VariantDeuteranopia).Hex(), got[2])
	assert.True(t, strings.HasPrefix(got[3], "#00aa00  "))
}

func TestSimulateCommand_Preview(t *testing.T) {
	out, _, err := run(t, "simulate", "000080", "-m", "normal", "--preview")
	require.NoError(t, err)

	got := lines(out)
	require.Len(t, got, 3)
	navy := colour.RGB{B: 128}
	block := colour.ColourPreviewWithText(navy, "#000080", 9)
	assert.Equal(t, block+"  "+block, got[2])
}

func TestSimulateCommand_AllVariants(t *testing.T) {
	out, _, err := run(t, "simulate", "808080")
	require.NoError(t, err)

	header := lines(out)[0]
	for _, v := range swatch.DefaultVariants() {
		assert.Contains(t, header, string(v))
	}
}

func TestSimulateCommand_InvalidHex(t *testing.T) {
	_, _, err := run(t, "simulate", "#12345")
	require.Error(t, err)
	assert.ErrorIs(t, err, colour.ErrInvalidHex)

	var perr *colour.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "#12345", perr.Input)
}

func TestDistanceCommand(t *testing.T) {
	out, _, err := run(t, "distance", "000000", "ffffff", "010101")
	require.NoError(t, err)

	got := lines(out)
	require.Len(t, got, 5)
	assert.Contains(t, got[0], "#000000")
	assert.Contains(t, got[0], "#ffffff")
	assert.Contains(t, got[2], "1.0000")
	assert.Contains(t, got[2], "*")
	assert.NotContains(t, got[3], "*")
}

func TestDistanceCommand_Errors(t *testing.T) {
	_, _, err := run(t, "distance", "000000")
	assert.Error(t, err)

	_, _, err = run(t, "distance", "000000", "ffffff", "-m", "sepia")
	assert.ErrorIs(t, err, colour.ErrUnknownMode)
}

func TestSwatchCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swatch.png")
	_, _, err := run(t, "swatch", "e41a1c", "4daf4a", "-o", path, "--modes", "normal,both,tritanopia", "--no-labels")
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)

	opts := swatch.DefaultOptions()
	assert.Equal(t, opts.LabelWidth+2*opts.CellWidth, img.Bounds().Dx())
	assert.Equal(t, 3*opts.CellHeight, img.Bounds().Dy())
}

func TestSwatchCommand_RequiresOutput(t *testing.T) {
	_, _, err := run(t, "swatch", "e41a1c")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output")
}

func TestVersionCommand(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "distinct version "))

	out, _, err = run(t, "version", "--json")
	require.NoError(t, err)
	var info map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Contains(t, info, "go_version")
}

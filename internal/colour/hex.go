package colour

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidHex is wrapped by every ParseError.
var ErrInvalidHex = errors.New("invalid hex colour")

// ParseError reports a string that is not a 6-digit hex colour.
type ParseError struct {
	Input  string
	Reason string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s %q: %s", ErrInvalidHex, e.Input, e.Reason)
}

// Unwrap returns ErrInvalidHex so callers can match with errors.Is.
func (e *ParseError) Unwrap() error {
	return ErrInvalidHex
}

// ParseHex parses "#rrggbb" or "rrggbb" (any case) into a Color.
func ParseHex(s string) (Color, error) {
	rgb, err := ParseHexRGB(s)
	if err != nil {
		return Color{}, err
	}
	return rgb.Color(), nil
}

// ParseHexRGB parses a 6-digit hex colour into its 8-bit channels.
func ParseHexRGB(s string) (RGB, error) {
	digits := strings.TrimPrefix(s, "#")
	if len(digits) != 6 {
		return RGB{}, &ParseError{Input: s, Reason: fmt.Sprintf("expected 6 hex digits, got %d", len(digits))}
	}

	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return RGB{}, &ParseError{Input: s, Reason: "contains non-hex characters"}
	}

	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

// MustParseHex is like ParseHex but panics on error. Intended for constants
// and tests.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

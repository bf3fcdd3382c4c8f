package colour

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownMode is returned by ParseMode for names outside the enumeration.
var ErrUnknownMode = errors.New("unknown vision mode")

// Mode selects the observer a palette must stay distinguishable for.
type Mode string

const (
	// ModeNormal is trichromatic vision.
	ModeNormal Mode = "normal"
	// ModeDeuteranopia simulates missing green cones.
	ModeDeuteranopia Mode = "deuteranopia"
	// ModeProtanopia simulates missing red cones.
	ModeProtanopia Mode = "protanopia"
	// ModeTritanopia simulates missing blue cones.
	ModeTritanopia Mode = "tritanopia"
	// ModeBoth is the worst case across normal vision and deuteranopia.
	ModeBoth Mode = "both"
)

// ValidModes returns every supported mode in display order.
func ValidModes() []Mode {
	return []Mode{ModeNormal, ModeDeuteranopia, ModeProtanopia, ModeTritanopia, ModeBoth}
}

// ParseMode converts a string to a Mode.
// Returns an error if the string is not a valid mode.
func ParseMode(s string) (Mode, error) {
	mode := Mode(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(ValidModes(), mode) {
		return mode, nil
	}
	return "", fmt.Errorf("%w: %q (valid: normal, deuteranopia, protanopia, tritanopia, both)", ErrUnknownMode, s)
}

// ModeOrDefault parses s, falling back to ModeNormal for anything unrecognised.
func ModeOrDefault(s string) Mode {
	mode, err := ParseMode(s)
	if err != nil {
		return ModeNormal
	}
	return mode
}

// String implements fmt.Stringer.
func (m Mode) String() string {
	return string(m)
}

// Variants returns the simulation variants a mode is evaluated under.
// Normal vision is represented by VariantNone.
func (m Mode) Variants() []Variant {
	switch m {
	case ModeDeuteranopia:
		return []Variant{VariantDeuteranopia}
	case ModeProtanopia:
		return []Variant{VariantProtanopia}
	case ModeTritanopia:
		return []Variant{VariantTritanopia}
	case ModeBoth:
		return []Variant{VariantNone, VariantDeuteranopia}
	default:
		return []Variant{VariantNone}
	}
}

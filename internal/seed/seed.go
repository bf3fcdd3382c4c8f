// Package seed provides deterministic and non-deterministic seed selection
// for palette generation, and builds the random stream from a seed.
package seed

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	mathrand "math/rand/v2"
	"slices"
	"strconv"
	"time"
)

// Mode determines how the random seed for candidate sampling is chosen.
type Mode string

const (
	// ModeRandom uses a non-deterministic seed (varies each run). Default.
	ModeRandom Mode = "random"
	// ModeManual uses a user-provided seed value.
	ModeManual Mode = "manual"
	// ModeRequest derives the seed from the request parameters, so identical
	// requests produce identical palettes.
	ModeRequest Mode = "request"
)

// Config holds configuration for seed generation.
type Config struct {
	Mode  Mode   // Seed mode
	Value *int64 // Seed value (only used when Mode is ModeManual)
}

// Calculate determines the seed value based on the seed mode.
// count and mode identify the request and are only used by ModeRequest.
func Calculate(count int, mode string, config Config) (int64, error) {
	switch config.Mode {
	case ModeRandom, "":
		return GenerateRandomSeed(), nil
	case ModeManual:
		if config.Value == nil {
			return 0, fmt.Errorf("seed value is required for manual seed mode")
		}
		return *config.Value, nil
	case ModeRequest:
		return CalculateRequestSeed(count, mode), nil
	default:
		return 0, fmt.Errorf("unknown seed mode: %s", config.Mode)
	}
}

// CalculateRequestSeed hashes the request parameters into a seed.
func CalculateRequestSeed(count int, mode string) int64 {
	hasher := sha256.New()
	hasher.Write([]byte(strconv.Itoa(count)))
	hasher.Write([]byte{'|'})
	hasher.Write([]byte(mode))
	hash := hasher.Sum(nil)
	return int64(binary.LittleEndian.Uint64(hash[:8])) // #nosec G115 -- hash conversion is safe
}

// GenerateRandomSeed generates a non-deterministic random seed.
func GenerateRandomSeed() int64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:])) // #nosec G115 -- any bit pattern is a valid seed
}

// NewRand returns a PCG-backed generator for seed. Equal seeds give equal streams.
func NewRand(seed int64) *mathrand.Rand {
	s := uint64(seed) // #nosec G115 -- reinterpretation, not truncation
	return mathrand.New(mathrand.NewPCG(s, s^0x9e3779b97f4a7c15))
}

// ParseValue parses a decimal seed value.
func ParseValue(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid seed %q: %w", s, err)
	}
	return v, nil
}

// ValidModes returns a list of valid seed modes.
func ValidModes() []Mode {
	return []Mode{ModeRandom, ModeManual, ModeRequest}
}

// ParseMode converts a string to a Mode.
// Returns an error if the string is not a valid mode.
func ParseMode(s string) (Mode, error) {
	mode := Mode(s)
	if slices.Contains(ValidModes(), mode) {
		return mode, nil
	}
	return "", fmt.Errorf("invalid seed mode: %s (valid: random, manual, request)", s)
}

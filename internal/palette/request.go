package palette

import (
	"strconv"
	"strings"

	"github.com/jmylchreest/distinct/internal/colour"
)

// Request is a normalised palette request.
type Request struct {
	Count int
	Mode  colour.Mode
}

// ParseCount converts a raw count. Missing or non-integer input yields
// DefaultCount; integers are clamped to [MinCount, MaxCount].
func ParseCount(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return DefaultCount
	}
	return ClampCount(n)
}

// NewRequest builds a request from raw strings. It never fails: bad counts
// fall back to DefaultCount and unknown modes to normal vision.
func NewRequest(count, mode string) Request {
	return Request{
		Count: ParseCount(count),
		Mode:  colour.ModeOrDefault(mode),
	}
}

// Normalise returns r with its count clamped and its mode defaulted.
func (r Request) Normalise() Request {
	return Request{
		Count: ClampCount(r.Count),
		Mode:  colour.ModeOrDefault(string(r.Mode)),
	}
}

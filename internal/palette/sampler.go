package palette

import (
	"math/rand/v2"

	"github.com/jmylchreest/distinct/internal/colour"
)

// Default sampling parameters.
const (
	DefaultPoolSize     = 10000
	DefaultMinLightness = 0.2
	DefaultMaxLightness = 0.9
	// DefaultAttemptFactor bounds rejection sampling at this many draws per
	// requested candidate.
	DefaultAttemptFactor = 200
)

// SampleStats describes one sampling run.
type SampleStats struct {
	Attempts  int
	Accepted  int
	Exhausted bool
}

// AcceptanceRate returns the share of draws that were kept.
func (s SampleStats) AcceptanceRate() float64 {
	if s.Attempts == 0 {
		return 0
	}
	return float64(s.Accepted) / float64(s.Attempts)
}

// Sampler draws uniformly random colours and keeps those whose simulated
// lightness lies strictly inside (MinLightness, MaxLightness).
type Sampler struct {
	Rand         *rand.Rand
	View         colour.View
	MinLightness float64
	MaxLightness float64
	// MaxAttempts caps total draws. Zero means poolSize*DefaultAttemptFactor.
	MaxAttempts int
}

// NewSampler returns a sampler with the default lightness bounds.
func NewSampler(rng *rand.Rand, view colour.View) *Sampler {
	return &Sampler{
		Rand:         rng,
		View:         view,
		MinLightness: DefaultMinLightness,
		MaxLightness: DefaultMaxLightness,
	}
}

// Accept reports whether a projected candidate passes the lightness bound.
func (s *Sampler) Accept(proj colour.Projection) bool {
	l := proj.Lightness()
	return l > s.MinLightness && l < s.MaxLightness
}

// Sample fills a pool with poolSize accepted candidates. If the attempt cap
// is reached first the partial pool is returned and stats.Exhausted is set.
func (s *Sampler) Sample(poolSize int) (*Pool, SampleStats) {
	pool := NewPool(s.View, poolSize)
	stats := SampleStats{}

	maxAttempts := s.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = poolSize * DefaultAttemptFactor
	}

	for pool.Size() < poolSize {
		if stats.Attempts >= maxAttempts {
			stats.Exhausted = true
			break
		}
		stats.Attempts++

		c := colour.Color{R: s.Rand.Float64(), G: s.Rand.Float64(), B: s.Rand.Float64()}
		proj := s.View.Project(c)
		if !s.Accept(proj) {
			continue
		}
		pool.AddProjected(c, proj)
		stats.Accepted++
	}

	return pool, stats
}

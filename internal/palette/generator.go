package palette

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/distinct/internal/colour"
)

// Config controls candidate sampling and selection.
type Config struct {
	PoolSize      int
	MinDelta      float64
	MinLightness  float64
	MaxLightness  float64
	AttemptFactor int
}

// DefaultConfig returns the default generator configuration.
func DefaultConfig() Config {
	return Config{
		PoolSize:      DefaultPoolSize,
		MinDelta:      MinDeltaE,
		MinLightness:  DefaultMinLightness,
		MaxLightness:  DefaultMaxLightness,
		AttemptFactor: DefaultAttemptFactor,
	}
}

// Validate validates the generator configuration.
func (c Config) Validate() error {
	if c.PoolSize < 1 {
		return fmt.Errorf("pool size must be at least 1, got %d", c.PoolSize)
	}
	if c.MinDelta < 0 {
		return fmt.Errorf("minimum delta must not be negative, got %g", c.MinDelta)
	}
	if c.MinLightness < 0 || c.MaxLightness > 1 || c.MinLightness >= c.MaxLightness {
		return fmt.Errorf("invalid lightness bounds: (%g, %g)", c.MinLightness, c.MaxLightness)
	}
	if c.AttemptFactor < 1 {
		return fmt.Errorf("attempt factor must be at least 1, got %d", c.AttemptFactor)
	}
	return nil
}

// Generator produces palettes. It is not safe for concurrent use because it
// owns a single random stream; create one per request.
type Generator struct {
	config Config
	rng    *rand.Rand
	logger hclog.Logger
}

// NewGenerator creates a generator drawing from rng. A nil logger discards output.
func NewGenerator(config Config, rng *rand.Rand, logger hclog.Logger) *Generator {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Generator{
		config: config,
		rng:    rng,
		logger: logger,
	}
}

// Generate samples a candidate pool for req.Mode and grows a palette of
// req.Count colours from it. A shorter palette is returned when the pool
// runs out; that is not an error.
func (g *Generator) Generate(ctx context.Context, req Request) (*Palette, error) {
	if err := g.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generator configuration: %w", err)
	}
	req = req.Normalise()
	view := colour.NewView(req.Mode)

	start := time.Now()
	sampler := NewSampler(g.rng, view)
	sampler.MinLightness = g.config.MinLightness
	sampler.MaxLightness = g.config.MaxLightness
	sampler.MaxAttempts = g.config.PoolSize * g.config.AttemptFactor

	pool, sampleStats := sampler.Sample(g.config.PoolSize)
	g.logger.Debug("sampled candidate pool",
		"mode", req.Mode,
		"size", pool.Size(),
		"attempts", sampleStats.Attempts,
		"acceptance", fmt.Sprintf("%.3f", sampleStats.AcceptanceRate()),
		"elapsed", time.Since(start))
	if sampleStats.Exhausted {
		g.logger.Warn("candidate sampling hit attempt cap",
			"mode", req.Mode,
			"wanted", g.config.PoolSize,
			"got", pool.Size())
	}

	colors, buildStats, err := Build(ctx, pool, req.Count, g.config.MinDelta)
	if err != nil {
		return nil, fmt.Errorf("failed to build palette: %w", err)
	}
	if buildStats.Fallbacks > 0 {
		g.logger.Debug("separation floor not met for some picks",
			"fallbacks", buildStats.Fallbacks,
			"min_separation", buildStats.MinSeparation)
	}

	p := NewPalette(colors, req.Mode)
	p.Stats = buildStats
	g.logger.Debug("generated palette",
		"count", p.Len(),
		"requested", req.Count,
		"elapsed", time.Since(start))

	return p, nil
}

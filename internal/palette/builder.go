package palette

import (
	"context"
	"math"

	"github.com/jmylchreest/distinct/internal/colour"
)

// Palette size bounds and separation floor.
const (
	MinCount     = 1
	MaxCount     = 25
	DefaultCount = 5
	MinDeltaE    = 0.2
)

// BuildStats describes one greedy build.
type BuildStats struct {
	// Fallbacks counts picks whose nearest palette neighbour was closer than
	// the separation floor.
	Fallbacks int
	// MinSeparation is the smallest nearest-neighbour distance among the
	// growth picks. It is +Inf for palettes of fewer than two colours.
	MinSeparation float64
}

// ClampCount limits a requested palette size to [MinCount, MaxCount].
func ClampCount(n int) int {
	return max(MinCount, min(n, MaxCount))
}

// Build selects up to target colours from pool by greedy maximin.
//
// The first colour is the candidate whose primary projection is farthest from
// mid-grey by plain Oklab distance. Each following colour is the remaining candidate with the largest
// distance to its nearest palette colour. If no candidate reaches minDelta the
// globally farthest one is still taken. Ties go to the earliest pool entry.
// Selected entries are removed from pool.
func Build(ctx context.Context, pool *Pool, target int, minDelta float64) ([]colour.Color, BuildStats, error) {
	stats := BuildStats{MinSeparation: math.Inf(1)}
	target = ClampCount(target)
	if pool.Live() == 0 {
		return nil, stats, nil
	}

	view := pool.View()
	size := pool.Size()
	selected := make([]colour.Color, 0, min(target, pool.Live()))

	grey := view.Project(colour.MidGrey).Primary()
	seed := -1
	seedDist := -1.0
	for i := range size {
		if pool.Removed(i) {
			continue
		}
		if d := pool.Projection(i).Primary().DistanceTo(grey); d > seedDist {
			seed, seedDist = i, d
		}
	}

	// nearest[i] is candidate i's distance to its closest palette colour.
	nearest := make([]float64, size)
	for i := range nearest {
		nearest[i] = math.Inf(1)
	}

	pick := seed
	for {
		selected = append(selected, pool.Colour(pick))
		pool.Remove(pick)
		if len(selected) == target || pool.Live() == 0 {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}

		added := pool.Projection(pick)
		best := -1
		bestDist := math.Inf(-1)
		for i := range size {
			if pool.Removed(i) {
				continue
			}
			nearest[i] = math.Min(nearest[i], view.ProjectedDistance(pool.Projection(i), added))
			if nearest[i] > bestDist {
				best, bestDist = i, nearest[i]
			}
		}

		// The best candidate clears the floor whenever any candidate does, so
		// the floor only decides whether this pick is a fallback.
		if bestDist < minDelta {
			stats.Fallbacks++
		}
		stats.MinSeparation = math.Min(stats.MinSeparation, bestDist)
		pick = best
	}

	return selected, stats, nil
}

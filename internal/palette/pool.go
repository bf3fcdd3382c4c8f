package palette

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/jmylchreest/distinct/internal/colour"
)

// Pool is the candidate arena. Entries keep their sampling order; removal
// sets a tombstone bit instead of compacting the slice.
type Pool struct {
	view    colour.View
	colours []colour.Color
	proj    []colour.Projection
	removed *bitset.BitSet
	live    int
}

// NewPool creates an empty pool whose projections are taken under view.
func NewPool(view colour.View, capacity int) *Pool {
	return &Pool{
		view:    view,
		colours: make([]colour.Color, 0, capacity),
		proj:    make([]colour.Projection, 0, capacity),
		removed: bitset.New(uint(capacity)),
	}
}

// NewPoolFrom builds a pool from existing colours, in order.
func NewPoolFrom(view colour.View, colours []colour.Color) *Pool {
	p := NewPool(view, len(colours))
	for _, c := range colours {
		p.Add(c)
	}
	return p
}

// Add appends a colour and caches its projection.
func (p *Pool) Add(c colour.Color) {
	p.AddProjected(c, p.view.Project(c))
}

// AddProjected appends a colour whose projection has already been computed.
func (p *Pool) AddProjected(c colour.Color, proj colour.Projection) {
	p.colours = append(p.colours, c)
	p.proj = append(p.proj, proj)
	p.live++
}

// View returns the view projections were taken under.
func (p *Pool) View() colour.View {
	return p.view
}

// Size returns the number of entries ever added.
func (p *Pool) Size() int {
	return len(p.colours)
}

// Live returns the number of entries not yet removed.
func (p *Pool) Live() int {
	return p.live
}

// Removed reports whether entry i has been taken.
func (p *Pool) Removed(i int) bool {
	return p.removed.Test(uint(i))
}

// Remove tombstones entry i. Removing twice is a no-op.
func (p *Pool) Remove(i int) {
	if p.Removed(i) {
		return
	}
	p.removed.Set(uint(i))
	p.live--
}

// Colour returns entry i.
func (p *Pool) Colour(i int) colour.Color {
	return p.colours[i]
}

// Projection returns the cached projection of entry i.
func (p *Pool) Projection(i int) colour.Projection {
	return p.proj[i]
}

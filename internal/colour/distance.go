package colour

import "math"

// Projection is a colour's Oklab position under each simulator of a View.
type Projection []Oklab

// Primary returns the projection under the mode's own simulation. For
// ModeBoth this is the unsimulated colour.
func (p Projection) Primary() Oklab {
	return p[0]
}

// Lightness returns the L of the primary projection.
func (p Projection) Lightness() float64 {
	return p.Primary().L
}

// View resolves a Mode once into the simulators its distance is taken over.
type View struct {
	mode       Mode
	simulators []Simulator
}

// NewView builds the View for mode. Unknown modes behave as ModeNormal.
func NewView(mode Mode) View {
	variants := mode.Variants()
	sims := make([]Simulator, len(variants))
	for i, v := range variants {
		sims[i] = SimulatorFor(v)
	}
	return View{mode: mode, simulators: sims}
}

// Mode returns the mode the view was built for.
func (v View) Mode() Mode {
	return v.mode
}

// Project returns c's simulated Oklab position under every simulator.
func (v View) Project(c Color) Projection {
	p := make(Projection, len(v.simulators))
	for i, sim := range v.simulators {
		p[i] = ToOklab(sim.Simulate(c))
	}
	return p
}

// ProjectedDistance returns the worst-case (smallest) distance between two
// projections made by this view.
func (v View) ProjectedDistance(p, q Projection) float64 {
	d := math.Inf(1)
	for i := range p {
		d = math.Min(d, p[i].DistanceTo(q[i]))
	}
	return d
}

// Distance returns the perceptual distance between a and b under the view.
func (v View) Distance(a, b Color) float64 {
	return v.ProjectedDistance(v.Project(a), v.Project(b))
}

// Distance returns the perceptual distance between a and b under mode.
// ModeBoth yields min(normal, deuteranopia).
func Distance(a, b Color, mode Mode) float64 {
	return NewView(mode).Distance(a, b)
}

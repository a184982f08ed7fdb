// Package forces implements the gravitational attractor field applied on
// top of the engine's own integration. Forces are recomputed fresh every
// tick from positions and masses alone; nothing survives a tick boundary.
package forces

import (
	"github.com/jakecoffman/cp"

	"github.com/san-kum/gravbox/internal/world"
)

const (
	// DefaultG scales every attractor force. Tuned for scene-scale
	// masses, not physical units.
	DefaultG = 8.0

	// DefaultMinDistance is the clamp threshold. Below it the force
	// magnitude stops growing, which keeps a body sitting on top of an
	// attractor from blowing up numerically.
	DefaultMinDistance = 0.5
)

// Field computes and applies attractor forces. The zero value is not
// usable; construct with NewField.
type Field struct {
	g           float64
	minDistance float64
}

func NewField() *Field {
	return &Field{g: DefaultG, minDistance: DefaultMinDistance}
}

// NewFieldWith overrides the gravitational constant and clamp threshold,
// for scenes that want a different scale.
func NewFieldWith(g, minDistance float64) *Field {
	if g <= 0 {
		g = DefaultG
	}
	if minDistance <= 0 {
		minDistance = DefaultMinDistance
	}
	return &Field{g: g, minDistance: minDistance}
}

// ForceBetween returns the force one attractor exerts on a body of the
// given mass at the given position. Direction is body toward attractor,
// magnitude G * strength * mass / d^2, with d clamped to the threshold.
func (f *Field) ForceBetween(pos cp.Vector, mass float64, a *world.Attractor) cp.Vector {
	delta := a.Position().Sub(pos)
	dist := delta.Length()
	if dist < f.minDistance {
		dist = f.minDistance
	}
	magnitude := f.g * a.Strength() * mass / (dist * dist)
	if delta.X == 0 && delta.Y == 0 {
		// Body sits exactly on the attractor: no direction to pull in.
		return cp.Vector{}
	}
	return delta.Normalize().Mult(magnitude)
}

// ForceOn returns the vector sum of the pairwise forces from every
// attractor. Summation is commutative, so iteration order over the
// attractors does not matter within floating-point tolerance.
func (f *Field) ForceOn(pos cp.Vector, mass float64, attractors []*world.Attractor) cp.Vector {
	var total cp.Vector
	for _, a := range attractors {
		total = total.Add(f.ForceBetween(pos, mass, a))
	}
	return total
}

// Apply accumulates the summed attractor force into every dynamic body's
// force buffer. Must run before the engine step that consumes the buffer.
// Static bodies are skipped entirely.
func (f *Field) Apply(w *world.World) {
	attractors := w.Attractors()
	if len(attractors) == 0 {
		return
	}
	for _, b := range w.Bodies() {
		if !b.IsDynamic() {
			continue
		}
		b.ApplyForce(f.ForceOn(b.Position(), b.Mass(), attractors))
	}
}

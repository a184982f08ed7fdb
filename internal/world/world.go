// Package world owns the simulation aggregate: the engine space plus the
// insertion-ordered body and attractor registries. Collision detection and
// integration belong to the engine (jakecoffman/cp); this package only
// assembles, steps and queries it.
package world

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jakecoffman/cp"
)

// Bounds is the axis-aligned region spawn positions are clamped into.
type Bounds struct {
	MinX float64 `yaml:"min_x"`
	MinY float64 `yaml:"min_y"`
	MaxX float64 `yaml:"max_x"`
	MaxY float64 `yaml:"max_y"`
}

func (b Bounds) Valid() bool {
	return b.MaxX > b.MinX && b.MaxY > b.MinY
}

func (b Bounds) Contains(p cp.Vector) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Clamp returns the nearest in-bounds point.
func (b Bounds) Clamp(p cp.Vector) cp.Vector {
	if p.X < b.MinX {
		p.X = b.MinX
	} else if p.X > b.MaxX {
		p.X = b.MaxX
	}
	if p.Y < b.MinY {
		p.Y = b.MinY
	} else if p.Y > b.MaxY {
		p.Y = b.MaxY
	}
	return p
}

// World is the single live simulation aggregate. It is created by the
// scene factory and mutated only by the controller (ticks) and the input
// handler (spawns), which never interleave on the single update loop.
type World struct {
	space      *cp.Space
	bodies     []*Body
	attractors []*Attractor
	bounds     Bounds
	gravity    cp.Vector
}

// New builds an empty world with the given uniform gravity and bounds.
func New(gravity cp.Vector, bounds Bounds) (*World, error) {
	if !bounds.Valid() {
		return nil, fmt.Errorf("%w: bounds min (%g,%g) max (%g,%g)",
			ErrInvalidParameter, bounds.MinX, bounds.MinY, bounds.MaxX, bounds.MaxY)
	}
	space := cp.NewSpace()
	space.SetGravity(gravity)
	return &World{
		space:   space,
		gravity: gravity,
		bounds:  bounds,
	}, nil
}

func (w *World) Bounds() Bounds     { return w.bounds }
func (w *World) Gravity() cp.Vector { return w.gravity }

// Bodies returns the body registry in insertion order. Callers must not
// mutate the slice.
func (w *World) Bodies() []*Body { return w.bodies }

// Attractors returns the attractor registry in insertion order.
func (w *World) Attractors() []*Attractor { return w.attractors }

// AddBody validates the spec, clamps its position into bounds and inserts
// the body. Out-of-bounds positions are clamped silently, not rejected.
func (w *World) AddBody(spec BodySpec) (*Body, error) {
	pos := w.bounds.Clamp(cp.Vector{X: spec.X, Y: spec.Y})
	b, err := newBody(w.space, spec, pos)
	if err != nil {
		return nil, err
	}
	w.bodies = append(w.bodies, b)
	return b, nil
}

// AddAttractor validates the spec, clamps its position into bounds and
// inserts the attractor.
func (w *World) AddAttractor(spec AttractorSpec) (*Attractor, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}
	pos := w.bounds.Clamp(cp.Vector{X: spec.X, Y: spec.Y})
	a := &Attractor{
		id:       uuid.New(),
		name:     spec.Name,
		pos:      pos,
		strength: spec.Strength,
	}
	w.attractors = append(w.attractors, a)
	return a, nil
}

// Step advances the engine by one tick and validates the result. A NaN or
// Inf body state is unrecoverable and surfaces as a *StepError.
func (w *World) Step(dt float64) error {
	w.space.Step(dt)
	for _, b := range w.bodies {
		if !b.IsDynamic() {
			continue
		}
		if !b.valid() {
			return &StepError{Body: b.id, Name: b.name, Wrapped: ErrInvalidState}
		}
	}
	return nil
}

// BodyAt returns the first dynamic body whose shape contains the given
// world-space point, in insertion order, or nil. Read-only.
func (w *World) BodyAt(p cp.Vector) *Body {
	for _, b := range w.bodies {
		if !b.IsDynamic() {
			continue
		}
		if b.Contains(p) {
			return b
		}
	}
	return nil
}

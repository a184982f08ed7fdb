package world

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/jakecoffman/cp"
)

// Kind distinguishes bodies moved by the integrator from fixed ones.
// Static bodies stay collidable but never receive forces.
type Kind int

const (
	Dynamic Kind = iota
	Static
)

func (k Kind) String() string {
	if k == Static {
		return "static"
	}
	return "dynamic"
}

// BodySpec is the declarative description of a body in a scene. Specs
// are data: the same spec always produces the same body.
type BodySpec struct {
	Kind     string  `yaml:"kind"` // "dynamic" (default) or "static"
	Shape    string  `yaml:"shape"`
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Radius   float64 `yaml:"radius"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Angle    float64 `yaml:"angle"`
	Mass     float64 `yaml:"mass"`
	VX       float64 `yaml:"vx"`
	VY       float64 `yaml:"vy"`
	Material string  `yaml:"material"`
	Name     string  `yaml:"name"`
}

func (s BodySpec) kind() (Kind, error) {
	switch s.Kind {
	case "", "dynamic":
		return Dynamic, nil
	case "static":
		return Static, nil
	default:
		return 0, fmt.Errorf("%w: unknown body kind %q", ErrInvalidParameter, s.Kind)
	}
}

// Validate checks the spec's parameter ranges without building anything.
func (s BodySpec) Validate() error {
	kind, err := s.kind()
	if err != nil {
		return err
	}
	switch s.Shape {
	case "circle":
		if s.Radius <= 0 {
			return fmt.Errorf("%w: circle radius %g", ErrInvalidParameter, s.Radius)
		}
	case "box":
		if s.Width <= 0 || s.Height <= 0 {
			return fmt.Errorf("%w: box dimensions %gx%g", ErrInvalidParameter, s.Width, s.Height)
		}
	default:
		return fmt.Errorf("%w: unknown shape %q", ErrInvalidParameter, s.Shape)
	}
	if kind == Dynamic && s.Mass <= 0 {
		return fmt.Errorf("%w: dynamic body mass %g", ErrInvalidParameter, s.Mass)
	}
	if _, ok := MaterialByName(s.Material); !ok {
		return fmt.Errorf("%w: unknown material %q", ErrInvalidParameter, s.Material)
	}
	return nil
}

// Body is a physical object in the world. It wraps the engine body and
// shape, keeping identity and scene metadata on our side of the boundary.
type Body struct {
	id       uuid.UUID
	name     string
	kind     Kind
	spec     BodySpec
	material Material

	eb *cp.Body
	es *cp.Shape
}

func newBody(space *cp.Space, spec BodySpec, pos cp.Vector) (*Body, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	kind, _ := spec.kind()
	material, _ := MaterialByName(spec.Material)

	var eb *cp.Body
	if kind == Static {
		eb = cp.NewStaticBody()
	} else {
		var moment float64
		switch spec.Shape {
		case "circle":
			moment = cp.MomentForCircle(spec.Mass, 0, spec.Radius, cp.Vector{})
		case "box":
			moment = cp.MomentForBox(spec.Mass, spec.Width, spec.Height)
		}
		eb = cp.NewBody(spec.Mass, moment)
	}
	eb.SetPosition(pos)
	eb.SetAngle(spec.Angle)
	if kind == Dynamic {
		eb.SetVelocity(spec.VX, spec.VY)
	}

	var es *cp.Shape
	switch spec.Shape {
	case "circle":
		es = cp.NewCircle(eb, spec.Radius, cp.Vector{})
	case "box":
		es = cp.NewBox(eb, spec.Width, spec.Height, 0)
	}
	es.SetElasticity(material.Elasticity)
	es.SetFriction(material.Friction)

	space.AddBody(eb)
	space.AddShape(es)

	return &Body{
		id:       uuid.New(),
		name:     spec.Name,
		kind:     kind,
		spec:     spec,
		material: material,
		eb:       eb,
		es:       es,
	}, nil
}

func (b *Body) ID() uuid.UUID      { return b.id }
func (b *Body) Name() string       { return b.name }
func (b *Body) Kind() Kind         { return b.kind }
func (b *Body) IsDynamic() bool    { return b.kind == Dynamic }
func (b *Body) Spec() BodySpec     { return b.spec }
func (b *Body) Material() Material { return b.material }

func (b *Body) Position() cp.Vector      { return b.eb.Position() }
func (b *Body) Velocity() cp.Vector      { return b.eb.Velocity() }
func (b *Body) Angle() float64           { return b.eb.Angle() }
func (b *Body) AngularVelocity() float64 { return b.eb.AngularVelocity() }

// Mass reports 0 for static bodies.
func (b *Body) Mass() float64 {
	if b.kind == Static {
		return 0
	}
	return b.eb.Mass()
}

// ApplyForce accumulates a force at the body's center of gravity. The
// accumulator is consumed by the next engine step.
func (b *Body) ApplyForce(f cp.Vector) {
	if b.kind == Static {
		return
	}
	b.eb.ApplyForceAtWorldPoint(f, b.eb.Position())
}

// Contains reports whether a world-space point lies inside the body's shape.
func (b *Body) Contains(p cp.Vector) bool {
	return b.es.PointQuery(p).Distance <= 0
}

func (b *Body) valid() bool {
	p := b.eb.Position()
	v := b.eb.Velocity()
	for _, f := range [...]float64{p.X, p.Y, v.X, v.Y, b.eb.AngularVelocity()} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

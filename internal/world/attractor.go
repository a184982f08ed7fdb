package world

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jakecoffman/cp"
)

// AttractorSpec is the declarative description of an attractor in a scene.
type AttractorSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Strength float64 `yaml:"strength"`
	Name     string  `yaml:"name"`
}

func (s AttractorSpec) validate() error {
	if s.Strength <= 0 {
		return fmt.Errorf("%w: attractor strength %g", ErrInvalidParameter, s.Strength)
	}
	return nil
}

// Attractor is a non-colliding point source of gravitational pull on
// dynamic bodies. It lives outside the engine: no shape, no collisions.
type Attractor struct {
	id       uuid.UUID
	name     string
	pos      cp.Vector
	strength float64
}

func (a *Attractor) ID() uuid.UUID       { return a.id }
func (a *Attractor) Name() string        { return a.name }
func (a *Attractor) Position() cp.Vector { return a.pos }
func (a *Attractor) Strength() float64   { return a.strength }

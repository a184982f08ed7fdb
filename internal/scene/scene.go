// Package scene turns named, declarative scene descriptions into live
// worlds. Scenes are data, not code paths: the same identifier and
// parameters always reproduce the same initial condition.
package scene

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/jakecoffman/cp"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/gravbox/internal/world"
)

// ErrUnknownScene indicates a scene identifier with no registered spec.
// Fatal at startup: launch aborts before any tick runs.
var ErrUnknownScene = errors.New("scene: unknown scene identifier")

// ErrInvalidParameter mirrors world.ErrInvalidParameter for scene-level
// parameters, so callers can match either with errors.Is.
var ErrInvalidParameter = world.ErrInvalidParameter

const (
	DefaultTickRate         = 120.0
	DefaultMaxTicksPerFrame = 4
)

// DefaultBounds is used by scenes that do not declare their own.
var DefaultBounds = world.Bounds{MinX: -50, MinY: -50, MaxX: 50, MaxY: 50}

// Params are the simulation-wide knobs of a scene.
type Params struct {
	TickRate         float64      `yaml:"tick_rate"`
	GravityX         float64      `yaml:"gravity_x"`
	GravityY         float64      `yaml:"gravity_y"`
	Bounds           world.Bounds `yaml:"bounds"`
	MaxTicksPerFrame int          `yaml:"max_ticks_per_frame"`
	// Attractor field overrides; zero means package defaults.
	FieldG           float64 `yaml:"field_g"`
	FieldMinDistance float64 `yaml:"field_min_distance"`
}

func (p *Params) applyDefaults() {
	if p.TickRate == 0 {
		p.TickRate = DefaultTickRate
	}
	if p.MaxTicksPerFrame == 0 {
		p.MaxTicksPerFrame = DefaultMaxTicksPerFrame
	}
	if p.Bounds == (world.Bounds{}) {
		p.Bounds = DefaultBounds
	}
}

// Spec is a complete declarative scene: parameters plus ordered body,
// attractor and spawner lists.
type Spec struct {
	Name       string                `yaml:"name"`
	Params     Params                `yaml:"params"`
	Bodies     []world.BodySpec      `yaml:"bodies"`
	Attractors []world.AttractorSpec `yaml:"attractors"`
	Spawners   []SpawnerSpec         `yaml:"spawners"`
}

// Validate checks every parameter range before anything is allocated.
func (s *Spec) Validate() error {
	p := s.Params
	p.applyDefaults()
	if p.TickRate <= 0 {
		return fmt.Errorf("%w: tick rate %g", ErrInvalidParameter, p.TickRate)
	}
	if p.MaxTicksPerFrame <= 0 {
		return fmt.Errorf("%w: max ticks per frame %d", ErrInvalidParameter, p.MaxTicksPerFrame)
	}
	if !p.Bounds.Valid() {
		return fmt.Errorf("%w: inverted bounds", ErrInvalidParameter)
	}
	if _, err := world.New(cp.Vector{X: p.GravityX, Y: p.GravityY}, p.Bounds); err != nil {
		return err
	}
	for i, ss := range s.Spawners {
		if err := ss.validate(); err != nil {
			return fmt.Errorf("spawner %d: %w", i, err)
		}
	}
	// Body and attractor specs are validated by a throwaway build so the
	// error taxonomy stays in one place.
	_, _, err := s.build()
	return err
}

// Build produces a fully initialized world and the scene's live spawners.
// No side effects beyond allocation.
func (s *Spec) Build() (*world.World, []*Spawner, error) {
	if err := s.Validate(); err != nil {
		return nil, nil, err
	}
	return s.build()
}

func (s *Spec) build() (*world.World, []*Spawner, error) {
	p := s.Params
	p.applyDefaults()

	w, err := world.New(cp.Vector{X: p.GravityX, Y: p.GravityY}, p.Bounds)
	if err != nil {
		return nil, nil, err
	}
	for i, bs := range s.Bodies {
		if _, err := w.AddBody(bs); err != nil {
			return nil, nil, fmt.Errorf("body %d: %w", i, err)
		}
	}
	for i, as := range s.Attractors {
		if _, err := w.AddAttractor(as); err != nil {
			return nil, nil, fmt.Errorf("attractor %d: %w", i, err)
		}
	}
	spawners := make([]*Spawner, 0, len(s.Spawners))
	for _, ss := range s.Spawners {
		spawners = append(spawners, newSpawner(ss))
	}
	return w, spawners, nil
}

// TickRate returns the effective tick rate after defaults.
func (s *Spec) TickRate() float64 {
	p := s.Params
	p.applyDefaults()
	return p.TickRate
}

// MaxTicksPerFrame returns the effective catch-up cap after defaults.
func (s *Spec) MaxTicksPerFrame() int {
	p := s.Params
	p.applyDefaults()
	return p.MaxTicksPerFrame
}

// Lookup resolves a scene identifier against the built-in registry. The
// returned spec is a copy; callers may layer overrides onto it.
func Lookup(name string) (*Spec, error) {
	spec, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	c := *spec
	return &c, nil
}

// Names lists the built-in scene identifiers, sorted.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load reads a scene spec from a YAML file.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	spec := &Spec{}
	if err := yaml.Unmarshal(data, spec); err != nil {
		return nil, err
	}
	return spec, nil
}

// Save writes a scene spec to a YAML file.
func Save(path string, spec *Spec) error {
	data, err := yaml.Marshal(spec)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

package scene

import (
	"fmt"
	"math/rand"

	"github.com/san-kum/gravbox/internal/world"
)

// SpawnerSpec describes a timed body emitter: the same body spec released
// repeatedly at a fixed rate, with optional position jitter.
type SpawnerSpec struct {
	Body   world.BodySpec `yaml:"body"`
	Count  int            `yaml:"count"`  // total bodies to emit
	Rate   float64        `yaml:"rate"`   // emissions per simulated second
	Jitter float64        `yaml:"jitter"` // +- offset applied to x and y
	Seed   int64          `yaml:"seed"`   // 0 picks a fixed default
}

func (s SpawnerSpec) validate() error {
	if s.Count <= 0 {
		return fmt.Errorf("%w: spawner count %d", ErrInvalidParameter, s.Count)
	}
	if s.Rate <= 0 {
		return fmt.Errorf("%w: spawner rate %g", ErrInvalidParameter, s.Rate)
	}
	if s.Jitter < 0 {
		return fmt.Errorf("%w: spawner jitter %g", ErrInvalidParameter, s.Jitter)
	}
	return s.Body.Validate()
}

// Spawner paces body emission on simulated time, so a paused world emits
// nothing and catch-up frames emit at the configured rate.
type Spawner struct {
	spec    SpawnerSpec
	period  float64
	elapsed float64
	emitted int
	rng     *rand.Rand
}

func newSpawner(spec SpawnerSpec) *Spawner {
	seed := spec.Seed
	if seed == 0 {
		seed = 1
	}
	return &Spawner{
		spec:   spec,
		period: 1 / spec.Rate,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Done reports whether the spawner has emitted its full count.
func (s *Spawner) Done() bool {
	return s.emitted >= s.spec.Count
}

// Advance accounts dt of simulated time and returns the body specs due
// for emission, ready to hand to world.AddBody.
func (s *Spawner) Advance(dt float64) []world.BodySpec {
	if s.Done() {
		return nil
	}
	s.elapsed += dt
	var due []world.BodySpec
	for s.elapsed >= s.period && !s.Done() {
		s.elapsed -= s.period
		spec := s.spec.Body
		if j := s.spec.Jitter; j > 0 {
			spec.X += s.rng.Float64()*2*j - j
			spec.Y += s.rng.Float64()*2*j - j
		}
		due = append(due, spec)
		s.emitted++
	}
	return due
}

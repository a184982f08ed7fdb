// Package loop owns the tick loop: the Running/Paused state machine, the
// fixed-timestep accumulator with bounded catch-up, and the ordering
// guarantee that attractor forces are accumulated before the engine step
// consumes them.
package loop

import (
	"fmt"
	"time"

	"github.com/san-kum/gravbox/internal/forces"
	"github.com/san-kum/gravbox/internal/scene"
	"github.com/san-kum/gravbox/internal/world"
)

// Mode is the pause state machine. A world starts Running.
type Mode int

const (
	Running Mode = iota
	Paused
)

func (m Mode) String() string {
	if m == Paused {
		return "paused"
	}
	return "running"
}

// Controller advances a world on a fixed tick. It is the exclusive owner
// of the world for the duration of a tick; ticks are atomic — force
// application and the engine step either both run or neither does.
type Controller struct {
	world    *world.World
	field    *forces.Field
	spawners []*scene.Spawner

	dt          float64
	maxPerFrame int
	mode        Mode
	accumulator float64

	stats Stats
}

// New builds a controller stepping at the given tick rate, running at
// most maxPerFrame ticks per Advance call.
func New(w *world.World, field *forces.Field, tickRate float64, maxPerFrame int) (*Controller, error) {
	if tickRate <= 0 {
		return nil, fmt.Errorf("%w: tick rate %g", world.ErrInvalidParameter, tickRate)
	}
	if maxPerFrame <= 0 {
		return nil, fmt.Errorf("%w: max ticks per frame %d", world.ErrInvalidParameter, maxPerFrame)
	}
	return &Controller{
		world:       w,
		field:       field,
		dt:          1 / tickRate,
		maxPerFrame: maxPerFrame,
	}, nil
}

// SetSpawners attaches the scene's timed body emitters. They advance on
// simulated time, so they stall while paused.
func (c *Controller) SetSpawners(spawners []*scene.Spawner) {
	c.spawners = spawners
}

func (c *Controller) World() *world.World { return c.world }
func (c *Controller) Dt() float64         { return c.dt }
func (c *Controller) Mode() Mode          { return c.mode }
func (c *Controller) Paused() bool        { return c.mode == Paused }
func (c *Controller) Stats() Stats        { return c.stats }

// TogglePause flips the state machine. Synchronous: the new state is
// observed before the next tick is considered, never mid-tick.
func (c *Controller) TogglePause() Mode {
	if c.mode == Running {
		c.mode = Paused
	} else {
		c.mode = Running
	}
	return c.mode
}

// Advance accounts elapsed wall-clock seconds and runs the ticks they
// cover, capped at maxPerFrame. When the cap is hit the excess time is
// dropped so a slow frame cannot start a catch-up spiral. Returns the
// number of ticks run. While paused no tick runs and nothing accumulates.
func (c *Controller) Advance(elapsed float64) (int, error) {
	if c.mode == Paused {
		c.accumulator = 0
		return 0, nil
	}
	c.accumulator += elapsed

	ticks := 0
	for c.accumulator >= c.dt && ticks < c.maxPerFrame {
		if err := c.tick(); err != nil {
			return ticks, err
		}
		c.accumulator -= c.dt
		ticks++
	}
	if ticks == c.maxPerFrame && c.accumulator >= c.dt {
		// Cap hit: drop the excess instead of inflating the next frame.
		c.accumulator = 0
	}
	return ticks, nil
}

// StepOnce runs exactly one tick while paused, for frame-by-frame
// inspection. No-op while running (Advance owns the pacing there).
func (c *Controller) StepOnce() error {
	if c.mode != Paused {
		return nil
	}
	return c.tick()
}

func (c *Controller) tick() error {
	start := time.Now()

	c.field.Apply(c.world)
	if err := c.world.Step(c.dt); err != nil {
		return err
	}
	for _, s := range c.spawners {
		for _, spec := range s.Advance(c.dt) {
			// Spawner specs were validated at scene build time.
			if _, err := c.world.AddBody(spec); err != nil {
				return err
			}
		}
	}

	c.stats.observe(time.Since(start))
	return nil
}

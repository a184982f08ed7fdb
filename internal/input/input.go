// Package input translates discrete key and mouse events into world
// mutations: spawning bodies and attractors at the cursor and toggling
// the pause state. Camera movement stays in the TUI; only actions that
// touch the world live here.
package input

import (
	"math/rand"

	"github.com/jakecoffman/cp"

	"github.com/san-kum/gravbox/internal/loop"
	"github.com/san-kum/gravbox/internal/world"
)

// Action is a world-affecting command resolved from a key press.
type Action int

const (
	ActionNone Action = iota
	ActionTogglePause
	ActionSpawnBody
	ActionSpawnAttractor
	ActionStepOnce
)

// Keymap resolves bubbletea key strings to actions.
type Keymap map[string]Action

// DefaultKeymap mirrors the historical bindings: space/p pause, b body,
// a attractor, u manual tick while paused.
func DefaultKeymap() Keymap {
	return Keymap{
		" ": ActionTogglePause,
		"p": ActionTogglePause,
		"b": ActionSpawnBody,
		"a": ActionSpawnAttractor,
		"u": ActionStepOnce,
	}
}

// Defaults for user-spawned entities.
const (
	SpawnBodyRadius        = 0.2
	SpawnBodyMass          = 1.0
	SpawnAttractorStrength = 40.0
)

// Handler executes actions against the controller and its world. Spawn
// positions outside the world bounds are clamped silently by the world.
type Handler struct {
	ctrl *loop.Controller
	keys Keymap
	rng  *rand.Rand
}

func NewHandler(ctrl *loop.Controller, keys Keymap) *Handler {
	if keys == nil {
		keys = DefaultKeymap()
	}
	return &Handler{
		ctrl: ctrl,
		keys: keys,
		rng:  rand.New(rand.NewSource(1)),
	}
}

// Resolve maps a key string to its action without executing it.
func (h *Handler) Resolve(key string) Action {
	return h.keys[key]
}

// HandleKey resolves and executes a key press with the cursor at the
// given world-space position. Spawning works in both states; a manual
// step only while paused.
func (h *Handler) HandleKey(key string, cursor cp.Vector) (Action, error) {
	action := h.keys[key]
	switch action {
	case ActionTogglePause:
		h.ctrl.TogglePause()
	case ActionSpawnBody:
		if _, err := h.SpawnBodyAt(cursor); err != nil {
			return action, err
		}
	case ActionSpawnAttractor:
		if _, err := h.SpawnAttractorAt(cursor); err != nil {
			return action, err
		}
	case ActionStepOnce:
		if err := h.ctrl.StepOnce(); err != nil {
			return action, err
		}
	}
	return action, nil
}

// SpawnBodyAt inserts a default dynamic circle at the given position,
// with a randomly picked material like the historical spawner.
func (h *Handler) SpawnBodyAt(pos cp.Vector) (*world.Body, error) {
	return h.ctrl.World().AddBody(world.BodySpec{
		Shape:    "circle",
		X:        pos.X,
		Y:        pos.Y,
		Radius:   SpawnBodyRadius,
		Mass:     SpawnBodyMass,
		Material: world.RandomMaterial(h.rng).Name,
	})
}

// SpawnAttractorAt inserts a default-strength attractor at the given
// position.
func (h *Handler) SpawnAttractorAt(pos cp.Vector) (*world.Attractor, error) {
	return h.ctrl.World().AddAttractor(world.AttractorSpec{
		X:        pos.X,
		Y:        pos.Y,
		Strength: SpawnAttractorStrength,
	})
}

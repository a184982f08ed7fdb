package scene

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/san-kum/gravbox/internal/world"
)

func TestLookupUnknownScene(t *testing.T) {
	_, err := Lookup("does-not-exist")
	if !errors.Is(err, ErrUnknownScene) {
		t.Errorf("expected ErrUnknownScene, got %v", err)
	}
}

func TestLookupKnownScenes(t *testing.T) {
	for _, name := range Names() {
		spec, err := Lookup(name)
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if spec.Name != name {
			t.Errorf("%s: spec name %q does not match key", name, spec.Name)
		}
	}
}

func TestAllPresetsBuild(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			spec, err := Lookup(name)
			if err != nil {
				t.Fatalf("lookup: %v", err)
			}
			w, spawners, err := spec.Build()
			if err != nil {
				t.Fatalf("build: %v", err)
			}
			if len(w.Bodies()) != len(spec.Bodies) {
				t.Errorf("expected %d bodies, got %d", len(spec.Bodies), len(w.Bodies()))
			}
			if len(w.Attractors()) != len(spec.Attractors) {
				t.Errorf("expected %d attractors, got %d", len(spec.Attractors), len(w.Attractors()))
			}
			if len(spawners) != len(spec.Spawners) {
				t.Errorf("expected %d spawners, got %d", len(spec.Spawners), len(spawners))
			}
		})
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	spec, err := Lookup("solar")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	w1, _, err := spec.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	w2, _, err := spec.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	for i := range w1.Bodies() {
		p1 := w1.Bodies()[i].Position()
		p2 := w2.Bodies()[i].Position()
		if p1 != p2 {
			t.Errorf("body %d: positions differ (%g,%g) vs (%g,%g)", i, p1.X, p1.Y, p2.X, p2.Y)
		}
	}
}

func TestValidateRejectsBadParams(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
	}{
		{"negative tick rate", Spec{Params: Params{TickRate: -60}}},
		{"negative catch-up cap", Spec{Params: Params{MaxTicksPerFrame: -1}}},
		{"inverted bounds", Spec{Params: Params{Bounds: world.Bounds{MinX: 5, MaxX: -5, MinY: 0, MaxY: 1}}}},
		{"degenerate body", Spec{Bodies: []world.BodySpec{{Shape: "circle", Radius: 0, Mass: 1}}}},
		{"massless dynamic body", Spec{Bodies: []world.BodySpec{{Shape: "circle", Radius: 1}}}},
		{"weak attractor", Spec{Attractors: []world.AttractorSpec{{Strength: -2}}}},
		{"zero-rate spawner", Spec{Spawners: []SpawnerSpec{{Body: world.BodySpec{Shape: "circle", Radius: 1, Mass: 1}, Count: 5}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.spec.Validate(); !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("expected ErrInvalidParameter, got %v", err)
			}
		})
	}
}

func TestParamDefaults(t *testing.T) {
	spec := &Spec{Name: "bare"}
	if got := spec.TickRate(); got != DefaultTickRate {
		t.Errorf("expected default tick rate %g, got %g", DefaultTickRate, got)
	}
	if got := spec.MaxTicksPerFrame(); got != DefaultMaxTicksPerFrame {
		t.Errorf("expected default cap %d, got %d", DefaultMaxTicksPerFrame, got)
	}
	w, _, err := spec.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if w.Bounds() != DefaultBounds {
		t.Errorf("expected default bounds, got %+v", w.Bounds())
	}
}

func TestSceneFileRoundTrip(t *testing.T) {
	spec, err := Lookup("pool")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	path := filepath.Join(t.TempDir(), "pool.yaml")
	if err := Save(path, spec); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Name != spec.Name {
		t.Errorf("name: expected %q, got %q", spec.Name, loaded.Name)
	}
	if len(loaded.Bodies) != len(spec.Bodies) || len(loaded.Spawners) != len(spec.Spawners) {
		t.Errorf("round trip lost content: %d/%d bodies, %d/%d spawners",
			len(loaded.Bodies), len(spec.Bodies), len(loaded.Spawners), len(spec.Spawners))
	}
	if _, _, err := loaded.Build(); err != nil {
		t.Errorf("loaded scene must build: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSpawnerPacing(t *testing.T) {
	s := newSpawner(SpawnerSpec{
		Body:  world.BodySpec{Shape: "circle", X: 0, Y: 10, Radius: 0.1, Mass: 1},
		Count: 3,
		Rate:  10,
	})

	if due := s.Advance(0.25); len(due) != 2 {
		t.Errorf("0.25s at 10Hz: expected 2 emissions, got %d", len(due))
	}
	if due := s.Advance(0.1); len(due) != 1 {
		t.Errorf("remaining budget: expected 1 emission, got %d", len(due))
	}
	if !s.Done() {
		t.Error("spawner should be exhausted after emitting its count")
	}
	if due := s.Advance(10); due != nil {
		t.Errorf("exhausted spawner emitted %d more", len(due))
	}
}

func TestSpawnerJitterStaysNearOrigin(t *testing.T) {
	s := newSpawner(SpawnerSpec{
		Body:   world.BodySpec{Shape: "circle", X: 5, Y: 10, Radius: 0.1, Mass: 1},
		Count:  20,
		Rate:   100,
		Jitter: 0.5,
	})
	for _, spec := range s.Advance(1) {
		if spec.X < 4.5 || spec.X > 5.5 || spec.Y < 9.5 || spec.Y > 10.5 {
			t.Errorf("jitter out of range: (%g,%g)", spec.X, spec.Y)
		}
	}
}

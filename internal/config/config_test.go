package config

import (
	"path/filepath"
	"testing"

	"github.com/san-kum/gravbox/internal/scene"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Scene != DefaultScene {
		t.Errorf("expected scene %q, got %q", DefaultScene, cfg.Scene)
	}
	if cfg.TickRate != 0 {
		t.Error("default config must not override the scene tick rate")
	}
}

func TestApplyOverrides(t *testing.T) {
	spec := &scene.Spec{Name: "test"}
	cfg := &Config{TickRate: 240, MaxTicksPerFrame: 8, GravityY: -5}
	cfg.Apply(spec)

	if spec.Params.TickRate != 240 {
		t.Errorf("tick rate override not applied: %g", spec.Params.TickRate)
	}
	if spec.Params.MaxTicksPerFrame != 8 {
		t.Errorf("cap override not applied: %d", spec.Params.MaxTicksPerFrame)
	}
	if spec.Params.GravityY != -5 {
		t.Errorf("gravity override not applied: %g", spec.Params.GravityY)
	}
	if spec.Params.GravityX != 0 {
		t.Error("zero override must leave gravity x untouched")
	}
}

func TestApplyZeroIsNoOp(t *testing.T) {
	spec := &scene.Spec{Name: "test", Params: scene.Params{TickRate: 120}}
	Default().Apply(spec)
	if spec.Params.TickRate != 120 {
		t.Errorf("zero-valued config clobbered the scene tick rate: %g", spec.Params.TickRate)
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := &Config{Scene: "solar", TickRate: 90, GravityY: -9.81}
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip mismatch: %+v vs %+v", loaded, cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

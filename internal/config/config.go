// Package config holds the application-level configuration: which scene
// to run and the overrides layered onto its parameters.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/gravbox/internal/scene"
)

const DefaultScene = "attractor"

// Config is the YAML application config. Zero values mean "use the
// scene's own parameter".
type Config struct {
	Scene            string  `yaml:"scene"`
	TickRate         float64 `yaml:"tick_rate"`
	MaxTicksPerFrame int     `yaml:"max_ticks_per_frame"`
	GravityX         float64 `yaml:"gravity_x"`
	GravityY         float64 `yaml:"gravity_y"`
}

func Default() *Config {
	return &Config{Scene: DefaultScene}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Apply layers the config's non-zero overrides onto a scene spec.
func (c *Config) Apply(spec *scene.Spec) {
	if c.TickRate > 0 {
		spec.Params.TickRate = c.TickRate
	}
	if c.MaxTicksPerFrame > 0 {
		spec.Params.MaxTicksPerFrame = c.MaxTicksPerFrame
	}
	if c.GravityX != 0 {
		spec.Params.GravityX = c.GravityX
	}
	if c.GravityY != 0 {
		spec.Params.GravityY = c.GravityY
	}
}

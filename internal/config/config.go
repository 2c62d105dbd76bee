// Package config holds the settings of the geom command, loaded from YAML.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// Tolerance for near-degenerate geometry: parallel lines, coincident
	// points.
	Epsilon float64 `yaml:"epsilon"`
	// Douglas–Peucker distance tolerance.
	SimplifyTolerance float64 `yaml:"simplify_tolerance"`
	Render            Render  `yaml:"render"`
}

type Render struct {
	// Pixels per unit
	Scale float64 `yaml:"scale"`
	// Pixels around the drawing
	Padding float64 `yaml:"padding"`
}

func Default() Config {
	return Config{
		Epsilon:           1e-4,
		SimplifyTolerance: 1,
		Render: Render{
			Scale:   10,
			Padding: 20,
		},
	}
}

// Load reads a YAML file over the defaults, so a file only needs to name the
// settings it changes. The result is validated.
func Load(path string) (Config, error) {
	config := Default()
	file, err := os.Open(path)
	if err != nil {
		return config, errors.Wrapf(err, "opening config %s", path)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil {
		return config, errors.Wrapf(err, "parsing config %s", path)
	}
	return config, config.Validate()
}

func (c Config) Validate() error {
	if c.Epsilon < 0 {
		return errors.Errorf("epsilon must not be negative, got %v", c.Epsilon)
	}
	if c.SimplifyTolerance < 0 {
		return errors.Errorf("simplify_tolerance must not be negative, got %v", c.SimplifyTolerance)
	}
	if c.Render.Scale <= 0 {
		return errors.Errorf("render.scale must be positive, got %v", c.Render.Scale)
	}
	if c.Render.Padding < 0 {
		return errors.Errorf("render.padding must not be negative, got %v", c.Render.Padding)
	}
	return nil
}

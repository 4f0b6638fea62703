// Package config loads run files for the batch simulator.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/AnkushinDaniil/doubleslit/entity/format"
	"github.com/AnkushinDaniil/doubleslit/entity/parameters"
	"github.com/AnkushinDaniil/doubleslit/sampler"
)

var ErrInvalid = errors.New("invalid config")

// Adjustment is a scripted press of a control button before the given tick.
type Adjustment struct {
	Tick  int              `yaml:"tick"`
	Field parameters.Field `yaml:"field"`
	Steps int              `yaml:"steps"` // signed button presses, 0 means 1
}

func (a Adjustment) Delta() float64 {
	steps := a.Steps
	if steps == 0 {
		steps = 1
	}
	return float64(steps) * a.Field.Step()
}

type Config struct {
	LogLevel            string                `yaml:"log_level"`
	Output              string                `yaml:"output"`
	Format              format.Format         `yaml:"format"`
	Ticks               int                   `yaml:"ticks"`
	DeltaT              time.Duration         `yaml:"delta_t"`
	Interval            time.Duration         `yaml:"interval"`
	Seed                uint64                `yaml:"seed"` // 0 picks a random seed
	Samples             int                   `yaml:"samples"`
	Bins                int                   `yaml:"bins"`
	VerticalDiffraction bool                  `yaml:"vertical_diffraction"`
	Experiment          parameters.Parameters `yaml:"experiment"`
	Adjustments         []Adjustment          `yaml:"adjustments"`
}

func Default() Config {
	return Config{
		LogLevel:   "info",
		Output:     "DoubleSlit.html",
		Format:     format.HTML,
		Ticks:      2000,
		DeltaT:     sampler.DefaultInterval,
		Interval:   sampler.DefaultInterval,
		Samples:    500,
		Bins:       50,
		Experiment: parameters.Default(),
	}
}

// Load reads a YAML run file on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Output == "" {
		return fmt.Errorf("%w: output is empty", ErrInvalid)
	}
	if c.Ticks < 0 {
		return fmt.Errorf("%w: ticks %d is negative", ErrInvalid, c.Ticks)
	}
	if c.DeltaT <= 0 || c.Interval <= 0 {
		return fmt.Errorf("%w: delta_t and interval must be positive", ErrInvalid)
	}
	if c.Samples < 2 {
		return fmt.Errorf("%w: samples %d, need at least 2", ErrInvalid, c.Samples)
	}
	if c.Bins < 1 {
		return fmt.Errorf("%w: bins %d, need at least 1", ErrInvalid, c.Bins)
	}
	if err := c.Experiment.Validate(); err != nil {
		return fmt.Errorf("%w: experiment: %w", ErrInvalid, err)
	}
	for _, a := range c.Adjustments {
		if a.Tick < 0 || a.Tick > c.Ticks {
			return fmt.Errorf("%w: adjustment of %s at tick %d outside [0, %d]", ErrInvalid, a.Field, a.Tick, c.Ticks)
		}
	}
	slices.SortStableFunc(c.Adjustments, func(a, b Adjustment) int {
		return a.Tick - b.Tick
	})
	return nil
}

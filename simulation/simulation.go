// Package simulation owns the experiment state driven by a host tick loop.
package simulation

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/AnkushinDaniil/doubleslit/entity/mode"
	"github.com/AnkushinDaniil/doubleslit/entity/parameters"
	"github.com/AnkushinDaniil/doubleslit/interference"
	"github.com/AnkushinDaniil/doubleslit/sampler"
	"github.com/AnkushinDaniil/doubleslit/spectrum"
)

// Simulation is not safe for concurrent use; it expects a single caller
// that adjusts and steps it in turn.
type Simulation struct {
	params  parameters.Parameters
	sampler *sampler.Sampler
}

func New(params parameters.Parameters, s *sampler.Sampler) *Simulation {
	if s == nil {
		s = sampler.New()
	}
	return &Simulation{params: params, sampler: s}
}

// Adjust applies delta to field and reports whether the configuration
// changed. Any change discards the accumulated particles so the pattern is
// rebuilt from the new configuration only.
func (s *Simulation) Adjust(field parameters.Field, delta float64) bool {
	if !s.params.Apply(field, delta) {
		return false
	}
	s.sampler.Reset()
	return true
}

// Press adjusts field by one button step in the given direction.
func (s *Simulation) Press(field parameters.Field, steps int) bool {
	return s.Adjust(field, float64(steps)*field.Step())
}

// Step advances the particle sampler by dt while in Particles mode and
// reports whether new points were added.
func (s *Simulation) Step(dt time.Duration) bool {
	if s.params.Mode != mode.Particles {
		return false
	}
	return s.sampler.Tick(dt, s.params)
}

func (s *Simulation) Config() parameters.Parameters {
	return s.params
}

func (s *Simulation) Points() []sampler.Point {
	return s.sampler.Points()
}

func (s *Simulation) Sampler() *sampler.Sampler {
	return s.sampler
}

func (s *Simulation) Reset() {
	s.sampler.Reset()
}

// Color is the display color of the current wavelength.
func (s *Simulation) Color() colorful.Color {
	return spectrum.WavelengthToRGB(s.params.Wavelength)
}

func (s *Simulation) Intensity(u float64) float64 {
	return interference.IntensityX(u, s.params)
}

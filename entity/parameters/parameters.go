// Package parameters holds the physical configuration of the double-slit
// experiment and the single entry point that mutates it.
package parameters

import (
	"errors"
	"fmt"

	"github.com/AnkushinDaniil/doubleslit/entity/mode"
)

const (
	MinWavelength = 200.0 // nanometers
	MaxWavelength = 800.0 // nanometers
)

var ErrOutOfRange = errors.New("value out of range")

type Parameters struct {
	Separation     float64   `yaml:"separation"`      // micrometers
	SlitWidth      float64   `yaml:"slit_width"`      // micrometers
	Wavelength     float64   `yaml:"wavelength"`      // nanometers
	ScreenDistance float64   `yaml:"screen_distance"` // centimeters
	Mode           mode.Mode `yaml:"mode"`
}

func Default() Parameters {
	return Parameters{
		Separation:     50,
		SlitWidth:      5,
		Wavelength:     500,
		ScreenDistance: 100,
		Mode:           mode.Light,
	}
}

// Apply adds delta to field if the result stays inside the field's range and
// reports whether anything changed. Input ignores delta and toggles the mode.
func (p *Parameters) Apply(field Field, delta float64) bool {
	if field == Input {
		p.Mode = p.Mode.Toggle()
		return true
	}

	value := p.ref(field)
	if value == nil || delta == 0 {
		return false
	}

	candidate := *value + delta
	if !field.Range().Contains(candidate) {
		return false
	}
	*value = candidate
	return true
}

// Get returns the current value of a numeric field.
func (p Parameters) Get(field Field) float64 {
	if value := p.ref(field); value != nil {
		return *value
	}
	return 0
}

func (p Parameters) Validate() error {
	for _, field := range Numeric() {
		value := p.Get(field)
		if r := field.Range(); !r.Contains(value) {
			return fmt.Errorf("%s %g not in [%g, %g]: %w", field, value, r.Lo, r.Hi, ErrOutOfRange)
		}
	}
	if p.Mode != mode.Light && p.Mode != mode.Particles {
		return fmt.Errorf("mode %s: %w", p.Mode, ErrOutOfRange)
	}
	return nil
}

func (p *Parameters) ref(field Field) *float64 {
	switch field {
	case Separation:
		return &p.Separation
	case Width:
		return &p.SlitWidth
	case Wavelength:
		return &p.Wavelength
	case ScreenDistance:
		return &p.ScreenDistance
	default:
		return nil
	}
}

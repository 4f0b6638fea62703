package parameters

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnkushinDaniil/doubleslit/entity/mode"
)

func TestDefault(t *testing.T) {
	p := Default()
	assert.Equal(t, 50.0, p.Separation)
	assert.Equal(t, 5.0, p.SlitWidth)
	assert.Equal(t, 500.0, p.Wavelength)
	assert.Equal(t, 100.0, p.ScreenDistance)
	assert.Equal(t, mode.Light, p.Mode)
	require.NoError(t, p.Validate())
}

func TestApplyWithinRange(t *testing.T) {
	p := Default()
	assert.True(t, p.Apply(Wavelength, 25))
	assert.Equal(t, 525.0, p.Wavelength)
	assert.True(t, p.Apply(Separation, -49))
	assert.Equal(t, 1.0, p.Separation)
}

func TestApplyRejectsOutOfRange(t *testing.T) {
	p := Default()
	assert.False(t, p.Apply(Width, 11))
	assert.Equal(t, 5.0, p.SlitWidth)
	assert.False(t, p.Apply(ScreenDistance, -81))
	assert.Equal(t, 100.0, p.ScreenDistance)
	assert.False(t, p.Apply(Wavelength, 301))
	assert.Equal(t, 500.0, p.Wavelength)
}

func TestApplyZeroDeltaIsNoChange(t *testing.T) {
	p := Default()
	assert.False(t, p.Apply(Separation, 0))
}

func TestApplyInputToggles(t *testing.T) {
	p := Default()
	assert.True(t, p.Apply(Input, 123))
	assert.Equal(t, mode.Particles, p.Mode)
	assert.True(t, p.Apply(Input, 0))
	assert.Equal(t, mode.Light, p.Mode)
	assert.Equal(t, Default(), p)
}

func TestApplyNeverLeavesRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	p := Default()
	fields := Numeric()
	for range 10000 {
		field := fields[rng.IntN(len(fields))]
		delta := (rng.Float64() - 0.5) * 2 * field.Range().Hi
		p.Apply(field, delta)
		for _, f := range fields {
			require.True(t, f.Range().Contains(p.Get(f)), "%s = %g", f, p.Get(f))
		}
	}
}

func TestValidate(t *testing.T) {
	p := Default()
	p.SlitWidth = 20
	err := p.Validate()
	require.ErrorIs(t, err, ErrOutOfRange)
	assert.Contains(t, err.Error(), "width")
}

func TestParseField(t *testing.T) {
	for text, want := range map[string]Field{
		"separation": Separation,
		"width":      Width,
		"wavelength": Wavelength,
		"distance":   ScreenDistance,
		"input":      Input,
	} {
		got, err := ParseField(text)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, text, got.String())
	}
	_, err := ParseField("color")
	assert.Error(t, err)
}

func TestStep(t *testing.T) {
	assert.Equal(t, 25.0, Wavelength.Step())
	assert.Equal(t, 10.0, ScreenDistance.Step())
	assert.Zero(t, Input.Step())
}

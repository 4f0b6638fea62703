package spectrum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWavelengthToRGBRed(t *testing.T) {
	c := WavelengthToRGB(650)
	assert.Equal(t, 1.0, c.R)
	assert.Equal(t, 0.0, c.G)
	assert.Equal(t, 0.0, c.B)
	assert.Equal(t, "#ff0000", c.Hex())
}

func TestWavelengthToRGBOutsideVisible(t *testing.T) {
	for _, nm := range []float64{0, 200, 379.9, 781, 800} {
		assert.Equal(t, Black, WavelengthToRGB(nm), "%g nm", nm)
		assert.False(t, Visible(nm))
	}
	assert.True(t, Visible(380))
	assert.True(t, Visible(780))
	assert.NotEqual(t, Black, WavelengthToRGB(380))
	assert.NotEqual(t, Black, WavelengthToRGB(780))
}

func TestWavelengthToRGBContinuousAtBoundaries(t *testing.T) {
	const eps = 1e-7
	for _, nm := range []float64{420, 440, 490, 510, 580, 645, 701} {
		below, at := WavelengthToRGB(nm-eps), WavelengthToRGB(nm)
		assert.InDelta(t, at.R, below.R, 1e-4, "red at %g", nm)
		assert.InDelta(t, at.G, below.G, 1e-4, "green at %g", nm)
		assert.InDelta(t, at.B, below.B, 1e-4, "blue at %g", nm)
	}
}

func TestBandFormulasAgreeAtSharedEdges(t *testing.T) {
	for i := 1; i < len(bands); i++ {
		edge := bands[i].lo
		r1, g1, b1 := bands[i-1].rgb(edge)
		r2, g2, b2 := bands[i].rgb(edge)
		assert.InDelta(t, r1, r2, 1e-12, "red at %g", edge)
		assert.InDelta(t, g1, g2, 1e-12, "green at %g", edge)
		assert.InDelta(t, b1, b2, 1e-12, "blue at %g", edge)
	}
}

func TestWavelengthToRGBChannelsInUnitRange(t *testing.T) {
	for nm := 300.0; nm < 850; nm += 0.5 {
		c := WavelengthToRGB(nm)
		assert.True(t, c.IsValid(), "%g nm: %v", nm, c)
	}
}

func TestFalloff(t *testing.T) {
	assert.InDelta(t, 0.3, Falloff(380), 1e-12)
	assert.Equal(t, 1.0, Falloff(420))
	assert.Equal(t, 1.0, Falloff(700))
	assert.Equal(t, 1.0, Falloff(701))
	assert.InDelta(t, 0.3, Falloff(781-1e-9), 1e-6)
	assert.Zero(t, Falloff(781))
}

func TestWavelengthToRGBViolet(t *testing.T) {
	c := WavelengthToRGB(400)
	assert.Zero(t, c.G)
	assert.Greater(t, c.B, c.R)
}

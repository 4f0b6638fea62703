package interference

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnkushinDaniil/doubleslit/entity/parameters"
)

func TestIntensityXCenter(t *testing.T) {
	assert.Equal(t, 1.0, IntensityX(0.5, parameters.Default()))
	assert.Equal(t, 1.0, IntensityY(0.5, parameters.Default()))
}

func TestIntensityXNearCenterIsContinuous(t *testing.T) {
	p := parameters.Default()
	for _, eps := range []float64{1e-6, 1e-9, 1e-12, 1e-15} {
		v := IntensityX(0.5+eps, p)
		require.False(t, math.IsNaN(v))
		assert.InDelta(t, 1.0, v, 1e-3, "eps=%g", eps)
	}
}

func TestIntensityXBounded(t *testing.T) {
	p := parameters.Default()
	for _, sep := range []float64{1, 25, 100} {
		for _, width := range []float64{1, 8, 15} {
			for _, wl := range []float64{parameters.MinWavelength, 500, parameters.MaxWavelength} {
				for _, dist := range []float64{20, 110, 200} {
					p.Separation, p.SlitWidth, p.Wavelength, p.ScreenDistance = sep, width, wl, dist
					for i := 0; i <= 1000; i++ {
						u := float64(i) / 1000
						v := IntensityX(u, p)
						require.False(t, math.IsNaN(v))
						require.GreaterOrEqual(t, v, 0.0)
						require.LessOrEqual(t, v, 1.0)
					}
				}
			}
		}
	}
}

func TestIntensityXSymmetric(t *testing.T) {
	p := parameters.Default()
	for i := 0; i <= 100; i++ {
		u := float64(i) / 200
		assert.InDelta(t, IntensityX(u, p), IntensityX(1-u, p), 1e-12)
	}
}

func TestIntensityXFirstDarkFringe(t *testing.T) {
	p := parameters.Default()
	// cos(b) vanishes where sin(theta) = lambda / (2 * separation).
	s := p.Wavelength * Nanometer / (2 * p.Separation * Micrometer)
	d := p.ScreenDistance * Centimeter * s / math.Sqrt(1-s*s)
	u := 0.5 + d/ScreenWidth
	assert.InDelta(t, 0, IntensityX(u, p), 1e-9)
}

func TestIntensityXEnvelope(t *testing.T) {
	p := parameters.Default()
	// Bright fringes never rise above the single-slit envelope.
	for i := 0; i <= 1000; i++ {
		u := float64(i) / 1000
		sin := sineTheta((u-0.5)*ScreenWidth, p.ScreenDistance*Centimeter)
		a := math.Pi * p.SlitWidth * Micrometer / (p.Wavelength * Nanometer) * sin
		assert.LessOrEqual(t, IntensityX(u, p), Sinc2(a)+1e-12)
	}
}

func TestSinc2(t *testing.T) {
	assert.Equal(t, 1.0, Sinc2(0))
	assert.InDelta(t, 0, Sinc2(math.Pi), 1e-20)
	assert.InDelta(t, 1, Sinc2(1e-8), 1e-12)
	assert.Equal(t, 1.0, Cos2(0))
}

func TestProfile(t *testing.T) {
	u, intensity := Profile(parameters.Default(), 101)
	require.Len(t, u, 101)
	require.Len(t, intensity, 101)
	assert.Equal(t, 0.0, u[0])
	assert.InDelta(t, 1.0, u[100], 1e-12)
	assert.InDelta(t, 1.0, intensity[50], 1e-12)

	u, _ = Profile(parameters.Default(), 0)
	assert.Len(t, u, 2)
}

func TestFringeSpacing(t *testing.T) {
	assert.InDelta(t, 0.01, FringeSpacing(parameters.Default()), 1e-12)
}

func TestIntensityYIgnoresSlitWidth(t *testing.T) {
	narrow, wide := parameters.Default(), parameters.Default()
	narrow.SlitWidth, wide.SlitWidth = 1, 15
	for i := 0; i <= 100; i++ {
		v := float64(i) / 100
		assert.Equal(t, IntensityY(v, narrow), IntensityY(v, wide))
	}
	// The first vertical minimum sits where sin(theta) = lambda / SlitHeight.
	p := parameters.Default()
	s := p.Wavelength * Nanometer / (SlitHeight * Micrometer)
	d := p.ScreenDistance * Centimeter * s / math.Sqrt(1-s*s)
	assert.InDelta(t, 0, IntensityY(0.5+d/ScreenHeight, p), 1e-9)
}

// Package interference computes the intensity a double slit projects onto
// the screen. All functions are pure and normalized to [0, 1].
package interference

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/AnkushinDaniil/doubleslit/entity/parameters"
)

const (
	ScreenWidth  = 0.4 // meters
	ScreenHeight = 0.2 // meters

	// SlitHeight is fixed in micrometers; the controls only change the width.
	SlitHeight = 5.0

	Micrometer = 1e-6
	Nanometer  = 1e-9
	Centimeter = 1e-2
)

// IntensityX returns the probability that a particle lands at the normalized
// horizontal screen position u, where u = 0.5 is the screen center.
func IntensityX(u float64, p parameters.Parameters) float64 {
	sineTheta := sineTheta((u-0.5)*ScreenWidth, p.ScreenDistance*Centimeter)
	wavelength := p.Wavelength * Nanometer

	a := math.Pi * p.SlitWidth * Micrometer / wavelength * sineTheta
	b := math.Pi * p.Separation * Micrometer / wavelength * sineTheta

	return clamp(Sinc2(a) * Cos2(b))
}

// IntensityY is the single-slit profile across the vertical axis, used to
// spread particle spots.
func IntensityY(v float64, p parameters.Parameters) float64 {
	sineTheta := sineTheta((v-0.5)*ScreenHeight, p.ScreenDistance*Centimeter)
	a := math.Pi * SlitHeight * Micrometer / (p.Wavelength * Nanometer) * sineTheta
	return clamp(Sinc2(a))
}

// Sinc2 returns (sin x / x)^2 with the removable singularity at 0 filled in.
func Sinc2(x float64) float64 {
	if x == 0 {
		return 1
	}
	s := math.Sin(x) / x
	return s * s
}

func Cos2(x float64) float64 {
	if x == 0 {
		return 1
	}
	c := math.Cos(x)
	return c * c
}

// FringeSpacing is the paraxial distance in meters between neighboring
// bright fringes on the screen.
func FringeSpacing(p parameters.Parameters) float64 {
	return p.Wavelength * Nanometer * p.ScreenDistance * Centimeter / (p.Separation * Micrometer)
}

// Profile samples IntensityX at n evenly spaced positions across the screen.
func Profile(p parameters.Parameters, n int) (u, intensity []float64) {
	if n < 2 {
		n = 2
	}
	u = floats.Span(make([]float64, n), 0, 1)
	intensity = make([]float64, n)
	for i, x := range u {
		intensity[i] = IntensityX(x, p)
	}
	return u, intensity
}

// sineTheta is exact: the hypotenuse runs from the slits to the screen point.
func sineTheta(displacement, distance float64) float64 {
	if displacement == 0 {
		return 0
	}
	return displacement / math.Sqrt(displacement*displacement+distance*distance)
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

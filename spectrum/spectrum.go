// Package spectrum approximates the color of monochromatic light.
//
// The mapping is a piecewise-linear visual approximation of the CIE curves,
// not a colorimetrically exact conversion.
package spectrum

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	VisibleMin = 380.0 // nanometers, inclusive
	VisibleMax = 781.0 // nanometers, exclusive

	Gamma = 0.8
)

// Black is returned for wavelengths outside the visible band.
var Black = colorful.Color{}

type band struct {
	lo, hi float64
	rgb    func(nm float64) (r, g, b float64)
}

var bands = []band{
	{380, 440, func(nm float64) (float64, float64, float64) { return -(nm - 440) / (440 - 380), 0, 1 }},
	{440, 490, func(nm float64) (float64, float64, float64) { return 0, (nm - 440) / (490 - 440), 1 }},
	{490, 510, func(nm float64) (float64, float64, float64) { return 0, 1, -(nm - 510) / (510 - 490) }},
	{510, 580, func(nm float64) (float64, float64, float64) { return (nm - 510) / (580 - 510), 1, 0 }},
	{580, 645, func(nm float64) (float64, float64, float64) { return 1, -(nm - 645) / (645 - 580), 0 }},
	{645, 781, func(nm float64) (float64, float64, float64) { return 1, 0, 0 }},
}

// Visible reports whether nm lies in [VisibleMin, VisibleMax); WavelengthToRGB
// returns Black for every other wavelength.
func Visible(nm float64) bool {
	return nm >= VisibleMin && nm < VisibleMax
}

// WavelengthToRGB returns the display color of light with the given
// wavelength in nanometers.
func WavelengthToRGB(nm float64) colorful.Color {
	r, g, b := linear(nm)
	factor := Falloff(nm)
	return colorful.Color{
		R: correct(r, factor),
		G: correct(g, factor),
		B: correct(b, factor),
	}
}

// Falloff dims the color toward both ends of the visible band.
func Falloff(nm float64) float64 {
	switch {
	case nm >= 380 && nm < 420:
		return 0.3 + 0.7*(nm-380)/(420-380)
	case nm >= 420 && nm < 701:
		return 1
	case nm >= 701 && nm < 781:
		return 0.3 + 0.7*(781-nm)/(781-701)
	default:
		return 0
	}
}

func linear(nm float64) (r, g, b float64) {
	for _, band := range bands {
		if nm >= band.lo && nm < band.hi {
			return band.rgb(nm)
		}
	}
	return 0, 0, 0
}

// correct leaves zero channels alone so 0^Gamma is never evaluated.
func correct(c, factor float64) float64 {
	if c == 0 {
		return 0
	}
	return math.Pow(c*factor, Gamma)
}

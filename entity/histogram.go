package entity

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/AnkushinDaniil/doubleslit/entity/parameters"
	"github.com/AnkushinDaniil/doubleslit/interference"
	"github.com/AnkushinDaniil/doubleslit/sampler"
)

// subSamples per bin when integrating the expected intensity.
const subSamples = 16

// Histogram bins particle impacts horizontally and holds the counts the
// intensity model predicts for the same bins.
type Histogram struct {
	Dividers []float64
	Counts   []float64
	Expected []float64

	xs []float64
}

func NewHistogram(points []sampler.Point, params parameters.Parameters, bins int) (*Histogram, error) {
	if bins < 1 {
		return nil, errors.New("histogram needs at least one bin")
	}

	half := sampler.ScreenWidth / 2
	dividers := floats.Span(make([]float64, bins+1), -half, half)
	// The upper edge is exclusive in stat.Histogram.
	dividers[bins] = math.Nextafter(half, math.Inf(1))

	xs := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.X
	}
	sort.Float64s(xs)

	h := &Histogram{
		Dividers: dividers,
		Counts:   stat.Histogram(nil, dividers, xs, nil),
		Expected: expected(params, bins, float64(len(points))),
		xs:       xs,
	}
	return h, nil
}

func expected(params parameters.Parameters, bins int, total float64) []float64 {
	weights := make([]float64, bins)
	width := 1 / float64(bins)
	for i := range weights {
		for j := range subSamples {
			u := (float64(i) + (float64(j)+0.5)/subSamples) * width
			weights[i] += interference.IntensityX(u, params)
		}
	}
	sum := floats.Sum(weights)
	if sum == 0 {
		return weights
	}
	floats.Scale(total/sum, weights)
	return weights
}

func (h *Histogram) Total() float64 {
	return floats.Sum(h.Counts)
}

// Centers returns the midpoint of every bin.
func (h *Histogram) Centers() []float64 {
	centers := make([]float64, len(h.Counts))
	for i := range centers {
		centers[i] = (h.Dividers[i] + h.Dividers[i+1]) / 2
	}
	return centers
}

// ChiSquare is Pearson's statistic of the counts against the model.
func (h *Histogram) ChiSquare() float64 {
	if h.Total() == 0 {
		return 0
	}
	return stat.ChiSquare(h.Counts, h.Expected)
}

// Distance is the total variation distance between the observed and
// predicted bin frequencies, in [0, 1].
func (h *Histogram) Distance() float64 {
	total := h.Total()
	if total == 0 {
		return 0
	}
	observed := make([]float64, len(h.Counts))
	predicted := make([]float64, len(h.Expected))
	floats.ScaleTo(observed, 1/total, h.Counts)
	floats.ScaleTo(predicted, 1/total, h.Expected)
	return floats.Distance(observed, predicted, 1) / 2
}

func (h *Histogram) MeanStdDev() (mean, std float64) {
	if len(h.xs) < 2 {
		return 0, 0
	}
	return stat.MeanStdDev(h.xs, nil)
}

package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-echarts/go-echarts/v2/opts"
	log "github.com/sirupsen/logrus"

	"github.com/AnkushinDaniil/doubleslit/entity/parameters"
	"github.com/AnkushinDaniil/doubleslit/interference"
	"github.com/AnkushinDaniil/doubleslit/sampler"
	"github.com/AnkushinDaniil/doubleslit/visibility"
)

// Line is a named series plotted against screen position in pixels.
type Line struct {
	name    string
	x       []float64
	values  []float64
	data    []opts.LineData
	peakIdx int
}

func NewLine(name string) (*Line, error) {
	if name == "" {
		return nil, errors.New("name is empty")
	}
	return &Line{name: name}, nil
}

func (l *Line) Name() string {
	return l.name
}

func (l *Line) Data() []opts.LineData {
	return l.data
}

func (l *Line) X() []float64 {
	return l.x
}

func (l *Line) Values() []float64 {
	return l.values
}

func (l *Line) PeakIdx() int {
	return l.peakIdx
}

// SetIntensity fills the line with the intensity across the screen sampled
// at the given number of points.
func (l *Line) SetIntensity(params parameters.Parameters, samples int) error {
	timestamp := time.Now()
	defer func() {
		log.WithFields(log.Fields{
			"line":    l.name,
			"samples": samples,
			"time":    time.Since(timestamp),
		}).Debug("Intensity profile calculated")
	}()

	u, intensity := interference.Profile(params, samples)
	x := make([]float64, len(u))
	for i := range u {
		x[i] = sampler.ScreenWidth*u[i] - sampler.ScreenWidth/2
	}
	if err := l.SetValues(x, intensity); err != nil {
		return fmt.Errorf("failed to set intensity: %w", err)
	}
	return nil
}

func (l *Line) SetValues(x, values []float64) error {
	if len(x) != len(values) {
		return fmt.Errorf("line %s: %d positions for %d values", l.name, len(x), len(values))
	}
	l.x = x
	l.values = values
	l.data = make([]opts.LineData, len(values))
	for i, v := range values {
		l.data[i] = opts.LineData{Value: v}
	}
	l.peakIdx = visibility.Peak(values)
	return nil
}

// Visibility returns a line with the fringe visibility of l, one point per
// fringe period placed at the center of its window.
func (l *Line) Visibility(name string, params parameters.Parameters) (*Line, error) {
	v, err := NewLine(name)
	if err != nil {
		return nil, err
	}
	if len(l.x) < 2 {
		return v, nil
	}

	step := (l.x[len(l.x)-1] - l.x[0]) / float64(len(l.x)-1)
	period := interference.FringeSpacing(params) / interference.ScreenWidth * sampler.ScreenWidth
	win := int(period/step + 0.5)

	values := visibility.Windows(l.values, win)
	x := make([]float64, len(values))
	for i := range values {
		x[i] = (l.x[i*win] + l.x[(i+1)*win-1]) / 2
	}
	if err := v.SetValues(x, values); err != nil {
		return nil, fmt.Errorf("failed to set visibility: %w", err)
	}
	return v, nil
}

// Package sampler turns the diffraction intensity into individual particle
// impacts on the screen by rejection sampling.
package sampler

import (
	"math/rand/v2"
	"slices"
	"time"

	"github.com/AnkushinDaniil/doubleslit/entity/parameters"
	"github.com/AnkushinDaniil/doubleslit/interference"
)

const (
	DefaultBatchSize   = 10
	DefaultMaxAttempts = 10000

	// Screen extents in pixels, centered on the origin.
	ScreenWidth  = 500.0
	ScreenHeight = 98.0
)

// Point is an impact position in screen pixels.
type Point struct {
	X, Y, Z float64
}

type Sampler struct {
	timer       Timer
	rng         *rand.Rand
	batchSize   int
	maxAttempts int
	vertical    bool

	points    []Point
	fallbacks int
}

type Option func(*Sampler)

func WithSource(src rand.Source) Option {
	return func(s *Sampler) {
		s.rng = rand.New(src)
	}
}

func WithSeed(seed uint64) Option {
	return WithSource(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func WithInterval(interval time.Duration) Option {
	return func(s *Sampler) {
		s.timer = NewTimer(interval)
	}
}

func WithBatchSize(n int) Option {
	return func(s *Sampler) {
		if n > 0 {
			s.batchSize = n
		}
	}
}

func WithMaxAttempts(n int) Option {
	return func(s *Sampler) {
		if n > 0 {
			s.maxAttempts = n
		}
	}
}

// WithVerticalDiffraction samples the vertical position from the single-slit
// profile instead of uniformly.
func WithVerticalDiffraction(enabled bool) Option {
	return func(s *Sampler) {
		s.vertical = enabled
	}
}

func New(opts ...Option) *Sampler {
	s := &Sampler{
		timer:       NewTimer(DefaultInterval),
		batchSize:   DefaultBatchSize,
		maxAttempts: DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return s
}

// Tick advances the timer by dt and, if it fires, appends one batch of
// impacts drawn for p. It reports whether points were added.
func (s *Sampler) Tick(dt time.Duration, p parameters.Parameters) bool {
	if !s.timer.Tick(dt) {
		return false
	}
	for range s.batchSize {
		s.points = append(s.points, s.Draw(p))
	}
	return true
}

// Draw samples a single impact. When the retry budget runs out the point
// falls back to the screen center, where the intensity is highest.
func (s *Sampler) Draw(p parameters.Parameters) Point {
	u, ok := s.reject(func(u float64) float64 { return interference.IntensityX(u, p) })
	if !ok {
		s.fallbacks++
		u = 0.5
	}

	var v float64
	if s.vertical {
		v, ok = s.reject(func(v float64) float64 { return interference.IntensityY(v, p) })
		if !ok {
			s.fallbacks++
			v = 0.5
		}
	} else {
		v = s.rng.Float64()
	}

	return Point{
		X: ScreenWidth*u - ScreenWidth/2,
		Y: ScreenHeight*v - ScreenHeight/2,
	}
}

func (s *Sampler) reject(density func(float64) float64) (float64, bool) {
	for range s.maxAttempts {
		u := s.rng.Float64()
		if s.rng.Float64() < density(u) {
			return u, true
		}
	}
	return 0, false
}

// Points returns a copy of the accumulated impacts.
func (s *Sampler) Points() []Point {
	return slices.Clone(s.points)
}

func (s *Sampler) Len() int {
	return len(s.points)
}

// Fallbacks counts draws that exhausted the retry budget.
func (s *Sampler) Fallbacks() int {
	return s.fallbacks
}

// Reset drops all impacts and restarts the timer.
func (s *Sampler) Reset() {
	s.points = s.points[:0]
	s.timer.Reset()
}

package app

import (
	"context"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"

	"github.com/AnkushinDaniil/doubleslit/config"
	"github.com/AnkushinDaniil/doubleslit/entity"
	"github.com/AnkushinDaniil/doubleslit/entity/format"
	"github.com/AnkushinDaniil/doubleslit/entity/mode"
	"github.com/AnkushinDaniil/doubleslit/sampler"
	"github.com/AnkushinDaniil/doubleslit/simulation"
	"github.com/AnkushinDaniil/doubleslit/visibility"
)

type App struct {
	Config config.Config
}

// Result is the state of the experiment after the last tick.
type Result struct {
	Sim       *simulation.Simulation
	Profile    *entity.Line
	Visibility *entity.Line
	Histogram  *entity.Histogram
}

func New(cfg config.Config) *App {
	return &App{Config: cfg}
}

func (a *App) Run(ctx context.Context) error {
	appTime := time.Now()
	defer func() {
		log.WithField("time", time.Since(appTime)).Debug("App finished")
	}()
	log.WithFields(log.Fields{
		"output":     a.Config.Output,
		"format":     a.Config.Format,
		"ticks":      a.Config.Ticks,
		"deltaT":     a.Config.DeltaT,
		"separation": a.Config.Experiment.Separation,
		"slitWidth":  a.Config.Experiment.SlitWidth,
		"wavelength": a.Config.Experiment.Wavelength,
		"distance":   a.Config.Experiment.ScreenDistance,
		"mode":       a.Config.Experiment.Mode,
	}).Debug("App started")

	result, err := a.Simulate(ctx)
	if err != nil {
		return fmt.Errorf("failed to simulate: %w", err)
	}

	f, err := os.Create(a.Config.Output)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	renderTime := time.Now()
	switch a.Config.Format {
	case format.HTML:
		err = a.createPage(result).Render(f)
	case format.Csv:
		err = writeCSV(f, result)
	default:
		err = fmt.Errorf("unsupported format %s", a.Config.Format)
	}
	if err != nil {
		return fmt.Errorf("failed to render %s report: %w", a.Config.Format, err)
	}
	log.WithFields(log.Fields{
		"time": time.Since(renderTime),
		"file": a.Config.Output,
	}).Info("Report rendered and saved")

	return nil
}

// Simulate drives the experiment through the configured ticks, pressing the
// scripted buttons along the way.
func (a *App) Simulate(ctx context.Context) (*Result, error) {
	startTime := time.Now()

	sim := simulation.New(a.Config.Experiment, sampler.New(a.samplerOptions()...))
	adjustments := a.Config.Adjustments
	for tick := 0; tick <= a.Config.Ticks; tick++ {
		for len(adjustments) > 0 && adjustments[0].Tick == tick {
			adjust(sim, adjustments[0], tick)
			adjustments = adjustments[1:]
		}
		if tick == a.Config.Ticks {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("stopped at tick %d: %w", tick, err)
		}
		sim.Step(a.Config.DeltaT)
	}

	params := sim.Config()
	profile, err := entity.NewLine(fmt.Sprintf("Интенсивность %g нм", params.Wavelength))
	if err != nil {
		return nil, fmt.Errorf("failed to create line: %w", err)
	}
	if err := profile.SetIntensity(params, a.Config.Samples); err != nil {
		return nil, fmt.Errorf("failed to calculate profile: %w", err)
	}
	fringes, err := profile.Visibility("Видность", params)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate visibility: %w", err)
	}

	result := &Result{Sim: sim, Profile: profile, Visibility: fringes}
	fields := log.Fields{
		"time":  time.Since(startTime),
		"mode":  params.Mode,
		"color": sim.Color().Hex(),
		"peakX": profile.X()[profile.PeakIdx()],
	}
	if values := fringes.Values(); len(values) > 0 {
		_, maxVisibility := visibility.MinMax(values)
		fields["visibilityMax"] = maxVisibility
		fields["visibilityMean"] = stat.Mean(values, nil)
	}
	if params.Mode == mode.Particles {
		result.Histogram, err = entity.NewHistogram(sim.Points(), params, a.Config.Bins)
		if err != nil {
			return nil, fmt.Errorf("failed to build histogram: %w", err)
		}
		mean, std := result.Histogram.MeanStdDev()
		fields["points"] = sim.Sampler().Len()
		fields["fallbacks"] = sim.Sampler().Fallbacks()
		fields["chiSquare"] = result.Histogram.ChiSquare()
		fields["distance"] = result.Histogram.Distance()
		fields["mean"] = mean
		fields["std"] = std
	}
	log.WithFields(fields).Info("Simulation finished")

	return result, nil
}

func (a *App) samplerOptions() []sampler.Option {
	options := []sampler.Option{
		sampler.WithInterval(a.Config.Interval),
		sampler.WithVerticalDiffraction(a.Config.VerticalDiffraction),
	}
	if a.Config.Seed != 0 {
		options = append(options, sampler.WithSeed(a.Config.Seed))
	}
	return options
}

func adjust(sim *simulation.Simulation, adj config.Adjustment, tick int) {
	changed := sim.Adjust(adj.Field, adj.Delta())
	entry := log.WithFields(log.Fields{
		"tick":  tick,
		"field": adj.Field,
		"delta": adj.Delta(),
	})
	if !changed {
		entry.Warn("Adjustment out of range, ignored")
		return
	}
	cfg := sim.Config()
	entry.WithFields(log.Fields{
		"value": cfg.Get(adj.Field),
		"mode":  cfg.Mode,
	}).Debug("Adjustment applied")
}

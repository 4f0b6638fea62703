package app

import (
	"fmt"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	log "github.com/sirupsen/logrus"

	"github.com/AnkushinDaniil/doubleslit/entity"
	"github.com/AnkushinDaniil/doubleslit/sampler"
	"github.com/AnkushinDaniil/doubleslit/visibility"
)

const pageTitle = "Young's double-slit experiment"

func (a *App) createPage(result *Result) *components.Page {
	startTime := time.Now()
	defer func() {
		log.WithField("time", time.Since(startTime)).Debug("Creating page")
	}()

	page := components.NewPage()
	page.PageTitle = pageTitle
	page.AddCharts(createIntensityChart(result))
	if len(result.Visibility.Values()) > 0 {
		page.AddCharts(createVisibilityChart(result.Visibility))
	}
	if result.Histogram != nil {
		page.AddCharts(createParticlesChart(result), createHistogramChart(result.Histogram))
	}
	return page
}

func globalOptions(title, xName, yName string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			BackgroundColor: "#ffffff",
			Width:           "100%",
			Height:          "600px",
			PageTitle:       pageTitle,
		}),
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "slider",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
		charts.WithLegendOpts(opts.Legend{
			Orient:       "horizontal",
			Show:         opts.Bool(true),
			SelectedMode: "multiple",
			Type:         "scroll",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
			AxisPointer: &opts.AxisPointer{
				Type: "cross",
				Snap: opts.Bool(true),
			},
		}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: opts.Bool(true),
			Top:  "0%",
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  opts.Bool(true),
					Type:  "png",
					Name:  "chart",
					Title: "Save as image",
				},
				DataView: &opts.ToolBoxFeatureDataView{
					Show:  opts.Bool(true),
					Title: "Data view",
					Lang:  []string{"data view", "turn off", "refresh"},
				},
				Restore: &opts.ToolBoxFeatureRestore{
					Show:  opts.Bool(true),
					Title: "refresh",
				},
			},
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: xName,
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: yName,
			Type: "value",
			Show: opts.Bool(true),
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
	}
}

func createIntensityChart(result *Result) *charts.Line {
	params := result.Sim.Config()
	color := result.Sim.Color().Hex()

	line := charts.NewLine()
	line.SetGlobalOptions(globalOptions(
		fmt.Sprintf("d = %g мкм, b = %g мкм, λ = %g нм, L = %g см",
			params.Separation, params.SlitWidth, params.Wavelength, params.ScreenDistance),
		"Положение на экране, пикс",
		"Интенсивность, отн. ед.",
	)...)

	line.SetXAxis(result.Profile.X())
	line.AddSeries(result.Profile.Name(), result.Profile.Data(),
		charts.WithLineStyleOpts(opts.LineStyle{Color: color}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: color}),
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
	)
	return line
}

func createVisibilityChart(v *entity.Line) *charts.Line {
	_, maxVisibility := visibility.MinMax(v.Values())

	line := charts.NewLine()
	line.SetGlobalOptions(globalOptions(
		fmt.Sprintf("Видность полос, максимум %.3f", maxVisibility),
		"Положение на экране, пикс",
		"Видность",
	)...)
	line.SetXAxis(v.X())
	line.AddSeries(v.Name(), v.Data())
	return line
}

func createParticlesChart(result *Result) *charts.Scatter {
	points := result.Sim.Points()

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(globalOptions(
		fmt.Sprintf("%d частиц", len(points)),
		"x, пикс",
		"y, пикс",
	)...)
	scatter.SetGlobalOptions(
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: "x, пикс",
			Min:  -sampler.ScreenWidth / 2,
			Max:  sampler.ScreenWidth / 2,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Name: "y, пикс",
			Min:  -sampler.ScreenHeight / 2,
			Max:  sampler.ScreenHeight / 2,
		}),
	)

	data := make([]opts.ScatterData, len(points))
	for i, p := range points {
		data[i] = opts.ScatterData{Value: []float64{p.X, p.Y}, SymbolSize: 2}
	}
	scatter.AddSeries("Частицы", data,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: result.Sim.Color().Hex()}),
	)
	return scatter
}

func createHistogramChart(h *entity.Histogram) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(globalOptions(
		fmt.Sprintf("χ² = %.1f, расстояние = %.3f", h.ChiSquare(), h.Distance()),
		"x, пикс",
		"Число частиц",
	)...)

	centers := h.Centers()
	labels := make([]string, len(centers))
	for i, c := range centers {
		labels[i] = fmt.Sprintf("%.0f", c)
	}
	bar.SetXAxis(labels)

	observed := make([]opts.BarData, len(h.Counts))
	for i, c := range h.Counts {
		observed[i] = opts.BarData{Value: c}
	}
	expected := make([]opts.BarData, len(h.Expected))
	for i, e := range h.Expected {
		expected[i] = opts.BarData{Value: e}
	}
	bar.AddSeries("Частицы", observed)
	bar.AddSeries("Модель", expected)
	return bar
}

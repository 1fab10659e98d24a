package postpro

import (
	"fmt"
	"os"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// RenderHTML writes an interactive hydrograph to an html file: rainfall and
// modelled discharge, plus the observed hydrograph when given (obs may be
// nil).
func RenderHTML(fp string, dt []time.Time, rain, sim, obs []float64) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme:     types.ThemeWesteros,
			PageTitle: "bucket-hydrology",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Hydrograph",
			Subtitle: "rainfall and unit discharge per timestep",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Scale: opts.Bool(true),
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:  "slider",
			Start: 0,
			End:   100,
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)

	xx := make([]string, len(dt))
	for i, t := range dt {
		xx[i] = t.Format("2006-01-02")
	}
	toLine := func(v []float64) []opts.LineData {
		d := make([]opts.LineData, len(v))
		for i, x := range v {
			d[i] = opts.LineData{Value: x}
		}
		return d
	}

	line.SetXAxis(xx).
		AddSeries("rainfall", toLine(rain)).
		AddSeries("simulated", toLine(sim))
	if obs != nil {
		line.AddSeries("observed", toLine(obs))
	}

	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf(" postpro.RenderHTML %v", err)
	}
	defer f.Close()
	if err := line.Render(f); err != nil {
		return fmt.Errorf(" postpro.RenderHTML %v", err)
	}
	return nil
}

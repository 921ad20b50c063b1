package charts

import (
	"context"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"wellpulse/internal/analytics"
	"wellpulse/internal/config"
	"wellpulse/internal/dataprocessing"
	"wellpulse/pkg/contracts/domain"
)

// PostureRadar renders each candidate's best posture improvement as one
// closed, filled polygon with a spoke per candidate. A candidate without a
// single usable posture reading aborts the figure.
func (r *Renderer) PostureRadar(ctx context.Context, table *dataprocessing.Table) error {
	summary, err := table.PostureMax()
	if err != nil {
		return err
	}
	ring, err := analytics.NewRing(summary.Candidates, summary.Values, domain.PostureScaleMax)
	if err != nil {
		return err
	}

	indicators := make([]*opts.Indicator, len(ring.Labels))
	for i, label := range ring.Labels {
		indicators[i] = &opts.Indicator{Name: label, Max: float32(ring.Max)}
	}

	radar := charts.NewRadar()
	radar.SetGlobalOptions(
		r.initOpts("Overall Posture Improvement"),
		charts.WithTitleOpts(opts.Title{Title: "Overall Posture Improvement"}),
		charts.WithRadarComponentOpts(opts.RadarComponent{
			Indicator: indicators,
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
			SplitLine: &opts.SplitLine{Show: opts.Bool(true)},
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	values := make([]float32, len(ring.Values))
	for i, v := range ring.Values {
		values[i] = float32(v)
	}
	radar.AddSeries("Max Posture Improvement", []opts.RadarData{
		{Name: "Max Posture Improvement", Value: values},
	},
		charts.WithAreaStyleOpts(opts.AreaStyle{Color: "orange", Opacity: 0.4}),
	)

	return r.writeFigure(ctx, config.FigurePostureRadar, radar)
}

package charts

import (
	"context"
	"log/slog"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"wellpulse/internal/analytics"
	"wellpulse/internal/config"
	"wellpulse/internal/dataprocessing"
	"wellpulse/pkg/contracts/domain"
)

// moodScaleMax is the top of the mood rating scale.
const moodScaleMax = 10

// MoodDistribution renders one smoothed density profile of mood ratings per
// candidate over the full rating scale. Candidates without any mood reading
// contribute no curve.
func (r *Renderer) MoodDistribution(ctx context.Context, table *dataprocessing.Table) error {
	perCandidate := table.MetricPoints(domain.MetricMood)

	line := charts.NewLine()
	line.SetGlobalOptions(
		r.initOpts("Distribution of Mood Levels"),
		charts.WithTitleOpts(opts.Title{Title: "Distribution of Mood Levels"}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: "Mood Levels",
			Max:  moodScaleMax,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Name: "Density",
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithColorsOpts(opts.Colors(paletteFor(mutedPalette, len(perCandidate)))),
	)

	for _, candidate := range perCandidate {
		if len(candidate.Points) == 0 {
			r.logger.WarnContext(ctx, "candidate has no mood readings, skipping distribution curve",
				slog.String("candidate", candidate.Candidate))
			continue
		}
		samples := make([]float64, len(candidate.Points))
		for i, p := range candidate.Points {
			samples[i] = p.Value
		}
		density, err := analytics.KernelDensity(samples, 0, moodScaleMax)
		if err != nil {
			return err
		}

		items := make([]opts.LineData, len(density.X))
		for i := range density.X {
			items[i] = opts.LineData{Value: []interface{}{density.X[i], density.Y[i]}}
		}
		line.AddSeries(candidate.Candidate, items,
			charts.WithLineChartOpts(opts.LineChart{
				Smooth:     opts.Bool(true),
				ShowSymbol: opts.Bool(false),
			}),
			charts.WithAreaStyleOpts(opts.AreaStyle{Opacity: 0.35}),
		)
	}

	return r.writeFigure(ctx, config.FigureMoodDistribution, line)
}

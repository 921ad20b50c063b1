package charts

import (
	"context"
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"wellpulse/internal/analytics"
	"wellpulse/internal/config"
	"wellpulse/internal/dataprocessing"
	"wellpulse/pkg/contracts/domain"
)

// seriesName labels a candidate's series the way the figures caption them.
func seriesName(candidate string) string {
	return "Candidate " + candidate
}

// alignedItems converts one aligned series into line data, leaving gaps
// where a candidate has no reading so lines break instead of bridging.
func alignedItems(series dataprocessing.CandidateSeries) []opts.LineData {
	items := make([]opts.LineData, len(series.Values))
	for i, sample := range series.Values {
		if !sample.Valid {
			items[i] = opts.LineData{Value: "-"}
			continue
		}
		items[i] = opts.LineData{Value: sample.Value}
	}
	return items
}

// MentalClarityTrend renders each candidate's clarity ratings as a marked
// line over the shared day axis.
func (r *Renderer) MentalClarityTrend(ctx context.Context, table *dataprocessing.Table) error {
	set := table.AlignedSeries(domain.MetricMentalClarity)

	line := charts.NewLine()
	line.SetGlobalOptions(
		r.initOpts("Mental Clarity Levels Over Time"),
		charts.WithTitleOpts(opts.Title{Title: "Mental Clarity Levels Over Time"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Name: "Day"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "Mental Clarity Levels"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithColorsOpts(opts.Colors(paletteFor(huslPalette, len(set.Series)))),
	)

	line.SetXAxis(dayLabels(set.Days))
	for _, series := range set.Series {
		line.AddSeries(seriesName(series.Candidate), alignedItems(series),
			charts.WithLineChartOpts(opts.LineChart{
				ShowSymbol: opts.Bool(true),
				Symbol:     "circle",
				SymbolSize: 8,
			}),
		)
	}

	return r.writeFigure(ctx, config.FigureClarityTrend, line)
}

// AnxietyTrend renders each candidate's anxiety ratings as a mid-step line
// over the shared day axis.
func (r *Renderer) AnxietyTrend(ctx context.Context, table *dataprocessing.Table) error {
	set := table.AlignedSeries(domain.MetricAnxiety)

	line := charts.NewLine()
	line.SetGlobalOptions(
		r.initOpts("Anxiety Levels Over Time"),
		charts.WithTitleOpts(opts.Title{Title: "Anxiety Levels Over Time"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Name: "Day"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "Anxiety Level"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithColorsOpts(opts.Colors(paletteFor(huslPalette, len(set.Series)))),
	)

	line.SetXAxis(dayLabels(set.Days))
	for _, series := range set.Series {
		line.AddSeries(seriesName(series.Candidate), alignedItems(series),
			charts.WithLineChartOpts(opts.LineChart{Step: "middle"}),
		)
	}

	return r.writeFigure(ctx, config.FigureAnxietyTrend, line)
}

// HeartRateTrend renders each candidate's heart-rate readings as a cubic
// spline evaluated on a dense grid. Only rows carrying a reading take part,
// so the table passed in should already be the heart-rate subset. A
// candidate with too few distinct days to fit aborts the figure.
func (r *Renderer) HeartRateTrend(ctx context.Context, heartRate *dataprocessing.Table) error {
	perCandidate := heartRate.MetricPoints(domain.MetricHeartRate)

	line := charts.NewLine()
	line.SetGlobalOptions(
		r.initOpts("Heart Rate Trend (Smooth Spline Plot)"),
		charts.WithTitleOpts(opts.Title{Title: "Heart Rate Trend (Smooth Spline Plot)"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: "Day"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "Max Heart Rate During Walk/Run"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithColorsOpts(opts.Colors(paletteFor(huslPalette, len(perCandidate)))),
	)

	for _, candidate := range perCandidate {
		xs := make([]float64, len(candidate.Points))
		ys := make([]float64, len(candidate.Points))
		for i, p := range candidate.Points {
			xs[i] = float64(p.Day)
			ys[i] = p.Value
		}
		curve, err := analytics.CubicSpline(xs, ys)
		if err != nil {
			return fmt.Errorf("heart-rate trend for candidate %s: %w", candidate.Candidate, err)
		}

		items := make([]opts.LineData, len(curve.X))
		for i := range curve.X {
			items[i] = opts.LineData{Value: []interface{}{curve.X[i], curve.Y[i]}}
		}
		line.AddSeries(seriesName(candidate.Candidate), items,
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
		)
	}

	return r.writeFigure(ctx, config.FigureHeartRateTrend, line)
}

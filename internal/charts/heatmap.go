package charts

import (
	"context"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"wellpulse/internal/config"
	"wellpulse/internal/dataprocessing"
	"wellpulse/pkg/contracts/domain"
)

// EnergyHeatmap renders the day-by-candidate energy grid with annotated
// cells. Days without a reading stay blank rather than plotting as zero.
func (r *Renderer) EnergyHeatmap(ctx context.Context, table *dataprocessing.Table) error {
	pivot := table.Pivot(domain.MetricEnergy)

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		r.initOpts("Energy Levels Over Time"),
		charts.WithTitleOpts(opts.Title{Title: "Energy Levels Over Time"}),
		charts.WithXAxisOpts(opts.XAxis{
			Type:      "category",
			Name:      "Candidate",
			Data:      pivot.Candidates,
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:      "category",
			Name:      "Day",
			Data:      dayLabels(pivot.Days),
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        10,
			InRange:    &opts.VisualMapInRange{Color: heatRamp},
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	data := make([]opts.HeatMapData, 0, len(pivot.Days)*len(pivot.Candidates))
	for dayIdx := range pivot.Days {
		for candIdx := range pivot.Candidates {
			cell := pivot.Cells[dayIdx][candIdx]
			if !cell.Valid {
				continue
			}
			value := math.Round(cell.Value*100) / 100
			data = append(data, opts.HeatMapData{Value: [3]interface{}{candIdx, dayIdx, value}})
		}
	}
	hm.AddSeries("energy", data,
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true)}),
	)

	return r.writeFigure(ctx, config.FigureEnergyHeatmap, hm)
}

package charts

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"wellpulse/internal/config"
	"wellpulse/internal/errors"
)

// huslPalette colors the per-candidate trend lines.
var huslPalette = []string{
	"#f77189", "#dc8932", "#ae9d31", "#77ab31", "#33b07a",
	"#36ada4", "#38a9c5", "#6e9bf4", "#cc7af4", "#f565cc",
}

// mutedPalette colors the mood distribution curves.
var mutedPalette = []string{
	"#4878d0", "#ee854a", "#6acc64", "#d65f5f", "#956cb4",
	"#8c613c", "#dc7ec0", "#797979", "#d5bb67", "#82c6e2",
}

// heatRamp is the low-to-high color ramp for the energy heatmap.
var heatRamp = []string{"#ffffd9", "#c7e9b4", "#41b6c4", "#225ea8", "#081d58"}

// Renderer writes the survey figures into the charts directory.
type Renderer struct {
	paths  *config.Paths
	width  string
	height string
	logger *slog.Logger
}

// NewRenderer creates a renderer sized from the charts configuration.
func NewRenderer(cfg *config.Config, paths *config.Paths, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	width := cfg.Charts.Width
	if width == "" {
		width = config.DefaultChartWidth
	}
	height := cfg.Charts.Height
	if height == "" {
		height = config.DefaultChartHeight
	}
	return &Renderer{
		paths:  paths,
		width:  width,
		height: height,
		logger: logger,
	}
}

// htmlChart is the part of the go-echarts chart API writeFigure needs.
type htmlChart interface {
	Render(w io.Writer) error
}

// writeFigure renders one chart into the charts directory. Filesystem
// problems are storage errors; chart generation problems are render errors.
func (r *Renderer) writeFigure(ctx context.Context, name string, chart htmlChart) error {
	path := r.paths.FigurePath(name)
	f, err := os.Create(path)
	if err != nil {
		return errors.NewStorageError(fmt.Sprintf("failed to create figure file %s", path), err)
	}
	if err := chart.Render(f); err != nil {
		f.Close()
		return errors.NewRenderError(fmt.Sprintf("failed to render figure %s", name), err)
	}
	if err := f.Close(); err != nil {
		return errors.NewStorageError(fmt.Sprintf("failed to finish writing figure %s", path), err)
	}

	r.logger.InfoContext(ctx, "rendered figure",
		slog.String("figure", name),
		slog.String("path", path))
	return nil
}

// initOpts sizes a chart and titles its HTML page.
func (r *Renderer) initOpts(pageTitle string) charts.GlobalOpts {
	return charts.WithInitializationOpts(opts.Initialization{
		PageTitle: pageTitle,
		Width:     r.width,
		Height:    r.height,
	})
}

// paletteFor cycles a base palette to cover n series.
func paletteFor(base []string, n int) []string {
	colors := make([]string, n)
	for i := range colors {
		colors[i] = base[i%len(base)]
	}
	return colors
}

// dayLabels formats day numbers as category axis labels.
func dayLabels(days []int) []string {
	labels := make([]string, len(days))
	for i, day := range days {
		labels[i] = strconv.Itoa(day)
	}
	return labels
}

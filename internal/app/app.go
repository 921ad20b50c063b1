package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"wellpulse/internal/charts"
	"wellpulse/internal/config"
	"wellpulse/internal/dataprocessing"
	"wellpulse/internal/exporter"
	"wellpulse/internal/infrastructure"
	"wellpulse/internal/validation"
)

// Application is the dependency container for one pipeline run.
type Application struct {
	Config *config.Config
	Paths  *config.Paths
	Logger *slog.Logger

	// Out receives the human-readable gains summary. Defaults to stdout.
	Out io.Writer

	validator  *validation.FileValidator
	parser     *dataprocessing.Parser
	summarizer *dataprocessing.Summarizer
	renderer   *charts.Renderer
	gains      *exporter.GainsExporter
}

// NewApplication creates a new application instance with dependency
// injection: configuration, the process-wide logger, resolved paths and
// every pipeline component, in that order.
func NewApplication() (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("Application starting",
		slog.String("name", config.AppName),
		slog.String("version", config.AppVersion))

	return newApplication(cfg, logger)
}

// NewApplicationWithConfig builds an application from an explicit
// configuration and logger, leaving the global logger untouched. Intended
// for tests and embedding.
func NewApplicationWithConfig(cfg *config.Config, logger *slog.Logger) (*Application, error) {
	if logger == nil {
		logger = slog.Default()
	}
	return newApplication(cfg, logger)
}

func newApplication(cfg *config.Config, logger *slog.Logger) (*Application, error) {
	paths := config.NewPaths(cfg)
	if err := paths.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to ensure directories: %w", err)
	}
	paths.LogPathResolution(logger)

	app := &Application{
		Config: cfg,
		Paths:  paths,
		Logger: logger,
		Out:    os.Stdout,
	}
	app.initializeServices()

	return app, nil
}

// initializeServices initializes all pipeline components in dependency order.
func (a *Application) initializeServices() {
	a.validator = validation.NewFileValidator(a.Logger)
	a.parser = dataprocessing.NewParser(a.Logger)
	a.summarizer = dataprocessing.NewSummarizer(a.Logger, dataprocessing.DefaultSummarizerConfig())
	a.renderer = charts.NewRenderer(a.Config, a.Paths, a.Logger)
	a.gains = exporter.NewGainsExporter(a.Paths, a.Logger)
}

// SetSurveySource points the run at a different workbook or sheet than the
// configured one. Empty values keep the configured source.
func (a *Application) SetSurveySource(file, sheet string) {
	if file != "" {
		a.Config.Survey.File = file
		a.Paths.SurveyFile = file
	}
	if sheet != "" {
		a.Config.Survey.Sheet = sheet
	}
}

// Run executes the pipeline end to end: validate inputs, load and clean the
// survey workbook, render the six figures, then summarize and export the
// percentage gains. The first failing stage aborts the run.
func (a *Application) Run(ctx context.Context) error {
	ctx = infrastructure.EnsureTraceID(ctx)
	started := time.Now()

	a.Logger.InfoContext(ctx, "survey pipeline starting",
		slog.String("survey_file", a.Paths.SurveyFile),
		slog.String("sheet", a.Config.Survey.Sheet))

	if err := a.validateInputs(ctx); err != nil {
		return err
	}

	table, err := a.parser.ParseWorkbook(ctx, a.Paths.SurveyFile, a.Config.Survey.Sheet)
	if err != nil {
		return err
	}

	if err := a.renderFigures(ctx, table); err != nil {
		return err
	}

	report := a.summarizer.Summarize(ctx, table)
	if err := a.gains.WriteText(a.Out, report); err != nil {
		return err
	}
	if err := a.gains.Export(ctx, report); err != nil {
		return err
	}

	a.Logger.InfoContext(ctx, "survey pipeline complete",
		slog.Int("observations", table.Len()),
		slog.Int("candidates", len(table.Candidates())),
		slog.Duration("elapsed", time.Since(started)))

	return nil
}

// validateInputs checks the workbook and the output directories before any
// stage runs, so a bad setup fails before parsing starts.
func (a *Application) validateInputs(ctx context.Context) error {
	if err := a.validator.ValidateExcelFile(a.Paths.SurveyFile); err != nil {
		return err
	}

	for _, dir := range []string{a.Paths.ChartsDir, a.Paths.ReportsDir} {
		if err := a.validator.ValidateOutputDirectory(dir); err != nil {
			return err
		}
	}

	a.Logger.DebugContext(ctx, "input validation passed")
	return nil
}

// figureStep names one figure render in the fixed output order.
type figureStep struct {
	name   string
	render func(context.Context, *dataprocessing.Table) error
}

// renderFigures renders all six figures in a fixed order. Rendering stops at
// the first error; figures already written stay on disk.
func (a *Application) renderFigures(ctx context.Context, table *dataprocessing.Table) error {
	heartRate := table.WithHeartRate()

	steps := []figureStep{
		{"energy_heatmap", a.renderer.EnergyHeatmap},
		{"mood_distribution", a.renderer.MoodDistribution},
		{"mental_clarity_trend", a.renderer.MentalClarityTrend},
		{"anxiety_trend", a.renderer.AnxietyTrend},
		{"heart_rate_trend", func(ctx context.Context, _ *dataprocessing.Table) error {
			return a.renderer.HeartRateTrend(ctx, heartRate)
		}},
		{"posture_radar", a.renderer.PostureRadar},
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("figure rendering cancelled: %w", err)
		}
		if err := step.render(ctx, table); err != nil {
			return fmt.Errorf("render %s: %w", step.name, err)
		}
	}

	a.Logger.InfoContext(ctx, "figures rendered",
		slog.Int("count", len(steps)),
		slog.String("charts_dir", a.Paths.ChartsDir))

	return nil
}

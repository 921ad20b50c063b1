package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Paths centralizes every filesystem location the pipeline touches.
// All relative values resolve against the working directory, so the tool
// behaves the same whether launched directly or from a task runner.
type Paths struct {
	SurveyFile string
	ChartsDir  string
	ReportsDir string
	LogsDir    string
}

// NewPaths derives the path set from configuration.
func NewPaths(cfg *Config) *Paths {
	logsDir := filepath.Dir(cfg.Logging.FilePath)
	if logsDir == "." {
		logsDir = DefaultLogsDir
	}
	return &Paths{
		SurveyFile: cfg.Survey.File,
		ChartsDir:  cfg.Charts.Dir,
		ReportsDir: cfg.Reports.Dir,
		LogsDir:    logsDir,
	}
}

// EnsureDirectories creates every output directory the run writes into.
// The survey file's directory is deliberately not created: a missing input
// tree is a load error, not something to paper over.
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.ChartsDir, p.ReportsDir, p.LogsDir} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// FigurePath returns the output path for a chart file.
func (p *Paths) FigurePath(name string) string {
	return filepath.Join(p.ChartsDir, name)
}

// ReportPath returns the output path for a summary export.
func (p *Paths) ReportPath(name string) string {
	return filepath.Join(p.ReportsDir, name)
}

// LogPathResolution logs the resolved locations at startup for debugging.
func (p *Paths) LogPathResolution(logger *slog.Logger) {
	logger.Debug("resolved paths",
		slog.String("survey_file", p.SurveyFile),
		slog.String("charts_dir", p.ChartsDir),
		slog.String("reports_dir", p.ReportsDir),
		slog.String("logs_dir", p.LogsDir))
}

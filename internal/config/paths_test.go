package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPathsFromConfig(t *testing.T) {
	cfg := Default()
	cfg.Survey.File = "data/pilot.xlsx"
	cfg.Charts.Dir = "out/charts"
	cfg.Reports.Dir = "out/reports"
	cfg.Logging.FilePath = "out/logs/run.log"

	paths := NewPaths(cfg)

	assert.Equal(t, "data/pilot.xlsx", paths.SurveyFile)
	assert.Equal(t, "out/charts", paths.ChartsDir)
	assert.Equal(t, "out/reports", paths.ReportsDir)
	assert.Equal(t, "out/logs", paths.LogsDir)
}

func TestNewPathsBareLogFile(t *testing.T) {
	cfg := Default()
	cfg.Logging.FilePath = "run.log"

	paths := NewPaths(cfg)
	assert.Equal(t, DefaultLogsDir, paths.LogsDir)
}

func TestEnsureDirectories(t *testing.T) {
	base := t.TempDir()
	paths := &Paths{
		SurveyFile: filepath.Join(base, "data", "survey.xlsx"),
		ChartsDir:  filepath.Join(base, "charts"),
		ReportsDir: filepath.Join(base, "reports"),
		LogsDir:    filepath.Join(base, "logs"),
	}

	require.NoError(t, paths.EnsureDirectories())

	for _, dir := range []string{paths.ChartsDir, paths.ReportsDir, paths.LogsDir} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	// The input directory is not created.
	_, err := os.Stat(filepath.Join(base, "data"))
	assert.True(t, os.IsNotExist(err))

	// Idempotent on existing directories.
	assert.NoError(t, paths.EnsureDirectories())
}

func TestFigureAndReportPaths(t *testing.T) {
	paths := &Paths{ChartsDir: "charts", ReportsDir: "reports"}

	assert.Equal(t, filepath.Join("charts", FigureEnergyHeatmap), paths.FigurePath(FigureEnergyHeatmap))
	assert.Equal(t, filepath.Join("reports", GainsCSVFile), paths.ReportPath(GainsCSVFile))
}

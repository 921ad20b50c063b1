package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir switches the working directory for one test and restores it after.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "data/DataCollection.xlsx", cfg.Survey.File)
	assert.Equal(t, "Survey Raw", cfg.Survey.Sheet)
	assert.Equal(t, "charts", cfg.Charts.Dir)
	assert.Equal(t, "reports", cfg.Reports.Dir)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "console", cfg.Logging.Output)

	assert.NoError(t, cfg.validate(), "defaults must pass validation")
}

func TestLoadUsesDefaultsWithoutSources(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadEnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("WELLPULSE_SURVEY_FILE", "fixtures/survey.xlsx")
	t.Setenv("WELLPULSE_SURVEY_SHEET", "Pilot Raw")
	t.Setenv("WELLPULSE_CHARTS_DIR", "out/figures")
	t.Setenv("WELLPULSE_LOGGING_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "fixtures/survey.xlsx", cfg.Survey.File)
	assert.Equal(t, "Pilot Raw", cfg.Survey.Sheet)
	assert.Equal(t, "out/figures", cfg.Charts.Dir)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Untouched fields keep their defaults.
	assert.Equal(t, "reports", cfg.Reports.Dir)
}

func TestLoadYAMLFileOverlay(t *testing.T) {
	dir := t.TempDir()
	yamlContent := []byte(`survey:
  file: archive/pilot.xlsx
logging:
  level: warn
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yamlContent, 0644))
	chdir(t, dir)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "archive/pilot.xlsx", cfg.Survey.File)
	assert.Equal(t, "warn", cfg.Logging.Level)
	// Fields absent from the file keep their defaults.
	assert.Equal(t, "Survey Raw", cfg.Survey.Sheet)
}

func TestLoadEnvBeatsFile(t *testing.T) {
	dir := t.TempDir()
	yamlContent := []byte(`charts:
  dir: from_file
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yamlContent, 0644))
	chdir(t, dir)
	t.Setenv("WELLPULSE_CHARTS_DIR", "from_env")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from_env", cfg.Charts.Dir)
}

func TestLoadNormalizesLoggingFields(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("WELLPULSE_LOGGING_LEVEL", "  WARN ")
	t.Setenv("WELLPULSE_LOGGING_FORMAT", "Text")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{
			name:   "empty survey file",
			mutate: func(c *Config) { c.Survey.File = "" },
		},
		{
			name:   "empty sheet name",
			mutate: func(c *Config) { c.Survey.Sheet = "" },
		},
		{
			name:   "unknown log level",
			mutate: func(c *Config) { c.Logging.Level = "verbose" },
		},
		{
			name:   "unknown log format",
			mutate: func(c *Config) { c.Logging.Format = "xml" },
		},
		{
			name:   "unknown log output",
			mutate: func(c *Config) { c.Logging.Output = "syslog" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.validate())
		})
	}
}

func TestFigureFiles(t *testing.T) {
	files := FigureFiles()
	require.Len(t, files, 6)
	assert.Equal(t, "energy_heatmap.html", files[0])
	assert.Equal(t, "posture_radar.html", files[5])
}

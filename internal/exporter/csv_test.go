package exporter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellpulse/internal/config"
)

func newTestPaths(t *testing.T) *config.Paths {
	t.Helper()

	dir := t.TempDir()
	cfg := config.Default()
	cfg.Charts.Dir = filepath.Join(dir, "charts")
	cfg.Reports.Dir = filepath.Join(dir, "reports")
	cfg.Logging.FilePath = filepath.Join(dir, "logs", "test.log")
	return config.NewPaths(cfg)
}

func TestWriteSimpleCSV(t *testing.T) {
	paths := newTestPaths(t)
	writer := NewCSVWriter(paths)

	err := writer.WriteSimpleCSV("metrics.csv",
		[]string{"Metric", "Value"},
		[][]string{{"Energy Level Increase (%)", "41.50"}, {"Pain Reduction (%)", "33.33"}})
	require.NoError(t, err)

	content, err := os.ReadFile(paths.ReportPath("metrics.csv"))
	require.NoError(t, err)

	// UTF-8 BOM first, then the header row.
	assert.True(t, strings.HasPrefix(string(content), "\xef\xbb\xbf"))
	body := strings.TrimPrefix(string(content), "\xef\xbb\xbf")
	lines := strings.Split(strings.TrimSpace(body), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Metric,Value", lines[0])
	assert.Equal(t, "Energy Level Increase (%),41.50", lines[1])
}

func TestWriteCSVWithoutBOM(t *testing.T) {
	paths := newTestPaths(t)
	writer := NewCSVWriter(paths)

	err := writer.WriteCSV("plain.csv", WriteOptions{
		Headers: []string{"Metric", "Value"},
		Records: [][]string{{"Mood Improvement (%)", "20.00"}},
	})
	require.NoError(t, err)

	content, err := os.ReadFile(paths.ReportPath("plain.csv"))
	require.NoError(t, err)
	assert.False(t, strings.HasPrefix(string(content), "\xef\xbb\xbf"))
	assert.True(t, strings.HasPrefix(string(content), "Metric,Value"))
}

func TestWriteCSVCreatesDirectories(t *testing.T) {
	paths := newTestPaths(t)
	writer := NewCSVWriter(paths)

	err := writer.WriteCSV(filepath.Join("archive", "gains.csv"), WriteOptions{
		Records: [][]string{{"a", "b"}},
	})
	require.NoError(t, err)
	assert.FileExists(t, paths.ReportPath(filepath.Join("archive", "gains.csv")))
}

func TestWriteCSVAbsolutePath(t *testing.T) {
	paths := newTestPaths(t)
	writer := NewCSVWriter(paths)

	target := filepath.Join(t.TempDir(), "out.csv")
	err := writer.WriteCSV(target, WriteOptions{Records: [][]string{{"x"}}})
	require.NoError(t, err)
	assert.FileExists(t, target)
}

func TestWriteCSVQuotesFieldsWithCommas(t *testing.T) {
	paths := newTestPaths(t)
	writer := NewCSVWriter(paths)

	err := writer.WriteCSV("quoted.csv", WriteOptions{
		Records: [][]string{{"a,b", "c"}},
	})
	require.NoError(t, err)

	content, err := os.ReadFile(paths.ReportPath("quoted.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(content), `"a,b"`)
}

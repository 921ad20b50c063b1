package charts

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellpulse/internal/config"
	"wellpulse/internal/dataprocessing"
	"wellpulse/internal/errors"
	"wellpulse/pkg/contracts/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRenderer(t *testing.T) (*Renderer, *config.Paths) {
	t.Helper()

	dir := t.TempDir()
	cfg := config.Default()
	cfg.Charts.Dir = filepath.Join(dir, "charts")
	cfg.Reports.Dir = filepath.Join(dir, "reports")
	cfg.Logging.FilePath = filepath.Join(dir, "logs", "test.log")

	paths := config.NewPaths(cfg)
	require.NoError(t, paths.EnsureDirectories())

	return NewRenderer(cfg, paths, discardLogger()), paths
}

func surveyObs(candidate string, day int, energy, mood, clarity, anxiety, heartRate float64, posture domain.Sample) domain.Observation {
	return domain.Observation{
		Candidate:     candidate,
		Day:           day,
		Energy:        domain.NewSample(energy),
		Mood:          domain.NewSample(mood),
		MentalClarity: domain.NewSample(clarity),
		Anxiety:       domain.NewSample(anxiety),
		HeartRate:     domain.NewSample(heartRate),
		Posture:       posture,
	}
}

// fixtureTable covers two candidates over five days with enough heart-rate
// readings for a spline fit.
func fixtureTable() *dataprocessing.Table {
	return &dataprocessing.Table{Observations: []domain.Observation{
		surveyObs("Alice", 1, 4, 5, 5, 6, 152, domain.NewSample(1)),
		surveyObs("Bob", 1, 5, 4, 4, 7, 160, domain.MissingSample()),
		surveyObs("Alice", 2, 5, 5, 6, 5, 150, domain.MissingSample()),
		surveyObs("Bob", 2, 5, 5, 5, 6, 158, domain.NewSample(3)),
		surveyObs("Alice", 3, 6, 6, 6, 5, 147, domain.NewSample(3)),
		surveyObs("Bob", 3, 6, 5, 5, 5, 155, domain.MissingSample()),
		surveyObs("Alice", 4, 6, 7, 7, 4, 144, domain.MissingSample()),
		surveyObs("Bob", 4, 7, 6, 6, 4, 151, domain.NewSample(3)),
		surveyObs("Alice", 5, 7, 7, 8, 3, 140, domain.NewSample(3)),
		surveyObs("Bob", 5, 8, 7, 7, 3, 148, domain.NewSample(5)),
	}}
}

func readFigure(t *testing.T, paths *config.Paths, name string) string {
	t.Helper()
	content, err := os.ReadFile(paths.FigurePath(name))
	require.NoError(t, err)
	return string(content)
}

func TestEnergyHeatmap(t *testing.T) {
	renderer, paths := newTestRenderer(t)

	err := renderer.EnergyHeatmap(context.Background(), fixtureTable())
	require.NoError(t, err)

	content := readFigure(t, paths, config.FigureEnergyHeatmap)
	assert.Contains(t, content, "Energy Levels Over Time")
	assert.Contains(t, content, "Alice")
	assert.Contains(t, content, "Bob")
}

func TestEnergyHeatmapSkipsMissingCells(t *testing.T) {
	renderer, paths := newTestRenderer(t)

	table := &dataprocessing.Table{Observations: []domain.Observation{
		{Candidate: "Alice", Day: 1, Energy: domain.NewSample(4)},
		{Candidate: "Alice", Day: 2, Energy: domain.MissingSample()},
		{Candidate: "Bob", Day: 1, Energy: domain.NewSample(9)},
	}}

	err := renderer.EnergyHeatmap(context.Background(), table)
	require.NoError(t, err)

	// Two valid cells out of four possible.
	content := readFigure(t, paths, config.FigureEnergyHeatmap)
	assert.Equal(t, 2, strings.Count(content, `"value":[`))
}

func TestMoodDistribution(t *testing.T) {
	renderer, paths := newTestRenderer(t)

	err := renderer.MoodDistribution(context.Background(), fixtureTable())
	require.NoError(t, err)

	content := readFigure(t, paths, config.FigureMoodDistribution)
	assert.Contains(t, content, "Distribution of Mood Levels")
	assert.Contains(t, content, "Alice")
}

func TestMoodDistributionSkipsEmptyCandidates(t *testing.T) {
	renderer, paths := newTestRenderer(t)

	table := &dataprocessing.Table{Observations: []domain.Observation{
		{Candidate: "Alice", Day: 1, Mood: domain.NewSample(5)},
		{Candidate: "Alice", Day: 2, Mood: domain.NewSample(6)},
		{Candidate: "Ghost", Day: 1, Mood: domain.MissingSample()},
	}}

	err := renderer.MoodDistribution(context.Background(), table)
	require.NoError(t, err)

	content := readFigure(t, paths, config.FigureMoodDistribution)
	assert.Contains(t, content, "Alice")
}

func TestMentalClarityTrend(t *testing.T) {
	renderer, paths := newTestRenderer(t)

	err := renderer.MentalClarityTrend(context.Background(), fixtureTable())
	require.NoError(t, err)

	content := readFigure(t, paths, config.FigureClarityTrend)
	assert.Contains(t, content, "Mental Clarity Levels Over Time")
	assert.Contains(t, content, "Candidate Alice")
	assert.Contains(t, content, "Candidate Bob")
}

func TestAnxietyTrendUsesMidSteps(t *testing.T) {
	renderer, paths := newTestRenderer(t)

	err := renderer.AnxietyTrend(context.Background(), fixtureTable())
	require.NoError(t, err)

	content := readFigure(t, paths, config.FigureAnxietyTrend)
	assert.Contains(t, content, "Anxiety Levels Over Time")
	assert.Contains(t, content, "middle")
}

func TestHeartRateTrend(t *testing.T) {
	renderer, paths := newTestRenderer(t)

	table := fixtureTable().WithHeartRate()
	err := renderer.HeartRateTrend(context.Background(), table)
	require.NoError(t, err)

	content := readFigure(t, paths, config.FigureHeartRateTrend)
	assert.Contains(t, content, "Heart Rate Trend (Smooth Spline Plot)")
	assert.Contains(t, content, "Candidate Alice")
}

func TestHeartRateTrendNeedsEnoughDays(t *testing.T) {
	renderer, paths := newTestRenderer(t)

	table := &dataprocessing.Table{Observations: []domain.Observation{
		{Candidate: "Alice", Day: 1, HeartRate: domain.NewSample(150)},
		{Candidate: "Alice", Day: 2, HeartRate: domain.NewSample(148)},
		{Candidate: "Alice", Day: 3, HeartRate: domain.NewSample(145)},
	}}

	err := renderer.HeartRateTrend(context.Background(), table.WithHeartRate())
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeInsufficientData))
	assert.Contains(t, err.Error(), "Alice")
	assert.NoFileExists(t, paths.FigurePath(config.FigureHeartRateTrend))
}

func TestPostureRadar(t *testing.T) {
	renderer, paths := newTestRenderer(t)

	err := renderer.PostureRadar(context.Background(), fixtureTable())
	require.NoError(t, err)

	content := readFigure(t, paths, config.FigurePostureRadar)
	assert.Contains(t, content, "Overall Posture Improvement")
	assert.Contains(t, content, "Alice")
	assert.Contains(t, content, "Bob")
}

func TestPostureRadarNeedsAReadingPerCandidate(t *testing.T) {
	renderer, _ := newTestRenderer(t)

	table := &dataprocessing.Table{Observations: []domain.Observation{
		{Candidate: "Alice", Day: 1, Posture: domain.NewSample(3)},
		{Candidate: "Bob", Day: 1, Posture: domain.MissingSample()},
	}}

	err := renderer.PostureRadar(context.Background(), table)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeInsufficientData))
}

func TestWriteFigureMissingDirIsStorageError(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Charts.Dir = filepath.Join(dir, "does", "not", "exist")
	cfg.Reports.Dir = filepath.Join(dir, "reports")
	cfg.Logging.FilePath = filepath.Join(dir, "logs", "test.log")

	renderer := NewRenderer(cfg, config.NewPaths(cfg), discardLogger())
	err := renderer.EnergyHeatmap(context.Background(), fixtureTable())
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeStorage))
}

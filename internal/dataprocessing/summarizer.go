package dataprocessing

import (
	"context"
	"log/slog"
	"math"

	"wellpulse/pkg/contracts/domain"
)

// SummarizerConfig holds configuration options for the Summarizer.
type SummarizerConfig struct {
	PostureBaseline float64 // posture value treated as "no improvement"
	PostureScaleMax float64 // top of the posture improvement scale
}

// DefaultSummarizerConfig returns the configuration matching the survey's
// posture scale.
func DefaultSummarizerConfig() SummarizerConfig {
	return SummarizerConfig{
		PostureBaseline: domain.PostureBaseline,
		PostureScaleMax: domain.PostureScaleMax,
	}
}

// Summarizer computes the ordered percentage-gain report from the cleaned
// observation table. Each gain is the mean over candidates of the change
// between a candidate's first and last recorded value.
type Summarizer struct {
	logger          *slog.Logger
	postureBaseline float64
	postureScaleMax float64
}

// NewSummarizer creates a summarizer with the given configuration.
func NewSummarizer(logger *slog.Logger, config SummarizerConfig) *Summarizer {
	if logger == nil {
		logger = slog.Default()
	}
	if config.PostureScaleMax <= config.PostureBaseline {
		config = DefaultSummarizerConfig()
	}
	return &Summarizer{
		logger:          logger,
		postureBaseline: config.PostureBaseline,
		postureScaleMax: config.PostureScaleMax,
	}
}

type gainDirection int

const (
	directionIncrease gainDirection = iota
	directionReduction
)

// Summarize computes all seven percentage gains in report order. Heart-rate
// gains only consider rows that carry a heart-rate reading. Candidates
// without usable values for a metric, or with a zero first value, are
// excluded from that metric's mean; a metric no candidate qualifies for
// reports NaN.
func (s *Summarizer) Summarize(ctx context.Context, table *Table) *domain.GainReport {
	report := &domain.GainReport{}

	heartRate := table.WithHeartRate()
	report.Add(domain.GainHeartRateReduction, s.meanFirstLastChange(ctx, heartRate, domain.MetricHeartRate, directionReduction))
	report.Add(domain.GainEnergyIncrease, s.meanFirstLastChange(ctx, table, domain.MetricEnergy, directionIncrease))
	report.Add(domain.GainMentalClarityIncrease, s.meanFirstLastChange(ctx, table, domain.MetricMentalClarity, directionIncrease))
	report.Add(domain.GainAnxietyReduction, s.meanFirstLastChange(ctx, table, domain.MetricAnxiety, directionReduction))
	report.Add(domain.GainPainReduction, s.meanFirstLastChange(ctx, table, domain.MetricPain, directionReduction))
	report.Add(domain.GainPostureImprovement, s.meanPostureGain(ctx, table))
	report.Add(domain.GainMoodImprovement, s.meanFirstLastChange(ctx, table, domain.MetricMood, directionIncrease))

	s.logger.InfoContext(ctx, "computed percentage gains",
		slog.Int("metrics", report.Len()),
		slog.Int("candidates", len(table.Candidates())))

	return report
}

// meanFirstLastChange averages the first-to-last percentage change of one
// metric across candidates. Reductions flip the sign so that a drop reads
// as a positive gain.
func (s *Summarizer) meanFirstLastChange(ctx context.Context, table *Table, metric domain.Metric, direction gainDirection) float64 {
	names, groups := table.ByCandidate()

	var sum float64
	var n int
	for _, name := range names {
		first, last, ok := firstLastValid(groups[name], metric)
		if !ok {
			s.logger.WarnContext(ctx, "candidate has no usable values for metric, excluding from gain",
				slog.String("candidate", name),
				slog.String("metric", string(metric)))
			continue
		}
		if first == 0 {
			s.logger.WarnContext(ctx, "zero first value leaves percentage change undefined, excluding candidate",
				slog.String("candidate", name),
				slog.String("metric", string(metric)))
			continue
		}
		change := (last - first) / first * 100
		if direction == directionReduction {
			change = (first - last) / first * 100
		}
		sum += change
		n++
	}

	if n == 0 {
		s.logger.WarnContext(ctx, "no candidate had usable values for metric, gain is undefined",
			slog.String("metric", string(metric)))
		return math.NaN()
	}
	return sum / float64(n)
}

// meanPostureGain averages each candidate's best posture improvement as a
// share of the posture scale.
func (s *Summarizer) meanPostureGain(ctx context.Context, table *Table) float64 {
	names, groups := table.ByCandidate()
	span := s.postureScaleMax - s.postureBaseline

	var sum float64
	var n int
	for _, name := range names {
		best, ok := maxValidPosture(groups[name])
		if !ok {
			s.logger.WarnContext(ctx, "candidate has no usable posture readings, excluding from gain",
				slog.String("candidate", name))
			continue
		}
		sum += (best - s.postureBaseline) / span * 100
		n++
	}

	if n == 0 {
		s.logger.WarnContext(ctx, "no candidate had usable posture readings, gain is undefined")
		return math.NaN()
	}
	return sum / float64(n)
}

// firstLastValid finds the first and last valid sample of a metric within
// one candidate's observations, in sheet row order.
func firstLastValid(observations []domain.Observation, metric domain.Metric) (first, last float64, ok bool) {
	for _, obs := range observations {
		s := obs.Sample(metric)
		if s.Valid {
			first = s.Value
			ok = true
			break
		}
	}
	if !ok {
		return 0, 0, false
	}
	for i := len(observations) - 1; i >= 0; i-- {
		s := observations[i].Sample(metric)
		if s.Valid {
			last = s.Value
			break
		}
	}
	return first, last, true
}

func maxValidPosture(observations []domain.Observation) (float64, bool) {
	best := math.Inf(-1)
	found := false
	for _, obs := range observations {
		if !obs.Posture.Valid {
			continue
		}
		if obs.Posture.Value > best {
			best = obs.Posture.Value
		}
		found = true
	}
	if !found {
		return 0, false
	}
	return best, true
}

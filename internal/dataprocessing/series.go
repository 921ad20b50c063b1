package dataprocessing

import (
	"fmt"
	"sort"

	"wellpulse/internal/errors"
	"wellpulse/pkg/contracts/domain"
)

// Pivot is a day-by-candidate grid of averaged metric values. Rows follow
// Days ascending, columns follow Candidates in first-seen order. Cells with
// no valid sample stay missing.
type Pivot struct {
	Metric     domain.Metric
	Days       []int
	Candidates []string
	Cells      [][]domain.Sample // Cells[dayIdx][candidateIdx]
}

// Pivot aggregates one metric into a day-by-candidate grid. Multiple valid
// samples for the same cell are averaged.
func (t *Table) Pivot(metric domain.Metric) *Pivot {
	days := t.Days()
	candidates := t.Candidates()

	dayIndex := make(map[int]int, len(days))
	for i, d := range days {
		dayIndex[d] = i
	}
	candidateIndex := make(map[string]int, len(candidates))
	for i, c := range candidates {
		candidateIndex[c] = i
	}

	type agg struct {
		sum float64
		n   int
	}
	grid := make([][]agg, len(days))
	for i := range grid {
		grid[i] = make([]agg, len(candidates))
	}
	for _, obs := range t.Observations {
		s := obs.Sample(metric)
		if !s.Valid {
			continue
		}
		cell := &grid[dayIndex[obs.Day]][candidateIndex[obs.Candidate]]
		cell.sum += s.Value
		cell.n++
	}

	cells := make([][]domain.Sample, len(days))
	for i := range grid {
		cells[i] = make([]domain.Sample, len(candidates))
		for j, cell := range grid[i] {
			if cell.n == 0 {
				cells[i][j] = domain.MissingSample()
				continue
			}
			cells[i][j] = domain.NewSample(cell.sum / float64(cell.n))
		}
	}

	return &Pivot{Metric: metric, Days: days, Candidates: candidates, Cells: cells}
}

// CandidateSeries is one candidate's values aligned to a shared day axis.
// Values[i] corresponds to the owning SeriesSet's Days[i].
type CandidateSeries struct {
	Candidate string
	Values    []domain.Sample
}

// SeriesSet aligns every candidate's samples for one metric on the shared
// day axis, so chart series can be plotted against the same categories.
type SeriesSet struct {
	Metric domain.Metric
	Days   []int
	Series []CandidateSeries
}

// AlignedSeries builds the shared-axis view of one metric. Days a candidate
// has no valid sample for stay missing in that candidate's series; repeated
// samples for the same day are averaged.
func (t *Table) AlignedSeries(metric domain.Metric) *SeriesSet {
	pivot := t.Pivot(metric)

	series := make([]CandidateSeries, len(pivot.Candidates))
	for j, candidate := range pivot.Candidates {
		values := make([]domain.Sample, len(pivot.Days))
		for i := range pivot.Days {
			values[i] = pivot.Cells[i][j]
		}
		series[j] = CandidateSeries{Candidate: candidate, Values: values}
	}

	return &SeriesSet{Metric: metric, Days: pivot.Days, Series: series}
}

// Point is one (day, value) pair.
type Point struct {
	Day   int
	Value float64
}

// CandidatePoints lists one candidate's present samples for a metric in
// ascending day order.
type CandidatePoints struct {
	Candidate string
	Points    []Point
}

// MetricPoints returns, per candidate in first-seen order, the valid
// samples of one metric sorted by day. Rows sharing a day keep their sheet
// order; consumers that need distinct days must handle duplicates.
func (t *Table) MetricPoints(metric domain.Metric) []CandidatePoints {
	names, groups := t.ByCandidate()

	result := make([]CandidatePoints, 0, len(names))
	for _, name := range names {
		var points []Point
		for _, obs := range groups[name] {
			s := obs.Sample(metric)
			if !s.Valid {
				continue
			}
			points = append(points, Point{Day: obs.Day, Value: s.Value})
		}
		sort.SliceStable(points, func(i, j int) bool {
			return points[i].Day < points[j].Day
		})
		result = append(result, CandidatePoints{Candidate: name, Points: points})
	}
	return result
}

// PostureSummary holds the best recorded posture improvement per candidate,
// candidates in first-seen order.
type PostureSummary struct {
	Candidates []string
	Values     []float64
}

// PostureMax computes each candidate's maximum mapped posture value. A
// candidate with no usable posture reading at all makes the summary
// uncomputable, which is an insufficient-data error.
func (t *Table) PostureMax() (*PostureSummary, error) {
	names, groups := t.ByCandidate()

	summary := &PostureSummary{
		Candidates: names,
		Values:     make([]float64, 0, len(names)),
	}
	for _, name := range names {
		best := domain.MissingSample()
		for _, obs := range groups[name] {
			if !obs.Posture.Valid {
				continue
			}
			if !best.Valid || obs.Posture.Value > best.Value {
				best = obs.Posture
			}
		}
		if !best.Valid {
			return nil, errors.NewInsufficientDataError(
				fmt.Sprintf("candidate %q has no usable posture readings", name))
		}
		summary.Values = append(summary.Values, best.Value)
	}
	return summary, nil
}

package dataprocessing

import (
	"sort"

	"wellpulse/pkg/contracts/domain"
)

// Table is the cleaned observation table together with its cleaning audit.
// Observations keep the sheet's row order; every view derived from the
// table preserves that order within each candidate.
type Table struct {
	Observations []domain.Observation
	Audit        CleaningAudit
}

// Len returns the number of observations in the table.
func (t *Table) Len() int {
	return len(t.Observations)
}

// Candidates returns the candidate names in first-seen order.
func (t *Table) Candidates() []string {
	seen := make(map[string]bool, 8)
	var names []string
	for _, obs := range t.Observations {
		if !seen[obs.Candidate] {
			seen[obs.Candidate] = true
			names = append(names, obs.Candidate)
		}
	}
	return names
}

// Days returns the distinct day values in ascending order.
func (t *Table) Days() []int {
	seen := make(map[int]bool, 16)
	var days []int
	for _, obs := range t.Observations {
		if !seen[obs.Day] {
			seen[obs.Day] = true
			days = append(days, obs.Day)
		}
	}
	sort.Ints(days)
	return days
}

// ByCandidate groups observations per candidate. The returned names are in
// first-seen order and each group keeps its sheet row order.
func (t *Table) ByCandidate() ([]string, map[string][]domain.Observation) {
	names := t.Candidates()
	groups := make(map[string][]domain.Observation, len(names))
	for _, obs := range t.Observations {
		groups[obs.Candidate] = append(groups[obs.Candidate], obs)
	}
	return names, groups
}

// WithHeartRate returns the subset of observations that carry a heart-rate
// reading. The receiver is untouched; the subset keeps row order and shares
// the original audit.
func (t *Table) WithHeartRate() *Table {
	kept := make([]domain.Observation, 0, len(t.Observations))
	for _, obs := range t.Observations {
		if obs.HeartRate.Valid {
			kept = append(kept, obs)
		}
	}
	return &Table{Observations: kept, Audit: t.Audit}
}

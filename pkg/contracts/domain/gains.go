package domain

import (
	"fmt"
	"strings"
)

// GainMetric labels one entry of the percentage-gain summary. The labels
// carry the percent suffix because they are printed and exported verbatim.
type GainMetric string

const (
	GainHeartRateReduction    GainMetric = "Heart Rate Reduction (%)"
	GainEnergyIncrease        GainMetric = "Energy Level Increase (%)"
	GainMentalClarityIncrease GainMetric = "Mental Clarity Increase (%)"
	GainAnxietyReduction      GainMetric = "Anxiety Reduction (%)"
	GainPainReduction         GainMetric = "Pain Reduction (%)"
	GainPostureImprovement    GainMetric = "Posture Improvement (%)"
	GainMoodImprovement       GainMetric = "Mood Improvement (%)"
)

// GainOrder is the fixed declaration order of the summary entries. Reports
// iterate in this order regardless of computation order.
var GainOrder = []GainMetric{
	GainHeartRateReduction,
	GainEnergyIncrease,
	GainMentalClarityIncrease,
	GainAnxietyReduction,
	GainPainReduction,
	GainPostureImprovement,
	GainMoodImprovement,
}

// GainEntry pairs a metric label with its mean percentage across candidates.
type GainEntry struct {
	Metric GainMetric `json:"metric"`
	Value  float64    `json:"value"`
}

// GainReport is the ordered percentage-gain summary. Entries keep insertion
// order; the zero value is ready to use.
type GainReport struct {
	entries []GainEntry
}

// Add appends an entry, replacing an existing entry with the same label.
func (r *GainReport) Add(m GainMetric, v float64) {
	for i := range r.entries {
		if r.entries[i].Metric == m {
			r.entries[i].Value = v
			return
		}
	}
	r.entries = append(r.entries, GainEntry{Metric: m, Value: v})
}

// Entries returns the entries in insertion order. The slice is a copy.
func (r *GainReport) Entries() []GainEntry {
	out := make([]GainEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Value looks up the percentage for a label.
func (r *GainReport) Value(m GainMetric) (float64, bool) {
	for _, e := range r.entries {
		if e.Metric == m {
			return e.Value, true
		}
	}
	return 0, false
}

// Len returns the number of entries.
func (r *GainReport) Len() int {
	return len(r.entries)
}

// String renders the report as a single mapping line for logs.
func (r *GainReport) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, e := range r.entries {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %.2f", e.Metric, e.Value)
	}
	b.WriteString("}")
	return b.String()
}

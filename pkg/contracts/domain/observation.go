// Package domain defines the core survey types shared across the pipeline.
package domain

import (
	"math"
	"strings"
)

// Sample is a single numeric survey cell. Valid reports whether the source
// cell held a usable number; every consumer states its own policy for
// missing samples instead of inheriting one.
type Sample struct {
	Value float64
	Valid bool
}

// NewSample returns a present sample holding v.
func NewSample(v float64) Sample {
	return Sample{Value: v, Valid: true}
}

// MissingSample returns the missing marker.
func MissingSample() Sample {
	return Sample{}
}

// Float returns the sample value, or NaN when the sample is missing.
func (s Sample) Float() float64 {
	if !s.Valid {
		return math.NaN()
	}
	return s.Value
}

// Observation is one survey row: a candidate's recorded metrics for one day.
type Observation struct {
	Candidate string
	Day       int

	Energy        Sample
	Mood          Sample
	MentalClarity Sample
	Anxiety       Sample
	Pain          Sample
	HeartRate     Sample

	// PostureRaw keeps the original category text; Posture holds its
	// mapped numeric value, missing when the category is empty or unknown.
	PostureRaw string
	Posture    Sample
}

// Metric identifies one numeric survey series.
type Metric string

const (
	MetricEnergy        Metric = "energy"
	MetricMood          Metric = "mood"
	MetricMentalClarity Metric = "mental_clarity"
	MetricAnxiety       Metric = "anxiety"
	MetricPain          Metric = "pain"
	MetricHeartRate     Metric = "heart_rate"
	MetricPosture       Metric = "posture"
)

// Sample returns the observation's sample for the given metric.
func (o Observation) Sample(m Metric) Sample {
	switch m {
	case MetricEnergy:
		return o.Energy
	case MetricMood:
		return o.Mood
	case MetricMentalClarity:
		return o.MentalClarity
	case MetricAnxiety:
		return o.Anxiety
	case MetricPain:
		return o.Pain
	case MetricHeartRate:
		return o.HeartRate
	case MetricPosture:
		return o.Posture
	default:
		return MissingSample()
	}
}

// Posture category scale. The survey records improvement as one of three
// textual degree ranges; the radar chart and gain summary use the numeric
// degree value.
const (
	// PostureScaleMax is the assumed top of the posture degree scale.
	PostureScaleMax = 5.0
	// PostureBaseline is the no-prior-improvement starting value.
	PostureBaseline = 0.0
)

var postureScale = map[string]float64{
	"~1 degree":                1,
	"~ greater than 3 degree":  3,
	"~ greater than 5 degrees": 5,
}

// MapPosture converts a posture category to its numeric sample. An empty
// category is an ordinary missing value. A non-empty category outside the
// documented scale returns a missing sample with ok=false so the caller can
// record the data-quality gap.
func MapPosture(category string) (Sample, bool) {
	trimmed := strings.TrimSpace(category)
	if trimmed == "" {
		return MissingSample(), true
	}
	if v, found := postureScale[trimmed]; found {
		return NewSample(v), true
	}
	return MissingSample(), false
}

// PostureCategories returns the documented category labels, ordered by
// their numeric value.
func PostureCategories() []string {
	return []string{"~1 degree", "~ greater than 3 degree", "~ greater than 5 degrees"}
}

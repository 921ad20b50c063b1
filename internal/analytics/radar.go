package analytics

import (
	"fmt"
	"math"

	"wellpulse/internal/errors"
)

// Ring is the polygon geometry of one radar series. Vertices are evenly
// spaced around the circle, one per label, starting at angle zero.
type Ring struct {
	Labels []string
	Values []float64
	Max    float64
}

// NewRing builds radar geometry from per-label values. The axis maximum is
// part of the geometry so renderers scale every spoke identically.
func NewRing(labels []string, values []float64, max float64) (*Ring, error) {
	if len(labels) == 0 {
		return nil, errors.NewInsufficientDataError("radar needs at least one labeled value")
	}
	if len(labels) != len(values) {
		return nil, errors.NewValidationError(
			fmt.Sprintf("radar input lengths differ: %d labels, %d values", len(labels), len(values)))
	}
	if max <= 0 {
		return nil, errors.NewValidationError("radar axis maximum must be positive")
	}
	return &Ring{Labels: labels, Values: values, Max: max}, nil
}

// Angles returns one angle per label in radians, evenly spaced over the
// full circle.
func (r *Ring) Angles() []float64 {
	n := len(r.Labels)
	angles := make([]float64, n)
	for i := range angles {
		angles[i] = 2 * math.Pi * float64(i) / float64(n)
	}
	return angles
}

// ClosedValues returns the vertex values with the first repeated at the
// end, closing the polygon.
func (r *Ring) ClosedValues() []float64 {
	closed := make([]float64, len(r.Values)+1)
	copy(closed, r.Values)
	closed[len(closed)-1] = r.Values[0]
	return closed
}

// ClosedAngles returns the vertex angles with the first repeated at the
// end, pairing with ClosedValues.
func (r *Ring) ClosedAngles() []float64 {
	open := r.Angles()
	closed := make([]float64, len(open)+1)
	copy(closed, open)
	closed[len(closed)-1] = open[0]
	return closed
}

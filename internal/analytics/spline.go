package analytics

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"

	"wellpulse/internal/errors"
)

// SplinePoints is the fixed evaluation grid size for smoothed curves.
const SplinePoints = 300

// MinSplineKnots is the smallest number of distinct x values a cubic fit
// accepts.
const MinSplineKnots = 4

// Curve is a smoothed series evaluated on an evenly spaced grid.
type Curve struct {
	X []float64
	Y []float64
}

// CubicSpline fits a natural cubic spline through the knots and evaluates
// it at SplinePoints evenly spaced positions spanning [xs[0], xs[last]].
// The xs must be strictly increasing; repeated x values cannot be fitted.
func CubicSpline(xs, ys []float64) (*Curve, error) {
	if len(xs) != len(ys) {
		return nil, errors.NewValidationError(
			fmt.Sprintf("spline input lengths differ: %d x values, %d y values", len(xs), len(ys)))
	}
	if len(xs) < MinSplineKnots {
		return nil, errors.NewInsufficientDataError(
			fmt.Sprintf("cubic spline needs at least %d distinct points, got %d", MinSplineKnots, len(xs)))
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return nil, errors.NewValidationError("spline x values must be strictly increasing")
		}
	}

	var nc interp.NaturalCubic
	if err := nc.Fit(xs, ys); err != nil {
		return nil, fmt.Errorf("fit natural cubic spline: %w", err)
	}

	grid := floats.Span(make([]float64, SplinePoints), xs[0], xs[len(xs)-1])
	smoothed := make([]float64, SplinePoints)
	for i, x := range grid {
		smoothed[i] = nc.Predict(x)
	}
	return &Curve{X: grid, Y: smoothed}, nil
}

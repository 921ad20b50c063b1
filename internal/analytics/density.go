package analytics

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"wellpulse/internal/errors"
)

// DensityGridSize is the number of evaluation points for density profiles.
const DensityGridSize = 101

// minBandwidth keeps the kernel usable when the sample spread is zero or
// the sample is too small for Silverman's rule.
const minBandwidth = 0.3

// Density is a kernel density estimate evaluated over a fixed grid.
type Density struct {
	X []float64
	Y []float64
}

// KernelDensity estimates a Gaussian kernel density of the samples over
// [lo, hi] on a DensityGridSize grid. The bandwidth follows Silverman's
// rule of thumb, floored so that degenerate samples still produce a curve.
func KernelDensity(samples []float64, lo, hi float64) (*Density, error) {
	if len(samples) == 0 {
		return nil, errors.NewInsufficientDataError("kernel density needs at least one sample")
	}
	if hi <= lo {
		return nil, errors.NewValidationError("density range upper bound must exceed the lower bound")
	}

	h := silvermanBandwidth(samples)
	grid := floats.Span(make([]float64, DensityGridSize), lo, hi)
	values := make([]float64, DensityGridSize)
	n := float64(len(samples))
	for i, x := range grid {
		var sum float64
		for _, s := range samples {
			sum += distuv.UnitNormal.Prob((x - s) / h)
		}
		values[i] = sum / (n * h)
	}
	return &Density{X: grid, Y: values}, nil
}

// silvermanBandwidth computes h = 1.06 * sigma * n^(-1/5).
func silvermanBandwidth(samples []float64) float64 {
	sigma := stat.StdDev(samples, nil)
	h := 1.06 * sigma * math.Pow(float64(len(samples)), -0.2)
	if math.IsNaN(h) || h < minBandwidth {
		return minBandwidth
	}
	return h
}

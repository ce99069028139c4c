package stats

import (
	"gonum.org/v1/gonum/stat"
)

// Mean returns the arithmetic mean of xs (0 for an empty slice).
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return stat.Mean(xs, nil)
}

// Std returns the sample standard deviation of xs.
// Slices shorter than two elements have no spread and return 0.
func Std(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	return stat.StdDev(xs, nil)
}

// MeanStd computes both moments of xs.
func MeanStd(xs []float64) (mean, std float64) {
	if len(xs) < 2 {
		return Mean(xs), 0
	}
	return stat.MeanStdDev(xs, nil)
}

package stats

import (
	"errors"
	"fmt"
	"math"
)

// ErrTooShort is returned when a gradient is requested for fewer than two samples.
var ErrTooShort = errors.New("at least two samples are required")

// ErrZeroSpacing is returned when two consecutive coordinates are equal.
var ErrZeroSpacing = errors.New("sample coordinates must not repeat")

// Gradient returns df/dx at every sample of f, where x holds the sample
// coordinates. Spacing does not have to be uniform but must be non-zero.
func Gradient(f, x []float64) ([]float64, error) {
	n := len(f)
	if len(x) != n {
		return nil, fmt.Errorf("gradient: %d coordinates for %d values", len(x), n)
	}
	if n < 2 {
		return nil, ErrTooShort
	}
	for i := 1; i < n; i++ {
		if x[i] == x[i-1] {
			return nil, fmt.Errorf("gradient: samples %d and %d: %w", i-1, i, ErrZeroSpacing)
		}
	}

	grad := make([]float64, n)
	grad[0] = (f[1] - f[0]) / (x[1] - x[0])
	grad[n-1] = (f[n-1] - f[n-2]) / (x[n-1] - x[n-2])

	for i := 1; i < n-1; i++ {
		hd := x[i] - x[i-1]
		hs := x[i+1] - x[i]
		grad[i] = (hd*hd*f[i+1] + (hs*hs-hd*hd)*f[i] - hs*hs*f[i-1]) / (hs * hd * (hd + hs))
	}

	return grad, nil
}

// AbsGradient returns |df/dx| at every sample.
func AbsGradient(f, x []float64) ([]float64, error) {
	grad, err := Gradient(f, x)
	if err != nil {
		return nil, err
	}
	for i, g := range grad {
		grad[i] = math.Abs(g)
	}
	return grad, nil
}

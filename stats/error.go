package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// RMSE returns the root mean squared difference between a and b.
func RMSE(a, b []float64) (float64, error) {
	diff, err := difference(a, b)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(floats.Dot(diff, diff) / float64(len(diff))), nil
}

// DiffStdDev returns the sample standard deviation of a - b.
func DiffStdDev(a, b []float64) (float64, error) {
	diff, err := difference(a, b)
	if err != nil {
		return 0, err
	}
	return stat.StdDev(diff, nil), nil
}

func difference(a, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("length mismatch: %d and %d", len(a), len(b))
	}
	if len(a) == 0 {
		return nil, fmt.Errorf("empty input")
	}
	diff := make([]float64, len(a))
	floats.SubTo(diff, a, b)
	return diff, nil
}

package detrend

import (
	"gonum.org/v1/gonum/stat"
)

// FitLine fits v = slope*t + intercept by ordinary least squares.
//
// The fit is computed from centred moments, without forming or inverting a
// normal-equation matrix. ok is false when fewer than two points are given or
// every t is identical; slope is then 0 and intercept is the mean of v (0 for
// empty input).
func FitLine(t, v []float64) (slope, intercept float64, ok bool) {
	if len(t) != len(v) || len(v) == 0 {
		return 0, 0, false
	}
	if len(v) < 2 || !spread(t) {
		return 0, stat.Mean(v, nil), false
	}
	intercept, slope = stat.LinearRegression(t, v, nil, false)
	return slope, intercept, true
}

// spread reports whether t holds at least two distinct values.
func spread(t []float64) bool {
	for _, x := range t[1:] {
		if x != t[0] {
			return true
		}
	}
	return false
}

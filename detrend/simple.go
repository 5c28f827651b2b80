package detrend

import (
	"fmt"
	"math"
)

// RollingMean returns the centred moving average of values over window
// samples. Index i averages values[start:start+window] with
// start = i + 1 + (window-1)/2 - window; positions where that range leaves
// the series are NaN.
func RollingMean(values []float64, window int) ([]float64, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: empty series", ErrInvalidInput)
	}
	if window <= 0 {
		return nil, fmt.Errorf("%w: window must be positive, got %d", ErrInvalidInput, window)
	}

	n := len(values)
	offset := (window-1)/2 + 1 - window
	result := make([]float64, n)
	for i := range result {
		result[i] = math.NaN()
	}
	if window > n {
		return result, nil
	}

	sum := 0.0
	for i := 0; i < window; i++ {
		sum += values[i]
	}
	for start := 0; ; start++ {
		result[start-offset] = sum / float64(window)
		if start+window >= n {
			break
		}
		sum += values[start+window] - values[start]
	}

	return result, nil
}

// SubtractRollingMean removes a centred moving average. Samples without a
// full window are NaN in both returned slices.
func SubtractRollingMean(values []float64, window int) (trend, detrended []float64, err error) {
	trend, err = RollingMean(values, window)
	if err != nil {
		return nil, nil, err
	}
	detrended = make([]float64, len(values))
	for i, v := range values {
		detrended[i] = v - trend[i]
	}
	return trend, detrended, nil
}

// Linear removes a single least-squares line fitted over the whole series.
func Linear(times, values []float64) (trend, detrended []float64, err error) {
	if err := validate(times, values, 0); err != nil {
		return nil, nil, err
	}

	slope, intercept, _ := FitLine(times, values)
	trend = make([]float64, len(values))
	detrended = make([]float64, len(values))
	for i, v := range values {
		trend[i] = slope*times[i] + intercept
		detrended[i] = v - trend[i]
	}
	return trend, detrended, nil
}

// CyclicAverage averages values over whole cycles of period samples and
// subtracts the average cycle from every repetition. The series length must
// be a positive multiple of period.
func CyclicAverage(values []float64, period int) (cycle, detrended []float64, err error) {
	if period <= 0 {
		return nil, nil, fmt.Errorf("%w: period must be positive, got %d", ErrInvalidInput, period)
	}
	if len(values) == 0 || len(values)%period != 0 {
		return nil, nil, fmt.Errorf("%w: length %d is not a multiple of period %d", ErrInvalidInput, len(values), period)
	}

	cycles := len(values) / period
	cycle = make([]float64, period)
	for i, v := range values {
		cycle[i%period] += v
	}
	for i := range cycle {
		cycle[i] /= float64(cycles)
	}

	detrended = make([]float64, len(values))
	for i, v := range values {
		detrended[i] = v - cycle[i%period]
	}
	return cycle, detrended, nil
}

package detrend

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/tecdetrend/timeseries"
)

// ErrInvalidInput is returned for empty or mismatched inputs and negative radii.
var ErrInvalidInput = errors.New("invalid input")

// RollingBarrel computes a local linear trend for every sample and the
// residual left after subtracting it.
//
// For index i the line is fitted over times[lo:hi] and values[lo:hi] with
// lo = max(0, i-radius) and hi = min(n, i+radius+1), then evaluated at
// times[i]. Neither input slice is modified.
func RollingBarrel(times, values []float64, radius int) (trend, detrended []float64, err error) {
	e := Estimator{Radius: radius}
	return e.Estimate(times, values)
}

// Estimator runs the rolling barrel with a fixed radius.
type Estimator struct {
	Radius  int // Window half-width in samples
	Workers int // Goroutines for the index loop (<= 1 runs serially)
}

// Estimate returns the trend and detrended series for the given samples.
func (e *Estimator) Estimate(times, values []float64) (trend, detrended []float64, err error) {
	if err := validate(times, values, e.Radius); err != nil {
		return nil, nil, err
	}

	n := len(values)
	trend = make([]float64, n)
	detrended = make([]float64, n)

	workers := e.Workers
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		e.fillRange(times, values, trend, detrended, 0, n)
		return trend, detrended, nil
	}

	// Each goroutine owns a disjoint block of output indices.
	chunk := (n + workers - 1) / workers
	var g errgroup.Group
	for start := 0; start < n; start += chunk {
		start, end := start, min(start+chunk, n)
		g.Go(func() error {
			e.fillRange(times, values, trend, detrended, start, end)
			return nil
		})
	}
	_ = g.Wait() // fillRange cannot fail

	return trend, detrended, nil
}

func (e *Estimator) fillRange(times, values, trend, detrended []float64, start, end int) {
	n := len(values)
	for i := start; i < end; i++ {
		lo := max(0, i-e.Radius)
		hi := min(n, i+e.Radius+1)

		slope, intercept, _ := FitLine(times[lo:hi], values[lo:hi])
		trend[i] = slope*times[i] + intercept
		detrended[i] = values[i] - trend[i]
	}
}

func validate(times, values []float64, radius int) error {
	switch {
	case len(values) == 0:
		return fmt.Errorf("%w: empty series", ErrInvalidInput)
	case len(times) != len(values):
		return fmt.Errorf("%w: %d time coordinates for %d values", ErrInvalidInput, len(times), len(values))
	case radius < 0:
		return fmt.Errorf("%w: negative radius %d", ErrInvalidInput, radius)
	}
	return nil
}

// RadiusForDuration converts a window half-width in wall-clock time into an
// index radius for a series sampled every step. Partial steps are dropped.
func RadiusForDuration(halfWidth, step time.Duration) (int, error) {
	if step <= 0 {
		return 0, fmt.Errorf("%w: sampling step must be positive, got %v", ErrInvalidInput, step)
	}
	if halfWidth < 0 {
		return 0, fmt.Errorf("%w: negative window %v", ErrInvalidInput, halfWidth)
	}
	return int(halfWidth / step), nil
}

// Result holds the output of a series-level detrend.
type Result struct {
	Original  *timeseries.Series
	Trend     *timeseries.Series
	Detrended *timeseries.Series
	Hours     []float64 // Time axis used for the fits
	Radius    int
}

// Residual returns the sample standard deviation of the detrended values.
func (r *Result) Residual() float64 {
	return stat.StdDev(r.Detrended.Values, nil)
}

// RollingBarrelSeries detrends a timestamped series. Timestamps are turned
// into hours elapsed since the first sample before fitting.
func RollingBarrelSeries(series *timeseries.Series, radius int) (*Result, error) {
	e := Estimator{Radius: radius}
	return e.EstimateSeries(series)
}

// EstimateSeries is Estimate for a timestamped series, using hours elapsed
// since the first sample as the time axis.
func (e *Estimator) EstimateSeries(series *timeseries.Series) (*Result, error) {
	if series == nil {
		return nil, fmt.Errorf("%w: nil series", ErrInvalidInput)
	}
	hours, err := series.ElapsedHours()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	trend, detrended, err := e.Estimate(hours, series.Values)
	if err != nil {
		return nil, err
	}

	return &Result{
		Original:  series,
		Trend:     series.WithValues(trend, "trend"),
		Detrended: series.WithValues(detrended, "detrended"),
		Hours:     hours,
		Radius:    e.Radius,
	}, nil
}

// Package timeseries provides the timestamped series type used as the table
// form of detrending input and output.
package timeseries

import (
	"errors"
	"fmt"
	"time"
)

// Series represents a time series with timestamps and values.
type Series struct {
	Timestamps []time.Time
	Values     []float64
	Name       string
}

// New creates a new time series from values sampled hourly from now.
func New(values []float64) *Series {
	return NewRegular(values, time.Now(), time.Hour)
}

// NewRegular creates a series whose samples are step apart starting at start.
func NewRegular(values []float64, start time.Time, step time.Duration) *Series {
	timestamps := make([]time.Time, len(values))
	for i := range timestamps {
		timestamps[i] = start.Add(time.Duration(i) * step)
	}
	return &Series{
		Timestamps: timestamps,
		Values:     values,
	}
}

// NewWithTimestamps creates a time series with explicit timestamps.
func NewWithTimestamps(timestamps []time.Time, values []float64) (*Series, error) {
	if len(timestamps) != len(values) {
		return nil, errors.New("timestamps and values must have the same length")
	}
	return &Series{
		Timestamps: timestamps,
		Values:     values,
	}, nil
}

// Len returns the length of the series.
func (s *Series) Len() int {
	return len(s.Values)
}

// ElapsedHours returns the time of every sample in hours since the first
// sample. Equal calendar intervals map to equal numeric steps.
func (s *Series) ElapsedHours() ([]float64, error) {
	if len(s.Timestamps) != len(s.Values) {
		return nil, fmt.Errorf("series has %d timestamps for %d values", len(s.Timestamps), len(s.Values))
	}
	if len(s.Timestamps) == 0 {
		return []float64{}, nil
	}

	origin := s.Timestamps[0]
	hours := make([]float64, len(s.Timestamps))
	for i, ts := range s.Timestamps {
		if i > 0 && ts.Before(s.Timestamps[i-1]) {
			return nil, fmt.Errorf("timestamp %d (%s) precedes the one before it", i, ts.Format(time.RFC3339))
		}
		hours[i] = ts.Sub(origin).Hours()
	}
	return hours, nil
}

// WithValues returns a series sharing the receiver's timestamps with new
// values and name.
func (s *Series) WithValues(values []float64, name string) *Series {
	timestamps := make([]time.Time, len(s.Timestamps))
	copy(timestamps, s.Timestamps)

	return &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       name,
	}
}

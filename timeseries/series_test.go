package timeseries

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	s := New(values)

	require.Equal(t, 5, s.Len())
	assert.Equal(t, values, s.Values)
	require.Len(t, s.Timestamps, 5)
	assert.Equal(t, time.Hour, s.Timestamps[1].Sub(s.Timestamps[0]))
}

func TestNewWithTimestamps(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := NewWithTimestamps([]time.Time{start}, []float64{1, 2})
	require.Error(t, err)

	s, err := NewWithTimestamps([]time.Time{start, start.Add(time.Minute)}, []float64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
}

func TestElapsedHours(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		step     time.Duration
		n        int
		expected []float64
	}{
		{"hourly", time.Hour, 4, []float64{0, 1, 2, 3}},
		{"half hourly", 30 * time.Minute, 3, []float64{0, 0.5, 1}},
		{"single", time.Hour, 1, []float64{0}},
		{"empty", time.Hour, 0, []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewRegular(make([]float64, tt.n), start, tt.step)
			hours, err := s.ElapsedHours()
			require.NoError(t, err)
			assert.InDeltaSlice(t, tt.expected, hours, 1e-12)
		})
	}
}

func TestElapsedHoursIrregular(t *testing.T) {
	start := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	s, err := NewWithTimestamps([]time.Time{
		start,
		start.Add(15 * time.Minute),
		start.Add(2 * time.Hour),
	}, []float64{1, 2, 3})
	require.NoError(t, err)

	hours, err := s.ElapsedHours()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0.25, 2}, hours, 1e-12)
}

func TestElapsedHoursErrors(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("missing timestamps", func(t *testing.T) {
		s := &Series{Values: []float64{1, 2}}
		_, err := s.ElapsedHours()
		assert.Error(t, err)
	})

	t.Run("decreasing", func(t *testing.T) {
		s, err := NewWithTimestamps([]time.Time{start, start.Add(-time.Hour)}, []float64{1, 2})
		require.NoError(t, err)
		_, err = s.ElapsedHours()
		assert.Error(t, err)
	})
}

func TestWithValues(t *testing.T) {
	s := NewRegular([]float64{1, 2, 3}, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Hour)
	trend := s.WithValues([]float64{0.5, 1.5, 2.5}, "trend")

	assert.Equal(t, "trend", trend.Name)
	assert.Equal(t, s.Timestamps, trend.Timestamps)

	trend.Timestamps[0] = time.Time{}
	assert.False(t, s.Timestamps[0].IsZero(), "timestamps must not be shared")
}

package detrend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFitLine(t *testing.T) {
	tests := []struct {
		name      string
		t, v      []float64
		slope     float64
		intercept float64
		ok        bool
	}{
		{"exact line", []float64{0, 1, 2, 3}, []float64{1, 3, 5, 7}, 2, 1, true},
		{"two points", []float64{1, 3}, []float64{4, 0}, -2, 6, true},
		{"alternating", []float64{0, 1, 2, 3, 4}, []float64{0, 1, 0, 1, 0}, 0, 0.4, true},
		{"single point", []float64{5}, []float64{7}, 0, 7, false},
		{"shared time", []float64{2, 2, 2}, []float64{1, 2, 6}, 0, 3, false},
		{"empty", nil, nil, 0, 0, false},
		{"length mismatch", []float64{0, 1}, []float64{1}, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slope, intercept, ok := FitLine(tt.t, tt.v)
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.slope, slope, 1e-12)
			assert.InDelta(t, tt.intercept, intercept, 1e-12)
		})
	}
}

func TestFitLineMatchesNormalEquations(t *testing.T) {
	ts := []float64{0.1, 0.4, 1.3, 2.2, 2.9, 4.0}
	vs := []float64{3.2, 2.9, 4.4, 5.1, 4.8, 6.7}

	var n, st, sv, stt, stv float64
	for i := range ts {
		n++
		st += ts[i]
		sv += vs[i]
		stt += ts[i] * ts[i]
		stv += ts[i] * vs[i]
	}
	wantSlope := (n*stv - st*sv) / (n*stt - st*st)
	wantIntercept := (sv - wantSlope*st) / n

	slope, intercept, ok := FitLine(ts, vs)
	assert.True(t, ok)
	assert.InDelta(t, wantSlope, slope, 1e-9)
	assert.InDelta(t, wantIntercept, intercept, 1e-9)
}

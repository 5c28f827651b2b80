// Package synth generates reproducible synthetic signals for exercising the
// detrenders: a linear baseline, a sinusoidal irregularity confined to a time
// band, and additive Gaussian noise.
package synth

import (
	"errors"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Config describes a synthetic signal. Times run evenly from 0 to Span.
type Config struct {
	Seed      uint64
	N         int     // Number of samples
	Span      float64 // Time of the last sample (e.g. hours)
	Offset    float64 // Baseline value at t = 0
	Slope     float64 // Baseline change per time unit
	Amplitude float64 // Irregularity amplitude
	Period    float64 // Irregularity period in time units
	From, To  float64 // Irregularity is present for From < t < To
	NoiseStd  float64 // Standard deviation of the additive noise
}

// TECConfig mimics a declining TEC baseline over six hours with a burst of
// 20-minute oscillations between hours 2 and 5.
func TECConfig(seed uint64) Config {
	return Config{
		Seed:      seed,
		N:         500,
		Span:      6,
		Offset:    50,
		Slope:     -8,
		Amplitude: 1,
		Period:    1.0 / 3,
		From:      2,
		To:        5,
		NoiseStd:  0.8,
	}
}

// PeriodicConfig is a gentle linear rise with a unit-period sinusoid present
// throughout.
func PeriodicConfig(seed uint64) Config {
	return Config{
		Seed:      seed,
		N:         500,
		Span:      10,
		Slope:     0.5,
		Amplitude: 1,
		Period:    1,
		From:      math.Inf(-1),
		To:        math.Inf(1),
		NoiseStd:  0.1,
	}
}

// Signal holds a generated series and its noise-free parts.
type Signal struct {
	Time      []float64
	Baseline  []float64 // Linear trend
	Irregular []float64 // Sinusoidal component
	Clean     []float64 // Baseline + Irregular
	Noisy     []float64 // Clean + noise
}

// Step returns the spacing between consecutive samples.
func (s *Signal) Step() float64 {
	if len(s.Time) < 2 {
		return 0
	}
	return s.Time[1] - s.Time[0]
}

// Generate builds the signal described by cfg. The same configuration always
// yields the same samples.
func Generate(cfg Config) (*Signal, error) {
	if cfg.N <= 0 {
		return nil, errors.New("synth: sample count must be positive")
	}
	if cfg.NoiseStd < 0 {
		return nil, errors.New("synth: noise standard deviation cannot be negative")
	}

	noise := distuv.Normal{
		Mu:    0,
		Sigma: cfg.NoiseStd,
		Src:   rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15),
	}

	sig := &Signal{
		Time:      make([]float64, cfg.N),
		Baseline:  make([]float64, cfg.N),
		Irregular: make([]float64, cfg.N),
		Clean:     make([]float64, cfg.N),
		Noisy:     make([]float64, cfg.N),
	}

	for i := 0; i < cfg.N; i++ {
		t := 0.0
		if cfg.N > 1 {
			t = cfg.Span * float64(i) / float64(cfg.N-1)
		}
		sig.Time[i] = t
		sig.Baseline[i] = cfg.Offset + cfg.Slope*t
		if cfg.Period > 0 && t > cfg.From && t < cfg.To {
			sig.Irregular[i] = cfg.Amplitude * math.Sin(2*math.Pi*t/cfg.Period)
		}
		sig.Clean[i] = sig.Baseline[i] + sig.Irregular[i]
		sig.Noisy[i] = sig.Clean[i]
		if cfg.NoiseStd > 0 {
			sig.Noisy[i] += noise.Rand()
		}
	}

	return sig, nil
}

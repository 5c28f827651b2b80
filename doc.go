// Package tecdetrend removes slowly varying trends from noisy, quasi-periodic
// signals such as ionospheric Total Electron Content (TEC).
//
// The main technique is the rolling barrel: a straight line is fitted by least
// squares over a symmetric window around every sample and evaluated at that
// sample, and the resulting trend is subtracted to isolate the short-period
// irregularities.
//
// # Quick Start
//
// Detrend samples given in hours:
//
//	trend, detrended, err := detrend.RollingBarrel(hours, tec, 25)
//
// Detrend a timestamped series loaded from CSV:
//
//	series, _ := timeseries.LoadCSV("tec.csv", nil)
//	result, err := detrend.RollingBarrelSeries(series, 25)
//	// result.Trend, result.Detrended
//
// # Packages
//
//   - detrend: rolling barrel and the simpler rolling mean, linear and cyclic detrenders
//   - timeseries: timestamped series, CSV loading and result tables
//   - stats: gradients and error measures for detrended signals
//
// The tecdetrend command (cmd/tecdetrend) wraps the rolling barrel for CSV
// files, and demo compares all detrenders on synthetic data.
package tecdetrend

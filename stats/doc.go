// Package stats provides numeric helpers for inspecting detrended signals.
//
// # Gradients
//
// Rate of change of a detrended series, with uneven sample spacing allowed:
//
//	grad, err := stats.Gradient(detrended, hours)
//	rate, err := stats.AbsGradient(detrended, hours) // |dTEC/dt|
//
// Interior points use second-order central differences and the two end
// points use one-sided first differences.
//
// # Error Measures
//
//	rmse, err := stats.RMSE(estimated, truth)
//	spread, err := stats.DiffStdDev(estimated, truth)
package stats

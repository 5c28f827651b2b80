// Package detrend removes slowly varying trends from sampled signals.
//
// The central estimator is the rolling barrel: for every sample a straight line
// is fitted by least squares over a symmetric neighbourhood of the sample, the
// line is evaluated at the sample's own time coordinate, and the result is
// subtracted to leave the higher-frequency residual.
//
// # Rolling Barrel
//
// Detrend a series given explicit time coordinates (for example, hours):
//
//	trend, detrended, err := detrend.RollingBarrel(hours, tec, 25)
//
// The radius is a half-width in index units, so each window covers at most
// 2*radius+1 samples and is clipped at both ends of the series. A calendar
// half-width can be converted with RadiusForDuration:
//
//	radius, _ := detrend.RadiusForDuration(30*time.Minute, 30*time.Second)
//
// Windows that cannot define a slope (a single sample, or samples sharing one
// time coordinate) fall back to a flat line through the window mean, so the
// estimator is defined for every non-empty input.
//
// Larger inputs can spread the index loop across goroutines:
//
//	est := &detrend.Estimator{Radius: 25, Workers: 4}
//	trend, detrended, err := est.Estimate(hours, tec)
//
// # Other Detrenders
//
//   - RollingMean / SubtractRollingMean: centred moving average removal
//   - Linear: removal of one global least-squares line
//   - CyclicAverage: removal of the average cycle of a strictly periodic series
package detrend

// Package timeseries provides time series data structures and utilities.
//
// A Series pairs timestamps with observations. It is the table form of
// detrending input: timestamps are converted to elapsed hours before fitting,
// and results are written back as extra columns next to the original values.
//
// # Creating a Series
//
//	series := timeseries.NewRegular(values, start, 30*time.Second)
//	hours, err := series.ElapsedHours()
//
// # Loading from CSV
//
//	opts := timeseries.DefaultCSVOptions()
//	opts.DateColumn = "timestamp"
//	opts.ValueColumn = "TEC"
//	series, err := timeseries.LoadCSV("tec.csv", opts)
//
// Rows with blank or NA observations are skipped. Timestamps are parsed with
// CSVOptions.DateFormat first and then a list of common layouts.
//
// # Writing Results
//
//	err := timeseries.SaveTable("out.csv", series, trend, detrended)
//
// writes a "ds,TEC,trend,detrended" table.
package timeseries

// Package timeseries provides time series data structures and utilities.
//
// This package includes the Series type for representing a sampled
// one-dimensional signal, along with functions for data loading and
// transformation. A Series pairs a strictly increasing float64 time
// axis with an amplitude axis of equal length; the time axis does not
// have to be uniformly spaced.
//
// # Creating a Series
//
// Create a series from a slice (the time axis defaults to 1..N):
//
//	values := []float64{0.1, -0.4, 0.7, 0.2}
//	series := timeseries.New(values)
//
// Or with an explicit time axis:
//
//	series, err := timeseries.NewWithTimes(times, values)
//
// # Loading from Files
//
// Load from a whitespace-delimited text file (amplitude column,
// optional time column):
//
//	series, err := timeseries.LoadText("signal.txt")
//
// Load from CSV:
//
//	opts := timeseries.DefaultCSVOptions()
//	opts.ValueColumn = "amplitude"
//	series, err := timeseries.LoadCSV("signal.csv", opts)
//
// # Transformations
//
// The integrated series (cumulative sum of mean-centered amplitudes) is
// the profile used by detrended fluctuation analysis:
//
//	profile := series.Integrate()
//
// Other transformations:
//
//	scaled := series.Scale(2.0)  // multiply amplitudes
//	shifted := series.Shift(1.5) // add a constant offset
//	subset := series.Slice(10, 50)
//	clone := series.Copy()
package timeseries

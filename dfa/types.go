package dfa

import "math"

// Options configures the window-size sweep performed by Analyze.
//
// Fields:
//   - InitialWindowSize — smallest window size of the sweep. Must be at
//     least 2 and no larger than N/4 (N = series length). Default 10.
//   - Steps — nominal number of sweep points, logarithmically spaced
//     between InitialWindowSize and N/4. Rounding to integer sizes may
//     collapse neighboring points, so the realized curve can be shorter.
//     Must be at least 2. Default 45.
//   - Progress — optional callback invoked once per realized sweep step
//     with the percentage of completed steps. The percentage is computed
//     against the nominal Steps count, so it may top out below 100 when
//     rounding deduplicates sizes. Invoked synchronously on the calling
//     goroutine.
type Options struct {
	InitialWindowSize int
	Steps             int
	Progress          func(percent float64)
}

// DefaultOptions returns the default sweep configuration.
func DefaultOptions() Options {
	return Options{
		InitialWindowSize: 10,
		Steps:             45,
	}
}

// FluctuationPoint is one point of the DFA curve: the RMS detrended
// fluctuation F measured at a given window size.
type FluctuationPoint struct {
	WindowSize int
	F          float64
}

// Result holds the outcome of a scaling sweep.
type Result struct {
	// Alpha is the scaling exponent: the slope of log10(F) versus
	// log10(window size).
	Alpha float64

	// Intercept of the same log-log fit.
	Intercept float64

	// Points is the DFA curve in ascending window-size order.
	Points []FluctuationPoint
}

// LogPoints returns the base-10 logarithms of the window sizes and
// fluctuation values, in curve order.
func (r *Result) LogPoints() (logSizes, logF []float64) {
	logSizes = make([]float64, len(r.Points))
	logF = make([]float64, len(r.Points))
	for i, p := range r.Points {
		logSizes[i] = math.Log10(float64(p.WindowSize))
		logF[i] = math.Log10(p.F)
	}
	return logSizes, logF
}

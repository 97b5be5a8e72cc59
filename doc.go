// Package godfa provides Detrended Fluctuation Analysis (DFA) for one-dimensional time series.
//
// GoDFA estimates the scaling (self-affinity) exponent of a time series:
// the series is integrated, partitioned into windows of varying size,
// locally detrended by least-squares regression, and the residual
// fluctuation is measured per window size. The slope of log10(F) versus
// log10(window size) is the scaling exponent alpha.
//
// # Features
//
//   - Root-mean-square detrended fluctuation for a single window size
//   - Logarithmically spaced window-size sweep with progress reporting
//   - Scaling-exponent estimation from the log-log fluctuation curve
//   - Time series loading from two-column text and CSV files
//
// # Quick Start
//
// Estimate the scaling exponent of a series:
//
//	series := timeseries.New(values)
//	result, err := dfa.Analyze(series, nil)
//	fmt.Println(result.Alpha)
//
// Compute the fluctuation of the integrated profile for one window size:
//
//	f, err := dfa.Fluctuation(series.Integrate(), 32)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - dfa: fluctuation computation and the scaling sweep
//   - timeseries: time series data structures and file loading
//
// A command-line front end lives in cmd/dfa.
//
// # Interpretation
//
// Alpha near 0.5 indicates uncorrelated (white) noise, alpha near 1.0
// indicates 1/f-like long-range correlation, and alpha near 1.5
// indicates Brownian-motion-like behavior.
//
// # References
//
//   - Peng, C.-K., et al. (1994). Mosaic organization of DNA nucleotides
//   - Peng, C.-K., et al. (1995). Quantification of scaling exponents and
//     crossover phenomena in nonstationary heartbeat time series
package godfa

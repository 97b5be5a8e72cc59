// Package dfa implements Detrended Fluctuation Analysis.
//
// DFA estimates the scaling (self-affinity) exponent of a time series.
// The computation has three stages:
//
//  1. Integration: the amplitude values are mean-centered and cumulatively
//     summed, turning the signal into a random-walk-like profile.
//  2. Windowed detrending: the profile is partitioned into contiguous,
//     non-overlapping windows of a fixed size; each window is fit by an
//     ordinary least-squares line against its own time values, and the
//     squared residuals of all windows are pooled into one RMS value F.
//     Trailing samples that do not fill a complete window are discarded.
//  3. Scaling fit: F is measured across a logarithmically spaced range of
//     window sizes from an initial size up to N/4; the slope of log10(F)
//     versus log10(window size) is the scaling exponent alpha.
//
// # Usage
//
// Run a full sweep with defaults (initial window 10, 45 steps):
//
//	result, err := dfa.Analyze(series, nil)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("alpha = %.5f\n", result.Alpha)
//
// Customize the sweep and observe progress:
//
//	opts := dfa.DefaultOptions()
//	opts.InitialWindowSize = 16
//	opts.Progress = func(pct float64) { fmt.Printf("%.0f%%\n", pct) }
//	result, err := dfa.Analyze(series, &opts)
//
// Compute the fluctuation of the integrated profile for a single
// window size:
//
//	f, err := dfa.Fluctuation(series.Integrate(), 64)
//
// # Errors
//
//   - ErrWindowTooSmall — window size below 2.
//   - ErrInsufficientData — window size exceeds the series length.
//   - ErrInvalidRange — initial window size above N/4, or fewer than 2 steps.
//   - ErrNonFiniteResult — a zero fluctuation value (perfectly linear
//     windows) makes the log-log fit undefined.
//
// All errors are deterministic input-validation failures: they are
// returned immediately, never retried, and never corrected by clamping.
// The package performs no I/O and keeps no state between calls; a host
// may parallelize sweeps over multiple series freely.
package dfa

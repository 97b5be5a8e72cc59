package dfa

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/godfa/timeseries"
)

// Fluctuation returns the root-mean-square detrended fluctuation F of
// the given profile for one window size.
//
// The profile is normally the integrated series produced by
// timeseries.Series.Integrate; Analyze performs that integration once
// per sweep. Fluctuation itself never re-integrates, so it measures
// exactly the profile it is handed.
//
// The profile is partitioned into floor(N/windowSize) contiguous,
// non-overlapping windows; trailing samples that do not fill a complete
// window are discarded. Each window is detrended by an ordinary
// least-squares line fit against the window's own time values, which
// keeps the estimate well-defined for non-uniformly sampled series.
// F is the square root of the mean of all squared residuals pooled
// across every window, not an average of per-window RMS values.
func Fluctuation(profile *timeseries.Series, windowSize int) (float64, error) {
	return windowFluctuation(profile.Times, profile.Values, windowSize)
}

// windowFluctuation computes F over an already-integrated series.
func windowFluctuation(times, values []float64, windowSize int) (float64, error) {
	if windowSize < 2 {
		return 0, fmt.Errorf("%w: got %d", ErrWindowTooSmall, windowSize)
	}

	n := len(values)
	numWindows := n / windowSize
	if numWindows == 0 {
		return 0, fmt.Errorf("%w: window size %d over %d samples", ErrInsufficientData, windowSize, n)
	}

	sqResiduals := make([]float64, 0, numWindows*windowSize)

	for w := 0; w < numWindows; w++ {
		lo := w * windowSize
		hi := lo + windowSize
		wt := times[lo:hi]
		wv := values[lo:hi]

		intercept, slope := stat.LinearRegression(wt, wv, nil, false)

		for i, t := range wt {
			residual := wv[i] - (intercept + slope*t)
			sqResiduals = append(sqResiduals, residual*residual)
		}
	}

	meanSq, err := stats.Mean(sqResiduals)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(meanSq), nil
}

package dfa

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/godfa/timeseries"
)

// Analyze runs the DFA window-size sweep over the series and estimates
// the scaling exponent.
//
// Window sizes are spaced logarithmically between opts.InitialWindowSize
// and N/4 inclusive, rounded to integers and deduplicated in ascending
// order. The series is integrated once; Fluctuation's algorithm is then
// applied at every realized size. The scaling exponent is the slope of
// an ordinary least-squares fit to (log10 size, log10 F).
//
// A nil opts uses DefaultOptions. Zero-valued fields of a non-nil opts
// fall back to their defaults as well. Any error at any sweep step fails
// the whole sweep; a silently skipped point would bias the final fit.
func Analyze(s *timeseries.Series, opts *Options) (*Result, error) {
	o := DefaultOptions()
	if opts != nil {
		if opts.InitialWindowSize != 0 {
			o.InitialWindowSize = opts.InitialWindowSize
		}
		if opts.Steps != 0 {
			o.Steps = opts.Steps
		}
		o.Progress = opts.Progress
	}

	if o.InitialWindowSize < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrWindowTooSmall, o.InitialWindowSize)
	}
	if o.Steps < 2 {
		return nil, fmt.Errorf("%w: need at least 2 steps, got %d", ErrInvalidRange, o.Steps)
	}

	n := s.Len()
	maxWindow := float64(n) / 4
	if float64(o.InitialWindowSize) > maxWindow {
		return nil, fmt.Errorf("%w: initial window size %d exceeds N/4 = %g",
			ErrInvalidRange, o.InitialWindowSize, maxWindow)
	}

	sizes := logSpacedSizes(o.InitialWindowSize, maxWindow, o.Steps)

	integrated := s.Integrate()

	points := make([]FluctuationPoint, 0, len(sizes))
	for i, size := range sizes {
		f, err := windowFluctuation(integrated.Times, integrated.Values, size)
		if err != nil {
			return nil, err
		}
		points = append(points, FluctuationPoint{WindowSize: size, F: f})

		if o.Progress != nil {
			o.Progress(float64(i+1) * 100 / float64(o.Steps))
		}
	}

	logSizes := make([]float64, len(points))
	logF := make([]float64, len(points))
	for i, p := range points {
		if p.F == 0 {
			return nil, fmt.Errorf("%w: F = 0 at window size %d", ErrNonFiniteResult, p.WindowSize)
		}
		logSizes[i] = math.Log10(float64(p.WindowSize))
		logF[i] = math.Log10(p.F)
	}

	intercept, slope := stat.LinearRegression(logSizes, logF, nil, false)

	return &Result{
		Alpha:     slope,
		Intercept: intercept,
		Points:    points,
	}, nil
}

// logSpacedSizes returns the rounded, deduplicated window sizes of the
// sweep. Rounding a monotonically increasing sequence keeps it
// non-decreasing, so dropping consecutive duplicates is enough to leave
// the sizes strictly increasing.
func logSpacedSizes(initial int, max float64, steps int) []int {
	lo := math.Log10(float64(initial))
	hi := math.Log10(max)

	sizes := make([]int, 0, steps)
	prev := 0
	for i := 0; i < steps; i++ {
		exp := lo + float64(i)*(hi-lo)/float64(steps-1)
		size := int(math.Round(math.Pow(10, exp)))
		if size != prev {
			sizes = append(sizes, size)
			prev = size
		}
	}
	return sizes
}

package dfa_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/godfa/dfa"
	"github.com/sartorproj/godfa/timeseries"
)

// whiteNoise returns n independent standard-normal samples from a fixed
// seed, so the statistical assertions below are reproducible.
func whiteNoise(n int, seed uint64) []float64 {
	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewSource(seed)}
	values := make([]float64, n)
	for i := range values {
		values[i] = normal.Rand()
	}
	return values
}

// TestAnalyze_WhiteNoiseAlpha verifies the headline property of DFA:
// uncorrelated noise has a scaling exponent near 0.5.
func TestAnalyze_WhiteNoiseAlpha(t *testing.T) {
	s := timeseries.New(whiteNoise(8192, 42))

	result, err := dfa.Analyze(s, nil)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, result.Alpha, 0.1, "white noise must scale with alpha ~ 0.5")
}

// TestAnalyze_BrownianAlpha verifies that a random walk (cumulative sum
// of white noise) has a scaling exponent near 1.5.
func TestAnalyze_BrownianAlpha(t *testing.T) {
	noise := whiteNoise(8192, 7)
	walk := make([]float64, len(noise))
	sum := 0.0
	for i, v := range noise {
		sum += v
		walk[i] = sum
	}
	s := timeseries.New(walk)

	result, err := dfa.Analyze(s, nil)
	require.NoError(t, err)

	assert.InDelta(t, 1.5, result.Alpha, 0.2, "Brownian motion must scale with alpha ~ 1.5")
}

// TestAnalyze_CurveOrderAndDedup runs the sweep over a short series
// where many logarithmically spaced sizes round to the same integer.
// The realized curve must have strictly increasing window sizes and no
// more points than the nominal step count.
func TestAnalyze_CurveOrderAndDedup(t *testing.T) {
	s := timeseries.New(whiteNoise(200, 3))

	result, err := dfa.Analyze(s, nil)
	require.NoError(t, err)

	assert.LessOrEqual(t, len(result.Points), 45)
	assert.Less(t, len(result.Points), 45, "sizes 10..50 cannot realize 45 distinct integers")
	for i := 1; i < len(result.Points); i++ {
		assert.Greater(t, result.Points[i].WindowSize, result.Points[i-1].WindowSize,
			"window sizes must be strictly increasing")
	}
	first := result.Points[0]
	last := result.Points[len(result.Points)-1]
	assert.Equal(t, 10, first.WindowSize, "sweep starts at the initial window size")
	assert.Equal(t, 50, last.WindowSize, "sweep ends at N/4")
}

// TestAnalyze_ProgressNominalCount verifies the progress callback: one
// invocation per realized step, percentages computed against the
// nominal step count, monotonically increasing, and short of 100 when
// deduplication reduced the realized count.
func TestAnalyze_ProgressNominalCount(t *testing.T) {
	s := timeseries.New(whiteNoise(200, 3))

	var percents []float64
	opts := dfa.DefaultOptions()
	opts.Progress = func(pct float64) { percents = append(percents, pct) }

	result, err := dfa.Analyze(s, &opts)
	require.NoError(t, err)

	require.Len(t, percents, len(result.Points))
	for i := 1; i < len(percents); i++ {
		assert.Greater(t, percents[i], percents[i-1], "progress must increase")
	}
	assert.InDelta(t, 100.0/45, percents[0], 1e-12, "first step reports 1/Steps of the sweep")
	want := float64(len(result.Points)) * 100 / 45
	assert.InDelta(t, want, percents[len(percents)-1], 1e-12)
	assert.Less(t, percents[len(percents)-1], 100.0, "deduplicated sweep cannot reach 100%")
}

// TestAnalyze_InvalidRange covers both rejection paths: an initial
// window size above the N/4 ceiling and a nominal step count below 2.
func TestAnalyze_InvalidRange(t *testing.T) {
	s := timeseries.New(whiteNoise(36, 1)) // N/4 = 9 < default initial 10

	_, err := dfa.Analyze(s, nil)
	assert.ErrorIs(t, err, dfa.ErrInvalidRange, "initial window above N/4 must error")

	opts := dfa.DefaultOptions()
	opts.Steps = 1
	_, err = dfa.Analyze(timeseries.New(whiteNoise(200, 1)), &opts)
	assert.ErrorIs(t, err, dfa.ErrInvalidRange, "fewer than 2 steps must error")
}

// TestAnalyze_WindowTooSmall verifies an initial window size below 2 is
// rejected before the sweep starts.
func TestAnalyze_WindowTooSmall(t *testing.T) {
	opts := dfa.DefaultOptions()
	opts.InitialWindowSize = 1

	_, err := dfa.Analyze(timeseries.New(whiteNoise(200, 1)), &opts)
	assert.ErrorIs(t, err, dfa.ErrWindowTooSmall)
}

// TestAnalyze_NonFiniteResult verifies that a constant series, whose
// profile detrends perfectly at every window size, fails the log-log
// transform instead of propagating infinities.
func TestAnalyze_NonFiniteResult(t *testing.T) {
	values := make([]float64, 200)
	for i := range values {
		values[i] = 3.0
	}

	_, err := dfa.Analyze(timeseries.New(values), nil)
	assert.ErrorIs(t, err, dfa.ErrNonFiniteResult, "zero fluctuation must fail the sweep")
}

// TestAnalyze_ZeroOptionFieldsDefaulted verifies that zero-valued
// Options fields fall back to the defaults.
func TestAnalyze_ZeroOptionFieldsDefaulted(t *testing.T) {
	s := timeseries.New(whiteNoise(2048, 11))

	withNil, err := dfa.Analyze(s, nil)
	require.NoError(t, err)

	withZero, err := dfa.Analyze(s, &dfa.Options{})
	require.NoError(t, err)

	assert.Equal(t, withNil.Alpha, withZero.Alpha)
	assert.Equal(t, len(withNil.Points), len(withZero.Points))
}

// TestResult_LogPoints verifies the log-transformed view of the curve.
func TestResult_LogPoints(t *testing.T) {
	r := &dfa.Result{Points: []dfa.FluctuationPoint{
		{WindowSize: 10, F: 1},
		{WindowSize: 100, F: 10},
	}}

	logSizes, logF := r.LogPoints()
	require.Len(t, logSizes, 2)
	assert.InDelta(t, 1, logSizes[0], 1e-12)
	assert.InDelta(t, 2, logSizes[1], 1e-12)
	assert.InDelta(t, 0, logF[0], 1e-12)
	assert.InDelta(t, 1, logF[1], 1e-12)
}

// TestResult_Writers exercises the two export formats.
func TestResult_Writers(t *testing.T) {
	r := &dfa.Result{Points: []dfa.FluctuationPoint{
		{WindowSize: 10, F: 0.5},
		{WindowSize: 20, F: 0.9},
	}}

	var table bytes.Buffer
	require.NoError(t, r.WriteTable(&table))
	lines := strings.Split(strings.TrimSpace(table.String()), "\n")
	require.Len(t, lines, 3, "header plus one row per point")
	assert.Contains(t, lines[0], "window_size_log")

	var csvOut bytes.Buffer
	require.NoError(t, r.WriteCSV(&csvOut))
	assert.Equal(t, "window_size,f\n10,0.5\n20,0.9\n", csvOut.String())
}

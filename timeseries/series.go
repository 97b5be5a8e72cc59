// Package timeseries provides core time series data structures and operations.
package timeseries

import (
	"errors"
	"math"

	"github.com/montanaflynn/stats"
)

var (
	// ErrLengthMismatch indicates the time and value axes differ in length.
	ErrLengthMismatch = errors.New("timeseries: times and values must have the same length")

	// ErrNonMonotonicTime indicates the time axis is not strictly increasing.
	ErrNonMonotonicTime = errors.New("timeseries: time axis must be strictly increasing")
)

// Series represents a sampled one-dimensional signal: a time axis paired
// with an amplitude axis. The time axis is strictly increasing but not
// necessarily uniformly spaced.
type Series struct {
	Times  []float64
	Values []float64
	Name   string
}

// New creates a series from amplitude values with a unit-spaced time axis 1..N.
func New(values []float64) *Series {
	times := make([]float64, len(values))
	for i := range times {
		times[i] = float64(i + 1)
	}
	return &Series{
		Times:  times,
		Values: values,
	}
}

// NewWithTimes creates a series with an explicit time axis. The axes must
// have equal length and the times must be strictly increasing.
func NewWithTimes(times, values []float64) (*Series, error) {
	if len(times) != len(values) {
		return nil, ErrLengthMismatch
	}
	for i := 1; i < len(times); i++ {
		if times[i] <= times[i-1] {
			return nil, ErrNonMonotonicTime
		}
	}
	return &Series{
		Times:  times,
		Values: values,
	}, nil
}

// Len returns the length of the series.
func (s *Series) Len() int {
	return len(s.Values)
}

// Mean calculates the arithmetic mean of the series.
func (s *Series) Mean() float64 {
	m, err := stats.Mean(s.Values)
	if err != nil {
		return 0
	}
	return m
}

// Variance calculates the sample variance of the series.
func (s *Series) Variance() float64 {
	if len(s.Values) < 2 {
		return 0
	}
	v, err := stats.SampleVariance(s.Values)
	if err != nil {
		return 0
	}
	return v
}

// Std calculates the sample standard deviation of the series.
func (s *Series) Std() float64 {
	return math.Sqrt(s.Variance())
}

// Min returns the minimum value in the series.
func (s *Series) Min() float64 {
	m, err := stats.Min(s.Values)
	if err != nil {
		return math.NaN()
	}
	return m
}

// Max returns the maximum value in the series.
func (s *Series) Max() float64 {
	m, err := stats.Max(s.Values)
	if err != nil {
		return math.NaN()
	}
	return m
}

// Integrate returns the integrated series: the cumulative sum of the
// mean-centered amplitude values over the original time axis. This is
// the profile analyzed by detrended fluctuation analysis.
func (s *Series) Integrate() *Series {
	mean := s.Mean()

	result := make([]float64, len(s.Values))
	sum := 0.0
	for i, v := range s.Values {
		sum += v - mean
		result[i] = sum
	}

	times := make([]float64, len(s.Times))
	copy(times, s.Times)

	return &Series{
		Times:  times,
		Values: result,
		Name:   s.Name + "_integrated",
	}
}

// Scale returns the series with every amplitude multiplied by k.
func (s *Series) Scale(k float64) *Series {
	result := make([]float64, len(s.Values))
	for i, v := range s.Values {
		result[i] = k * v
	}

	times := make([]float64, len(s.Times))
	copy(times, s.Times)

	return &Series{
		Times:  times,
		Values: result,
		Name:   s.Name + "_scaled",
	}
}

// Shift returns the series with a constant offset added to every amplitude.
func (s *Series) Shift(offset float64) *Series {
	result := make([]float64, len(s.Values))
	for i, v := range s.Values {
		result[i] = v + offset
	}

	times := make([]float64, len(s.Times))
	copy(times, s.Times)

	return &Series{
		Times:  times,
		Values: result,
		Name:   s.Name + "_shifted",
	}
}

// Slice returns a slice of the series from start to end (exclusive).
func (s *Series) Slice(start, end int) *Series {
	if start < 0 {
		start = 0
	}
	if end > len(s.Values) {
		end = len(s.Values)
	}
	if start >= end {
		return &Series{}
	}

	values := make([]float64, end-start)
	copy(values, s.Values[start:end])

	times := make([]float64, end-start)
	if len(s.Times) >= end {
		copy(times, s.Times[start:end])
	}

	return &Series{
		Times:  times,
		Values: values,
		Name:   s.Name,
	}
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	values := make([]float64, len(s.Values))
	copy(values, s.Values)

	times := make([]float64, len(s.Times))
	copy(times, s.Times)

	return &Series{
		Times:  times,
		Values: values,
		Name:   s.Name,
	}
}

package dfa

import "errors"

var (
	// ErrWindowTooSmall indicates a window size below 2; a single-point
	// window has an undefined regression.
	ErrWindowTooSmall = errors.New("dfa: window size must be at least 2")

	// ErrInsufficientData indicates the window size exceeds the series
	// length, leaving zero complete windows.
	ErrInsufficientData = errors.New("dfa: window size exceeds series length")

	// ErrInvalidRange indicates unusable sweep parameters: an initial
	// window size above the N/4 ceiling, or fewer than 2 sweep steps.
	ErrInvalidRange = errors.New("dfa: invalid sweep range")

	// ErrNonFiniteResult indicates a zero fluctuation value, whose
	// logarithm is undefined in the final log-log fit.
	ErrNonFiniteResult = errors.New("dfa: zero fluctuation makes the log-log fit undefined")
)

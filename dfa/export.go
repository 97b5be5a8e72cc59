package dfa

import (
	"fmt"
	"io"
)

// WriteTable writes the log-log DFA curve as two whitespace-separated
// columns, one row per realized window size.
func (r *Result) WriteTable(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%-18s %s\n", "window_size_log", "f_log"); err != nil {
		return err
	}

	logSizes, logF := r.LogPoints()
	for i := range logSizes {
		if _, err := fmt.Fprintf(w, "%-18f %f\n", logSizes[i], logF[i]); err != nil {
			return err
		}
	}
	return nil
}

// WriteCSV writes the linear DFA curve as CSV with a header row.
func (r *Result) WriteCSV(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "window_size,f"); err != nil {
		return err
	}

	for _, p := range r.Points {
		if _, err := fmt.Fprintf(w, "%d,%g\n", p.WindowSize, p.F); err != nil {
			return err
		}
	}
	return nil
}

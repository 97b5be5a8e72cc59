package main

import (
	"fmt"
	"io"
	"strings"
)

const barWidth = 30

// progressBar renders sweep progress on one terminal line.
type progressBar struct {
	w io.Writer
}

func newProgressBar(w io.Writer) *progressBar {
	return &progressBar{w: w}
}

// update redraws the bar. Percentages come from the sweep's nominal
// step count, so a deduplicated sweep finishes short of 100.
func (b *progressBar) update(pct float64) {
	filled := int(float64(barWidth) * pct / 100)
	if filled > barWidth {
		filled = barWidth
	}
	fmt.Fprintf(b.w, "\r\033[K[%s%s] %5.1f%%",
		strings.Repeat("█", filled),
		strings.Repeat("░", barWidth-filled),
		pct)
}

// done terminates the progress line.
func (b *progressBar) done() {
	fmt.Fprint(b.w, "\n")
}

// Command dfa estimates the scaling exponent of a time series file
// using Detrended Fluctuation Analysis.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}

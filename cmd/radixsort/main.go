// Radixsort sorts binary integer files and text files in place with the
// radixsort engine, checks sortedness, plots radix-round histograms and
// generates datasets.
//
// Usage:
//
//	radixsort [--config FILE] [--log-level L] [--log-format F] COMMAND [flags] ARGS
//
// Commands:
//
//	sort     sort binary files of packed integers in place
//	lines    sort the lines of a text file
//	verify   check that binary files are sorted
//	plot     render the bucket histogram of one radix round as HTML
//	gen      write a generated dataset
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "radixsort:", err)
		os.Exit(1)
	}
}

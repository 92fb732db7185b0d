package main

import (
	"fmt"
	"io"

	"relaxfmt/internal/observ"
)

// printTimings writes one line per pass and the total for a file.
func printTimings(out io.Writer, path string, report observ.Report) {
	if out == nil {
		return
	}
	fmt.Fprintf(out, "timings: %s\n", path)
	for _, p := range report.Phases {
		fmt.Fprintf(out, "  %-8s %7.2f ms\n", p.Name, p.DurationMS)
	}
	fmt.Fprintf(out, "  %-8s %7.2f ms\n", "total", report.TotalMS)
}

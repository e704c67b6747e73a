// Command layout-probe reports the page geometry of a PDF and the column
// bounding boxes the extractor would use, without extracting any text.
// Useful for checking whether a document fits the two-column template
// before running a full extraction.
//
// Usage:
//
//	layout-probe -source gazette.pdf
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"gazette-extractor/internal/geometry"
	"gazette-extractor/internal/types"
)

func main() {
	sourcePath := flag.String("source", "", "Path to the source PDF (required)")
	flag.Parse()

	if *sourcePath == "" {
		flag.Usage()
		os.Exit(1)
	}
	if _, err := os.Stat(*sourcePath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot access %s: %v\n", *sourcePath, err)
		os.Exit(1)
	}

	dims, err := api.PageDimsFile(*sourcePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot read page dimensions: %v\n", err)
		os.Exit(1)
	}

	resolver := geometry.NewResolver(types.DefaultMargins())

	fmt.Printf("%s: %d pages\n\n", *sourcePath, len(dims))
	fmt.Printf("%5s  %9s  %9s  %-28s  %-28s\n", "page", "width", "height", "primary box", "secondary box")

	degenerate := 0
	for i, dim := range dims {
		pageNum := i + 1
		fmt.Printf("%5d  %9.2f  %9.2f  %-28s  %-28s\n",
			pageNum, dim.Width, dim.Height,
			describeBox(resolver, dim.Width, dim.Height, types.ColumnPrimary, &degenerate),
			describeBox(resolver, dim.Width, dim.Height, types.ColumnSecondary, &degenerate))
	}

	if degenerate > 0 {
		fmt.Printf("\n%d column region(s) are degenerate and would be skipped.\n", degenerate)
	}
}

func describeBox(r *geometry.Resolver, width, height float64, side types.ColumnSide, degenerate *int) string {
	box, err := r.Resolve(width, height, side)
	if err != nil {
		*degenerate++
		return fmt.Sprintf("unusable (%s)", types.CodeOf(err))
	}
	return fmt.Sprintf("(%.1f,%.1f)-(%.1f,%.1f)", box.Left, box.Top, box.Right, box.Bottom)
}

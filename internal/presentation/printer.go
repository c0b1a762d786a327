package presentation

import (
	"fmt"
	"io"

	"picarc/internal/domain"
)

type Printer struct {
	Writer io.Writer
}

// PrintSummary reports the created archive and the per-bucket counts.
// Warnings carry files skipped during the write and archive sources that
// could not be scanned.
func (p Printer) PrintSummary(output string, result domain.ScanResult, warnings []string) {
	fmt.Fprintln(p.Writer, successStyle.Render(fmt.Sprintf("Archive created: %s", output)))
	fmt.Fprintln(p.Writer)

	p.printStat("Sorted:", len(result.Sorted))
	p.printStat("Unsorted:", len(result.Unsortable))
	p.printStat("Extras:", len(result.Extras))
	p.printStat("Total:", result.Total())

	if len(warnings) > 0 {
		fmt.Fprintln(p.Writer)
		fmt.Fprintln(p.Writer, warningStyle.Render("Warnings:"))
		for _, warning := range warnings {
			fmt.Fprintln(p.Writer, warningStyle.Render("- "+warning))
		}
	}
}

func (p Printer) printStat(label string, count int) {
	fmt.Fprintf(p.Writer, "  %s %s\n",
		statLabelStyle.Render(label),
		statValueStyle.Render(fmt.Sprintf("%d", count)),
	)
}

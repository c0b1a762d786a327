package presentation

import (
	"bytes"
	"strings"
	"testing"

	"picarc/internal/domain"
)

func TestPrintSummaryIncludesBuckets(t *testing.T) {
	var buf bytes.Buffer
	printer := Printer{Writer: &buf}

	result := domain.ScanResult{
		Sorted: []domain.CopyPlanEntry{
			{OriginalPath: "/photos/a.jpg", DestinationPath: "2021/7/a.jpg"},
		},
		Unsortable: []domain.CopyPlanEntry{
			{OriginalPath: "/photos/c.jpg", DestinationPath: "unsorted/c.jpg"},
		},
	}
	printer.PrintSummary("out.zip", result, []string{"skipped gone.jpg: file vanished"})

	output := buf.String()
	if !strings.Contains(output, "Archive created: out.zip") {
		t.Fatalf("expected archive line, got %q", output)
	}
	for _, label := range []string{"Sorted:", "Unsorted:", "Extras:", "Total:"} {
		if !strings.Contains(output, label) {
			t.Fatalf("expected %q in output, got %q", label, output)
		}
	}
	if !strings.Contains(output, "skipped gone.jpg") {
		t.Fatalf("expected warning in output, got %q", output)
	}
}

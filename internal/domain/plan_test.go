package domain

import "testing"

func TestScanResultMergePreservesOrder(t *testing.T) {
	var result ScanResult
	result.Merge(ScanResult{
		Sorted: []CopyPlanEntry{{OriginalPath: "/a", DestinationPath: "2021/1/a"}},
		Extras: []CopyPlanEntry{{OriginalPath: "/x", DestinationPath: "extras/x"}},
	})
	result.Merge(ScanResult{
		Sorted:     []CopyPlanEntry{{OriginalPath: "/b", DestinationPath: "2021/2/b"}},
		Unsortable: []CopyPlanEntry{{OriginalPath: "/u", DestinationPath: "unsorted/u"}},
	})

	if len(result.Sorted) != 2 || result.Sorted[0].OriginalPath != "/a" || result.Sorted[1].OriginalPath != "/b" {
		t.Fatalf("unexpected sorted order: %+v", result.Sorted)
	}
	if result.Total() != 4 {
		t.Fatalf("expected total 4, got %d", result.Total())
	}

	entries := result.Entries()
	want := []string{"/a", "/b", "/u", "/x"}
	for i, path := range want {
		if entries[i].OriginalPath != path {
			t.Fatalf("entries[%d] = %+v, want original path %s", i, entries[i], path)
		}
	}
}

func TestExtensionOf(t *testing.T) {
	tests := []struct {
		name string
		ext  string
		ok   bool
	}{
		{"photo.JPG", "jpg", true},
		{"photo.jpeg", "jpeg", true},
		{"archive.tar.gz", "gz", true},
		{"README", "", false},
		{"trailing.", "", true},
	}
	for _, tt := range tests {
		ext, ok := ExtensionOf(tt.name)
		if ext != tt.ext || ok != tt.ok {
			t.Fatalf("ExtensionOf(%q) = (%q, %v), want (%q, %v)", tt.name, ext, ok, tt.ext, tt.ok)
		}
	}
}

func TestNewOptionsNormalizesExtensions(t *testing.T) {
	opts := NewOptions(false, false, false, []string{".RAW", " cr2 ", "", "png"})
	for _, ext := range []string{"raw", "cr2", "png"} {
		if !opts.Includes(ext) {
			t.Fatalf("expected %q to be included", ext)
		}
	}
	if opts.Includes("jpg") {
		t.Fatal("jpg must not be included implicitly")
	}
}

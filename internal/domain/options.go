package domain

import "strings"

// Options configures a single scan. Immutable for the scan's duration.
type Options struct {
	Recursive          bool
	NameMonths         bool
	OrderedMonths      bool
	IncludedExtensions map[string]bool
}

// NewOptions normalizes the allow-listed extensions to lowercase without
// a leading dot.
func NewOptions(recursive, nameMonths, orderedMonths bool, includedExtensions []string) Options {
	set := make(map[string]bool, len(includedExtensions))
	for _, ext := range includedExtensions {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext != "" {
			set[ext] = true
		}
	}
	return Options{
		Recursive:          recursive,
		NameMonths:         nameMonths,
		OrderedMonths:      orderedMonths,
		IncludedExtensions: set,
	}
}

func (o Options) Includes(ext string) bool {
	return o.IncludedExtensions[ext]
}

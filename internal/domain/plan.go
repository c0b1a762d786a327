package domain

// CopyPlanEntry pairs a source file with its destination path inside the
// output archive. OriginalPath is absolute; DestinationPath is relative
// and always uses forward slashes.
type CopyPlanEntry struct {
	OriginalPath    string
	DestinationPath string
}

// ScanResult holds the three buckets produced by a scan. Files matching
// neither a recognized nor an allow-listed extension are not recorded
// anywhere.
type ScanResult struct {
	Sorted     []CopyPlanEntry
	Unsortable []CopyPlanEntry
	Extras     []CopyPlanEntry
}

// Merge appends the other result's buckets in order, so concatenating
// per-directory results keeps traversal order stable.
func (r *ScanResult) Merge(other ScanResult) {
	r.Sorted = append(r.Sorted, other.Sorted...)
	r.Unsortable = append(r.Unsortable, other.Unsortable...)
	r.Extras = append(r.Extras, other.Extras...)
}

func (r ScanResult) Total() int {
	return len(r.Sorted) + len(r.Unsortable) + len(r.Extras)
}

// Entries returns all buckets as a single ordered sequence: sorted, then
// unsortable, then extras. Each entry is consumed exactly once by the
// archive writer.
func (r ScanResult) Entries() []CopyPlanEntry {
	entries := make([]CopyPlanEntry, 0, r.Total())
	entries = append(entries, r.Sorted...)
	entries = append(entries, r.Unsortable...)
	entries = append(entries, r.Extras...)
	return entries
}

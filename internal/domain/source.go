package domain

// SourceKind identifies what a top-level input path turned out to be.
// It is determined once per input and never re-evaluated. Unsupported
// inputs do not get a kind at all; classification rejects them with an
// error, so the enum stays closed over the two usable variants.
type SourceKind int

const (
	SourceDirectory SourceKind = iota
	SourceArchive
)

func (k SourceKind) String() string {
	switch k {
	case SourceDirectory:
		return "directory"
	case SourceArchive:
		return "archive"
	default:
		return "unknown"
	}
}

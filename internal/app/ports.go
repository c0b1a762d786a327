package app

import (
	"errors"
	"io"
	"io/fs"
)

// ErrNoMetadata is returned by a MetadataReader when the file carries no
// embedded metadata block at all. The scanner skips such files silently;
// every other metadata failure routes the file to the unsortable bucket.
var ErrNoMetadata = errors.New("no embedded metadata")

type FileSystem interface {
	ReadDir(path string) ([]fs.DirEntry, error)
	Stat(path string) (fs.FileInfo, error)
	Open(path string) (io.ReadCloser, error)
	Abs(path string) (string, error)
	Exists(path string) (bool, error)
	Remove(path string) error
}

// MetadataReader extracts the raw capture date string, formatted
// "YYYY:MM:DD HH:MM:SS", from a file's embedded metadata.
type MetadataReader interface {
	CaptureDateTime(path string) (string, error)
}

// ArchiveWriter receives one entry at a time; implementations stream the
// source into the container rather than buffering whole payloads.
type ArchiveWriter interface {
	Add(destination string, src io.Reader, info fs.FileInfo) error
}

// Package zip writes the output container, one streamed entry at a time.
package zip

import (
	"archive/zip"
	"io"
	"io/fs"
	"os"
)

type Writer struct {
	file *os.File
	zw   *zip.Writer
}

// Create opens a new archive at path. The file must not already exist;
// the caller deletes a confirmed-overwrite target first.
func Create(path string) (*Writer, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	return &Writer{file: file, zw: zip.NewWriter(file)}, nil
}

// Add writes one entry under destination, streaming src.
func (w *Writer) Add(destination string, src io.Reader, info fs.FileInfo) error {
	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	header.Name = destination
	header.Method = zip.Deflate

	entry, err := w.zw.CreateHeader(header)
	if err != nil {
		return err
	}
	_, err = io.Copy(entry, src)
	return err
}

// Close finalizes the archive.
func (w *Writer) Close() error {
	if err := w.zw.Close(); err != nil {
		w.file.Close()
		return err
	}
	return w.file.Close()
}

// Abort discards the partially written archive.
func (w *Writer) Abort() {
	w.zw.Close()
	w.file.Close()
	os.Remove(w.file.Name())
}

package app

import (
	"bytes"
	"errors"
	"io"

	"picarc/internal/domain"
	appErrors "picarc/internal/errors"
)

// ZIP local-file and empty-archive signatures. Anything else is not a
// recognized container.
var zipSignatures = [][]byte{
	{'P', 'K', 0x03, 0x04},
	{'P', 'K', 0x05, 0x06},
}

type Classifier struct {
	FS FileSystem
}

// Classify determines whether a top-level input path is a directory or a
// supported container file. Anything else is an error; the CLI treats
// classification errors as fatal, unlike per-file scan errors.
func (c *Classifier) Classify(path string) (domain.SourceKind, error) {
	info, err := c.FS.Stat(path)
	if err != nil {
		return 0, appErrors.Wrap(appErrors.NotFound, "classify", path, err)
	}
	if info.IsDir() {
		return domain.SourceDirectory, nil
	}
	if !info.Mode().IsRegular() {
		return 0, appErrors.Wrap(appErrors.Unsupported, "classify", path, errors.New("not a directory or regular file"))
	}

	ok, err := c.hasZipSignature(path)
	if err != nil {
		return 0, appErrors.Wrap(appErrors.IOFailure, "classify", path, err)
	}
	if !ok {
		return 0, appErrors.Wrap(appErrors.Unsupported, "classify", path, errors.New("not a recognized container format"))
	}
	return domain.SourceArchive, nil
}

// PartitionSources resolves each input to an absolute path, classifies
// it, and appends it to the matching list.
func (c *Classifier) PartitionSources(paths []string) (dirs, archives []string, err error) {
	for _, p := range paths {
		abs, absErr := c.FS.Abs(p)
		if absErr != nil {
			return nil, nil, appErrors.Wrap(appErrors.Internal, "resolve", p, absErr)
		}
		kind, classifyErr := c.Classify(abs)
		if classifyErr != nil {
			return nil, nil, classifyErr
		}
		switch kind {
		case domain.SourceDirectory:
			dirs = append(dirs, abs)
		case domain.SourceArchive:
			archives = append(archives, abs)
		}
	}
	return dirs, archives, nil
}

func (c *Classifier) hasZipSignature(path string) (bool, error) {
	file, err := c.FS.Open(path)
	if err != nil {
		return false, err
	}
	defer file.Close()

	header := make([]byte, 4)
	if _, err := io.ReadFull(file, header); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return false, nil
		}
		return false, err
	}
	for _, sig := range zipSignatures {
		if bytes.Equal(header, sig) {
			return true, nil
		}
	}
	return false, nil
}

package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"picarc/internal/domain"
)

// ProgressFunc is called once per archived entry with the entry's base
// name. Purely observational.
type ProgressFunc func(label string)

// Archiver streams planned entries into the archive writer. A source
// file that vanished between scan and write is reported as a warning,
// not an abort.
type Archiver struct {
	FS         FileSystem
	Archive    ArchiveWriter
	OnProgress ProgressFunc
}

func (a *Archiver) Execute(ctx context.Context, entries []domain.CopyPlanEntry) ([]string, error) {
	if a.FS == nil || a.Archive == nil {
		return nil, errors.New("archiver requires FS and Archive")
	}

	var warnings []string
	for _, entry := range entries {
		select {
		case <-ctx.Done():
			return warnings, ctx.Err()
		default:
		}
		if err := a.writeEntry(entry); err != nil {
			warnings = append(warnings, fmt.Sprintf("skipped %s: %v", filepath.Base(entry.OriginalPath), err))
		}
		if a.OnProgress != nil {
			a.OnProgress(filepath.Base(entry.OriginalPath))
		}
	}
	return warnings, nil
}

func (a *Archiver) writeEntry(entry domain.CopyPlanEntry) error {
	info, err := a.FS.Stat(entry.OriginalPath)
	if err != nil {
		return err
	}
	src, err := a.FS.Open(entry.OriginalPath)
	if err != nil {
		return err
	}
	defer src.Close()

	return a.Archive.Add(entry.DestinationPath, src, info)
}

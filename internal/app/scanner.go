package app

import (
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"picarc/internal/domain"
	appErrors "picarc/internal/errors"
)

// ErrArchiveSourceUnsupported marks the archive source type, which is
// recognized by classification but cannot be scanned yet.
var ErrArchiveSourceUnsupported = errors.New("archive sources are not supported yet")

// Scanner walks directory sources and decides, per file, whether it is
// processable, which bucket it belongs to, and what its destination path
// inside the output archive is.
type Scanner struct {
	FS     FileSystem
	Meta   MetadataReader
	Logger *log.Logger
}

// Scan folds ScanDirectory over dirs in order, merging the per-source
// results into one.
func (s *Scanner) Scan(ctx context.Context, dirs []string, opts domain.Options) (domain.ScanResult, error) {
	var result domain.ScanResult
	for _, dir := range dirs {
		select {
		case <-ctx.Done():
			return domain.ScanResult{}, ctx.Err()
		default:
		}
		dirResult, err := s.ScanDirectory(dir, opts)
		if err != nil {
			return domain.ScanResult{}, err
		}
		result.Merge(dirResult)
	}
	return result, nil
}

// ScanDirectory classifies the direct children of dir, recursing into
// subdirectories when opts.Recursive is set. Children are visited in
// os.ReadDir order, which is sorted by name; the traversal is depth-first
// and results merge in traversal order. Per-file failures land in the
// unsortable bucket and never abort the walk.
func (s *Scanner) ScanDirectory(dir string, opts domain.Options) (domain.ScanResult, error) {
	if s.FS == nil || s.Meta == nil {
		return domain.ScanResult{}, errors.New("scanner requires FS and Meta")
	}

	entries, err := s.FS.ReadDir(dir)
	if err != nil {
		return domain.ScanResult{}, appErrors.Wrap(appErrors.IOFailure, "scan", dir, err)
	}

	var result domain.ScanResult
	for _, entry := range entries {
		childPath := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			if !opts.Recursive {
				continue
			}
			child, err := s.ScanDirectory(childPath, opts)
			if err != nil {
				return domain.ScanResult{}, err
			}
			result.Merge(child)
			continue
		}
		s.classifyFile(childPath, entry.Name(), opts, &result)
	}
	return result, nil
}

// ScanArchive is the placeholder for the archive source type.
func (s *Scanner) ScanArchive(archivePath string) (domain.ScanResult, error) {
	return domain.ScanResult{}, appErrors.Wrap(appErrors.Unsupported, "scan", archivePath, ErrArchiveSourceUnsupported)
}

func (s *Scanner) classifyFile(filePath, name string, opts domain.Options, result *domain.ScanResult) {
	ext, ok := domain.ExtensionOf(name)
	if !ok {
		return
	}
	if !opts.Includes(ext) && !strings.HasSuffix(strings.ToLower(name), ".jpg") {
		return
	}

	// Allow-listed extras bypass the metadata read entirely.
	if !domain.IsJpeg(ext) {
		result.Extras = append(result.Extras, domain.CopyPlanEntry{
			OriginalPath:    filePath,
			DestinationPath: path.Join("extras", name),
		})
		return
	}

	dest, err := s.sortedDestination(filePath, name, opts)
	if err != nil {
		if errors.Is(err, ErrNoMetadata) {
			s.debug("no embedded metadata, skipping", "file", name)
			return
		}
		s.debug("cannot sort file", "file", name, "err", err)
		result.Unsortable = append(result.Unsortable, domain.CopyPlanEntry{
			OriginalPath:    filePath,
			DestinationPath: path.Join("unsorted", name),
		})
		return
	}
	result.Sorted = append(result.Sorted, domain.CopyPlanEntry{
		OriginalPath:    filePath,
		DestinationPath: dest,
	})
}

func (s *Scanner) sortedDestination(filePath, name string, opts domain.Options) (string, error) {
	raw, err := s.Meta.CaptureDateTime(filePath)
	if err != nil {
		return "", err
	}
	year, month, err := splitCaptureDate(raw)
	if err != nil {
		return "", err
	}
	token, err := domain.MonthToken(month, opts.NameMonths, opts.OrderedMonths)
	if err != nil {
		return "", err
	}
	return path.Join(year, token, name), nil
}

// splitCaptureDate splits a "YYYY:MM:DD HH:MM:SS" capture date into its
// year and month strings.
func splitCaptureDate(raw string) (year, month string, err error) {
	datePart, _, _ := strings.Cut(raw, " ")
	parts := strings.Split(datePart, ":")
	if len(parts) != 3 {
		return "", "", fmt.Errorf("malformed capture date %q", raw)
	}
	return parts[0], parts[1], nil
}

func (s *Scanner) debug(msg string, args ...any) {
	if s.Logger != nil {
		s.Logger.Debug(msg, args...)
	}
}

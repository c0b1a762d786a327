package exif

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	goexif "github.com/rwcarlsen/goexif/exif"

	"picarc/internal/app"
)

type Reader struct{}

// CaptureDateTime returns the raw capture date string, formatted
// "YYYY:MM:DD HH:MM:SS", from the file's EXIF block. A file without any
// EXIF block yields app.ErrNoMetadata; a present block that cannot be
// decoded, or one whose date cannot be read, yields an ordinary error so
// the scanner buckets the file unsortable.
func (Reader) CaptureDateTime(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	x, err := goexif.Decode(file)
	if err != nil {
		if isMissingExifBlock(err) {
			return "", fmt.Errorf("%w: %v", app.ErrNoMetadata, err)
		}
		return "", err
	}

	for _, field := range []goexif.FieldName{goexif.DateTimeOriginal, goexif.DateTime} {
		tag, err := x.Get(field)
		if err != nil {
			continue
		}
		if value, err := tag.StringVal(); err == nil {
			return value, nil
		}
	}
	return "", errors.New("exif capture date not found")
}

// isMissingExifBlock reports whether a Decode failure means the file has
// no EXIF block at all, as opposed to a block that is present but cannot
// be decoded. goexif exports no sentinel for this: the marker scan ends
// in EOF when no APP1 section exists, and the intro-marker message flags
// an APP1 section that is not EXIF. A present-but-corrupt block instead
// fails inside the TIFF decode with a "decode failed" error.
func isMissingExifBlock(err error) bool {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}
	return strings.Contains(err.Error(), "failed to find exif intro marker")
}

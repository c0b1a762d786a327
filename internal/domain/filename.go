package domain

import "strings"

// ExtensionOf returns the lowercase text after the last dot in name.
// ok is false when the name contains no dot at all.
func ExtensionOf(name string) (ext string, ok bool) {
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return "", false
	}
	return strings.ToLower(name[idx+1:]), true
}

// IsJpeg reports whether ext (lowercase, no dot) is the primary image
// format.
func IsJpeg(ext string) bool {
	return ext == "jpg" || ext == "jpeg"
}

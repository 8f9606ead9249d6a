// Package dateutil provides date parsing for blog content.
package dateutil

import (
	"path/filepath"
	"strings"
	"time"
)

// filenameDateLayout is the date prefix convention for post filenames,
// e.g. "2024-03-01-json-semantics.md".
const filenameDateLayout = "2006-01-02"

// FromFilename extracts the date prefix from a content filename.
// Returns the zero time when the filename carries no date prefix.
func FromFilename(name string) time.Time {
	base := filepath.Base(name)
	if len(base) < len(filenameDateLayout)+1 {
		return time.Time{}
	}
	if base[4] != '-' || base[7] != '-' || base[10] != '-' {
		return time.Time{}
	}
	t, err := time.Parse(filenameDateLayout, base[:len(filenameDateLayout)])
	if err != nil {
		return time.Time{}
	}
	return t
}

// StripDatePrefix removes a leading date prefix from a filename, if present.
// "2024-03-01-json-semantics.md" becomes "json-semantics.md".
func StripDatePrefix(name string) string {
	base := filepath.Base(name)
	if FromFilename(base).IsZero() {
		return name
	}
	stripped := base[len(filenameDateLayout)+1:]
	dir := filepath.Dir(name)
	if dir == "." {
		return stripped
	}
	return filepath.Join(dir, stripped)
}

// ParseFlexible parses a date value from front matter, accepting the common
// formats blog authors use. Returns the zero time for empty input.
func ParseFlexible(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	layouts := []string{
		time.RFC3339,
		"2006-01-02 15:04",
		"2006-01-02",
		"January 2, 2006",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

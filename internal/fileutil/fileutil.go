// Package fileutil provides file and path utility functions.
package fileutil

import (
	"os"
	"strings"
	"unicode"
)

// maxSanitizedLength caps sanitized names so output paths stay portable.
const maxSanitizedLength = 50

// SanitizeFilename reduces a rendered name to a safe file name stem:
// letters, digits, spaces, hyphens and underscores survive; spaces become
// underscores; everything else is dropped. An empty result falls back to
// "certificate".
func SanitizeFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune(r)
		}
	}

	safe := strings.TrimSpace(b.String())
	safe = strings.ReplaceAll(safe, " ", "_")
	if runes := []rune(safe); len(runes) > maxSanitizedLength {
		safe = string(runes[:maxSanitizedLength])
	}
	if safe == "" {
		return "certificate"
	}
	return safe
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather
// than a bare name. A string containing path separators is a path.
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

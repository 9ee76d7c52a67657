package fileutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSanitizeFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain name", "Ada Lovelace", "Ada_Lovelace"},
		{"hyphenated", "Jean-Luc Picard", "Jean-Luc_Picard"},
		{"accented letters kept", "José Müller", "José_Müller"},
		{"punctuation dropped", "O'Brien, Patrick!", "OBrien_Patrick"},
		{"path separators dropped", "../../etc/passwd", "etcpasswd"},
		{"digits kept", "Agent 007", "Agent_007"},
		{"underscores kept", "snake_case", "snake_case"},
		{"only symbols", "@#$%^&*", "certificate"},
		{"empty", "", "certificate"},
		{"whitespace only", "   ", "certificate"},
		{"cjk kept", "山田太郎", "山田太郎"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := SanitizeFilename(tt.input); got != tt.want {
				t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeFilename_TruncatesLongNames(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("a", 80)
	got := SanitizeFilename(long)
	if len([]rune(got)) != maxSanitizedLength {
		t.Errorf("len = %d runes, want %d", len([]rune(got)), maxSanitizedLength)
	}

	// Truncation counts runes, not bytes, so multibyte names never end in
	// a partial rune.
	multibyte := strings.Repeat("é", 80)
	got = SanitizeFilename(multibyte)
	if len([]rune(got)) != maxSanitizedLength {
		t.Errorf("multibyte len = %d runes, want %d", len([]rune(got)), maxSanitizedLength)
	}
	for _, r := range got {
		if r != 'é' {
			t.Fatalf("truncation corrupted rune: %q", r)
		}
	}
}

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "present.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"existing file", file, true},
		{"missing file", filepath.Join(dir, "absent.txt"), false},
		{"directory is not a file", dir, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FileExists(tt.path); got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"configs/prod.yaml", true},
		{"./local.yaml", true},
		{`C:\configs\prod.yaml`, true},
		{"prod", false},
		{"prod.yaml", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := IsFilePath(tt.input); got != tt.want {
				t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple lowercase",
			input:    "myapp",
			expected: "myapp",
		},
		{
			name:     "uppercase to lowercase",
			input:    "MyApp",
			expected: "myapp",
		},
		{
			name:     "spaces to hyphens",
			input:    "my cool app",
			expected: "my-cool-app",
		},
		{
			name:     "runs of spaces collapse to one hyphen",
			input:    "my   app",
			expected: "my-app",
		},
		{
			name:     "special characters replaced",
			input:    "My App!",
			expected: "my-app",
		},
		{
			name:     "hyphens preserved",
			input:    "my-app",
			expected: "my-app",
		},
		{
			name:     "dots and underscores kept mid-name",
			input:    "my_app.v2",
			expected: "my_app.v2",
		},
		{
			name:     "leading punctuation trimmed",
			input:    "...app",
			expected: "app",
		},
		{
			name:     "trailing separators trimmed",
			input:    "app---",
			expected: "app",
		},
		{
			name:     "path-like input",
			input:    "projects/My App",
			expected: "projects-my-app",
		},
		{
			name:     "numbers preserved",
			input:    "app 2",
			expected: "app-2",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "only special characters",
			input:    "!@#$%",
			expected: "",
		},
		{
			name:     "unicode replaced",
			input:    "café app",
			expected: "caf-app",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Slugify(tt.input)
			if result != tt.expected {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

// Slugify must be a fixpoint on its own output: running it over an already
// normalized name must not change it again.
func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{
		"My App!",
		"  spaced   out  ",
		"_private.pkg_",
		"UPPER/lower\\mixed",
		"plain",
	}
	for _, input := range inputs {
		once := Slugify(input)
		twice := Slugify(once)
		if once != twice {
			t.Errorf("Slugify not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestPrintable(t *testing.T) {
	if !Printable("my-app 2") {
		t.Error("expected plain text to be printable")
	}
	if Printable("bad\x00name") {
		t.Error("expected NUL byte to be rejected")
	}
	if Printable("tab\tname") {
		t.Error("expected tab to be rejected")
	}
}

func TestDirIsEmpty(t *testing.T) {
	dir := t.TempDir()

	if !DirIsEmpty(dir) {
		t.Error("fresh temp dir should be empty")
	}

	if !DirIsEmpty(filepath.Join(dir, "does-not-exist")) {
		t.Error("missing dir should count as empty")
	}

	if err := os.WriteFile(filepath.Join(dir, "file"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if DirIsEmpty(dir) {
		t.Error("dir with a file should not be empty")
	}
}

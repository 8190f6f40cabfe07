package utils

import (
	"os"
	"strings"
)

// Slugify converts a directory name to a registry-valid package name.
// Example: "My Cool App!" -> "my-cool-app"
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	var result strings.Builder
	result.Grow(len(slug))
	pendingHyphen := false
	for _, c := range slug {
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '.' || c == '_' {
			result.WriteRune(c)
			pendingHyphen = false
		} else if !pendingHyphen && result.Len() > 0 {
			result.WriteRune('-')
			pendingHyphen = true
		}
	}
	return strings.Trim(result.String(), "-._")
}

// FileExists checks if a file exists at the given path
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// DirIsEmpty reports whether path is missing or is an empty directory
func DirIsEmpty(path string) bool {
	entries, err := os.ReadDir(path)
	if err != nil {
		return os.IsNotExist(err)
	}
	return len(entries) == 0
}

// Printable reports whether s contains only printable, non-control characters.
// Used to validate prompted directory names before they touch the filesystem.
func Printable(s string) bool {
	for _, c := range s {
		if c < 0x20 || c == 0x7f {
			return false
		}
	}
	return true
}

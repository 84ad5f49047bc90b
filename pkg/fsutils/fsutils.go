package fsutils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// ErrUnsafePath is returned when a relative file name would escape its root.
var ErrUnsafePath = errors.New("unsafe path")

// CreateDir creates a directory if it doesn't exist.
func CreateDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// WriteToFile writes content to a file, overwriting if it exists.
func WriteToFile(path string, content []byte) error {
	return os.WriteFile(path, content, 0644)
}

// FileExists checks if a path exists and is a regular file (not a directory).
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// SafeJoin joins a slash-separated relative name onto root, rejecting
// absolute names and names that climb out of root.
func SafeJoin(root, name string) (string, error) {
	if name == "" || strings.HasPrefix(name, "/") || strings.HasPrefix(name, `\`) || filepath.IsAbs(name) || filepath.VolumeName(name) != "" {
		return "", fmt.Errorf("%w: %q", ErrUnsafePath, name)
	}
	for _, part := range strings.FieldsFunc(name, func(r rune) bool { return r == '/' || r == '\\' }) {
		if part == ".." {
			return "", fmt.Errorf("%w: %q", ErrUnsafePath, name)
		}
	}
	return filepath.Join(root, filepath.FromSlash(name)), nil
}

// WriteFiles writes each name->content pair under root, creating parent
// directories as needed. All names are checked before anything is written.
// It returns the written paths in sorted name order.
func WriteFiles(root string, files map[string]string) ([]string, error) {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	paths := make([]string, len(names))
	for i, name := range names {
		p, err := SafeJoin(root, name)
		if err != nil {
			return nil, err
		}
		paths[i] = p
	}

	if err := CreateDir(root); err != nil {
		return nil, fmt.Errorf("failed to create directory %q: %w", root, err)
	}
	for i, name := range names {
		if err := CreateDir(filepath.Dir(paths[i])); err != nil {
			return nil, fmt.Errorf("failed to create directory for %q: %w", name, err)
		}
		if err := WriteToFile(paths[i], []byte(files[name])); err != nil {
			return nil, fmt.Errorf("failed to write %q: %w", name, err)
		}
	}
	return paths, nil
}

// nonAlphanumericRegex matches any character that is NOT a lowercase letter, number, underscore or period.
var nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9_.]+`)
var collapseUnderscoreRegex = regexp.MustCompile(`_+`)

// SanitizeFilename converts a string into a safe format suitable for filenames.
// It converts to lowercase, replaces spaces and disallowed characters with underscores,
// collapses consecutive underscores, and trims leading/trailing spaces.
func SanitizeFilename(name string) string {
	lower := strings.ToLower(name)
	trimmed := strings.TrimSpace(lower)
	noSpaces := strings.ReplaceAll(trimmed, " ", "_")
	sanitized := nonAlphanumericRegex.ReplaceAllString(noSpaces, "_")
	collapsed := collapseUnderscoreRegex.ReplaceAllString(sanitized, "_")

	if strings.Trim(collapsed, ".") == "" && name != "" {
		return "_"
	}
	return collapsed
}

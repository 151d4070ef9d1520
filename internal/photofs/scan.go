// Package photofs reads photos from disk into composable values and writes
// rendered output back.
package photofs

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/kozaktomas/photo-print/internal/constants"
)

// IsImageFile reports whether name has a supported image extension.
func IsImageFile(name string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	return ext != "" && slices.Contains(constants.SupportedImageExtensions, ext)
}

// ScanFolder lists the image files directly inside dir, sorted by name.
// Subdirectories are not descended into.
func ScanFolder(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read folder: %w", err)
	}
	var paths []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !IsImageFile(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	slices.Sort(paths)
	return paths, nil
}

// FilterImages keeps the paths IsImageFile accepts, in order.
func FilterImages(paths []string) []string {
	var out []string
	for _, p := range paths {
		if IsImageFile(p) {
			out = append(out, p)
		}
	}
	return out
}

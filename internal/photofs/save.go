package photofs

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrOutputDir is returned when the output directory is missing or is not
// a directory. Output directories are never created implicitly.
var ErrOutputDir = errors.New("output directory does not exist")

// DefaultJPEGQuality is used by SaveJPEG when quality is out of range.
const DefaultJPEGQuality = 95

// PrintFileName names the rendered print of a source file, e.g.
// "IMG_0001.jpg" becomes "IMG_0001_print.png".
func PrintFileName(source, ext string) string {
	base := filepath.Base(source)
	return strings.TrimSuffix(base, filepath.Ext(base)) + "_print." + ext
}

// ContactSheetFileName names a contact sheet rendered at t.
func ContactSheetFileName(t time.Time) string {
	return "contact_sheet_" + t.Format("20060102_150405") + ".png"
}

// SavePNG writes img to dir/name and returns the full path.
func SavePNG(dir, name string, img image.Image) (string, error) {
	return save(dir, name, func(w io.Writer) error {
		return png.Encode(w, img)
	})
}

// SaveJPEG writes img to dir/name as a JPEG.
func SaveJPEG(dir, name string, img image.Image, quality int) (string, error) {
	if quality < 1 || quality > 100 {
		quality = DefaultJPEGQuality
	}
	return save(dir, name, func(w io.Writer) error {
		return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	})
}

// CheckOutputDir returns ErrOutputDir unless dir is an existing directory.
func CheckOutputDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrOutputDir, dir)
	}
	return nil
}

func save(dir, name string, encode func(io.Writer) error) (string, error) {
	if err := CheckOutputDir(dir); err != nil {
		return "", err
	}

	path := filepath.Join(dir, filepath.Base(name))
	f, err := os.Create(path) //nolint:gosec // filename sanitized via filepath.Base
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := encode(f); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

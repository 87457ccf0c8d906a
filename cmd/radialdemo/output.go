package main

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// encode writes img in the named format.
func encode(w io.Writer, img image.Image, format string) error {
	switch format {
	case "png":
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		return enc.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	case "tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// outputPath maps a scene file to its image path in dir.
func outputPath(dir, scene, format string) string {
	base := strings.TrimSuffix(filepath.Base(scene), filepath.Ext(scene))
	return filepath.Join(dir, base+"."+format)
}

// writeImage encodes img to path, removing the file if encoding fails.
func writeImage(path string, img image.Image, format string) (err error) {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("could not create %q: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("could not close %q: %w", path, closeErr)
		}
		if err != nil {
			if rmErr := os.Remove(path); rmErr != nil {
				slog.Error("could not remove partial output", "file", path, "error", rmErr)
			}
		}
	}()

	if err := encode(f, img, format); err != nil {
		return fmt.Errorf("could not encode %s %q: %w", strings.ToUpper(format), path, err)
	}
	return nil
}

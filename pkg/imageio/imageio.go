// Package imageio writes intensity buffers as 8-bit grayscale image files.
package imageio

import (
	"errors"
	"fmt"
	"github.com/wineuwu/programming-rust-practice/pkg/viewport"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrDimensionMismatch is returned when a buffer does not hold exactly width*height pixels.
var ErrDimensionMismatch = errors.New("imageio: buffer length does not match image dimensions")

type Format int

const (
	PNG Format = iota
	BMP
	TIFF
)

func (f Format) String() string {
	switch f {
	case BMP:
		return "bmp"
	case TIFF:
		return "tiff"
	default:
		return "png"
	}
}

// FormatFor picks the container from the extension of path.
// Anything unrecognized is written as PNG.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		return BMP
	case ".tif", ".tiff":
		return TIFF
	default:
		return PNG
	}
}

// Gray wraps buffer as a grayscale image without copying it.
func Gray(buffer []uint8, bounds viewport.Bounds) (*image.Gray, error) {
	if bounds.Width <= 0 || bounds.Height <= 0 || len(buffer) != bounds.Len() {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d",
			ErrDimensionMismatch, len(buffer), bounds.Width, bounds.Height)
	}

	return &image.Gray{
		Pix:    buffer,
		Stride: bounds.Width,
		Rect:   image.Rect(0, 0, bounds.Width, bounds.Height),
	}, nil
}

func Encode(w io.Writer, format Format, buffer []uint8, bounds viewport.Bounds) error {
	img, err := Gray(buffer, bounds)
	if err != nil {
		return err
	}

	switch format {
	case BMP:
		err = bmp.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		err = png.Encode(w, img)
	}
	if err != nil {
		return fmt.Errorf("encoding %s: %w", format, err)
	}

	return nil
}

// WriteImage creates or truncates the file at path and writes buffer to it, in the
// format chosen by FormatFor. The buffer is checked before the file is created.
func WriteImage(path string, buffer []uint8, bounds viewport.Bounds) error {
	if _, err := Gray(buffer, bounds); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	err = Encode(f, FormatFor(path), buffer, bounds)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %q: %w", path, err)
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("closing %q: %w", path, err)
	}

	return nil
}

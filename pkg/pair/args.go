package pair

import (
	"errors"
	"fmt"
	"github.com/wineuwu/programming-rust-practice/pkg/viewport"
	"math"
)

// MaxPixels bounds width*height so the intensity buffer stays allocatable (1 GiB).
const MaxPixels = 1 << 30

var (
	// ErrBounds is returned for image dimensions not of the form <width>x<height>.
	ErrBounds = errors.New("pair: image dimensions must be <width>x<height> with positive integers")

	// ErrComplex is returned for points not of the form <real>,<imag>.
	ErrComplex = errors.New("pair: point must be <real>,<imag>")
)

// ParseBounds parses "<width>x<height>", e.g. "1000x750".
func ParseBounds(s string) (viewport.Bounds, error) {
	w, h, ok := ParsePair[int](s, 'x')
	if !ok || w <= 0 || h <= 0 {
		return viewport.Bounds{}, fmt.Errorf("%w: %q", ErrBounds, s)
	}

	if w > math.MaxInt/h || w*h > MaxPixels {
		return viewport.Bounds{}, fmt.Errorf("%w: %q exceeds %d pixels", ErrBounds, s, MaxPixels)
	}

	return viewport.Bounds{Width: w, Height: h}, nil
}

// ParseComplex parses "<real>,<imag>", e.g. "-1.20,0.35".
func ParseComplex(s string) (complex128, error) {
	re, im, ok := ParsePair[float64](s, ',')
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrComplex, s)
	}

	return complex(re, im), nil
}

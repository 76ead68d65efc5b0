package viewport

import (
	"math"
	"testing"
)

func TestBounds_Index(t *testing.T) {
	b := Bounds{Width: 4, Height: 3}

	if got := b.Len(); got != 12 {
		t.Errorf("Len() = %d, want 12", got)
	}

	tcs := []struct {
		p    Pixel
		want int
	}{
		{Pixel{0, 0}, 0},
		{Pixel{3, 0}, 3},
		{Pixel{0, 1}, 4},
		{Pixel{3, 2}, 11},
	}
	for _, tc := range tcs {
		if got := b.Index(tc.p); got != tc.want {
			t.Errorf("Index(%v) = %d, want %d", tc.p, got, tc.want)
		}
	}
}

func TestPixelToPoint(t *testing.T) {
	tcs := []struct {
		name   string
		bounds Bounds
		pixel  Pixel
		ul, lr complex128
		want   complex128
	}{
		{
			name:   "origin is upper left",
			bounds: Bounds{100, 200},
			pixel:  Pixel{0, 0},
			ul:     complex(-1.0, 1.0),
			lr:     complex(1.0, -1.0),
			want:   complex(-1.0, 1.0),
		},
		{
			name:   "column and row",
			bounds: Bounds{100, 200},
			pixel:  Pixel{25, 175},
			ul:     complex(-1.0, 1.0),
			lr:     complex(1.0, -1.0),
			want:   complex(-0.5, -0.75),
		},
		{
			name:   "reversed corners flip",
			bounds: Bounds{10, 10},
			pixel:  Pixel{0, 5},
			ul:     complex(0, -1.0),
			lr:     complex(1.0, 1.0),
			want:   complex(0, 0),
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got := PixelToPoint(tc.bounds, tc.pixel, tc.ul, tc.lr)
			if got != tc.want {
				t.Errorf("PixelToPoint(%v, %v, %v, %v) = %v, want %v",
					tc.bounds, tc.pixel, tc.ul, tc.lr, got, tc.want)
			}
		})
	}
}

func TestViewport_Corners(t *testing.T) {
	v := Viewport{UpperLeft: complex(-1.20, 0.35), LowerRight: complex(-1, 0.20)}
	b := Bounds{Width: 100, Height: 75}

	if got := v.PointAt(b, Pixel{0, 0}); got != v.UpperLeft {
		t.Errorf("PointAt(0, 0) = %v, want %v", got, v.UpperLeft)
	}

	dx, dy := v.PixelStep(b)
	if dx <= 0 || dy <= 0 {
		t.Fatalf("PixelStep() = (%v, %v), want positive steps", dx, dy)
	}

	last := v.PointAt(b, Pixel{b.Width - 1, b.Height - 1})
	if d := math.Abs(real(last) - real(v.LowerRight)); d > dx*1.000001 {
		t.Errorf("real(PointAt(last)) = %v, more than one step from %v", real(last), real(v.LowerRight))
	}
	if d := math.Abs(imag(last) - imag(v.LowerRight)); d > dy*1.000001 {
		t.Errorf("imag(PointAt(last)) = %v, more than one step from %v", imag(last), imag(v.LowerRight))
	}
}

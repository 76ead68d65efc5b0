// Package viewport maps the pixel grid of an image onto a region of the complex plane.
package viewport

// Bounds is the size of the pixel grid.
type Bounds struct {
	Width, Height int
}

// Len is the number of pixels in the grid, and so the length of an intensity buffer.
func (b Bounds) Len() int {
	return b.Width * b.Height
}

func (b Bounds) Index(p Pixel) int {
	return p.Row*b.Width + p.Col
}

// Rows increase downward.
type Pixel struct {
	Col, Row int
}

// A Viewport is the rectangle of the complex plane spanned by two corners.
//
// UpperLeft is drawn at the top-left of the image and LowerRight at the bottom-right.
// Nothing requires imag(UpperLeft) > imag(LowerRight); swapped corners render upside-down.
type Viewport struct {
	UpperLeft, LowerRight complex128
}

// PixelToPoint returns the point of the complex plane at the top-left corner of pixel.
//
// bounds must have a non-zero Width and Height.
func PixelToPoint(bounds Bounds, pixel Pixel, upperLeft, lowerRight complex128) complex128 {
	width := real(lowerRight) - real(upperLeft)
	height := imag(upperLeft) - imag(lowerRight)

	return complex(
		real(upperLeft)+float64(pixel.Col)*width/float64(bounds.Width),
		imag(upperLeft)-float64(pixel.Row)*height/float64(bounds.Height),
	)
}

func (v Viewport) PointAt(bounds Bounds, pixel Pixel) complex128 {
	return PixelToPoint(bounds, pixel, v.UpperLeft, v.LowerRight)
}

// PixelStep is the size of a single pixel in the plane.
// dy is positive when UpperLeft is above LowerRight.
func (v Viewport) PixelStep(bounds Bounds) (dx, dy float64) {
	dx = (real(v.LowerRight) - real(v.UpperLeft)) / float64(bounds.Width)
	dy = (imag(v.UpperLeft) - imag(v.LowerRight)) / float64(bounds.Height)
	return dx, dy
}

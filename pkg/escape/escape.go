// Package escape computes escape times for the Mandelbrot iteration.
package escape

import "github.com/wineuwu/programming-rust-practice/pkg/transforms"

// DefaultLimit is the iteration limit used for 8-bit grayscale output.
const DefaultLimit = 255

const escapeRadiusSq = 4.0

// Time reports how many iterations of z*z + c, starting from zero, complete before |z|
// exceeds 2. If the orbit stays bounded for limit iterations, escaped is false and c is
// assumed to be in the set.
func Time(c complex128, limit int) (count int, escaped bool) {
	return TimeOf(transforms.Mandelbrot{}, c, limit)
}

func TimeOf(t transforms.Transform, c complex128, limit int) (count int, escaped bool) {
	z := complex(0, 0)

	for i := 0; i < limit; i++ {
		if real(z)*real(z)+imag(z)*imag(z) > escapeRadiusSq {
			return i, true
		}
		z = t.Next(z, c)
	}

	return 0, false
}

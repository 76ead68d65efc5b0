package transforms

// A Transform advances an orbit point z under the parameter c.
type Transform interface {
	Next(z, c complex128) complex128
}

// Package grouptesting decodes the defective set from a test-result vector
// against a cover-free family, either generically (through the cffmatrix
// abstraction) or with a decoder specialised to how the CFF was built.
package grouptesting

import "mtss/cffmatrix"

// Decoder locates defectives from a length-t test-result vector y, where
// y[i] = 1 means test i came back positive. It reports whether the decoded
// set is within the construction's guaranteed bound, the 1-indexed
// defectives themselves, and an error when y cannot be decoded: a result no
// valid construction could have produced or, for the RS decoder, one that
// admits no consistent polynomial.
type Decoder interface {
	FindDefectives(y []int) (ok bool, defectives []int, err error)
}

// General decodes purely through the cffmatrix.Matrix abstraction: it works
// for any CFF construction, at the cost of being slower than a decoder
// specialised to the construction's combinatorial structure.
type General struct {
	N, D, T int
	M       cffmatrix.Matrix
}

func NewGeneral(n, d, t int, m cffmatrix.Matrix) *General {
	return &General{N: n, D: d, T: t, M: m}
}

func (g *General) FindDefectives(y []int) (bool, []int, error) {
	ok, defectives := g.M.FindDefectives(y, g.D)
	return ok, defectives, nil
}

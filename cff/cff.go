// Package cff constructs cover-free families: binary set systems in which no
// column is covered by the union of any d others. A d-CFF(t, n) is the
// combinatorial object underlying the group testing layer of the signature
// scheme in mtss.
package cff

import "mtss/cffmatrix"

// CFF is a cover-free family: d is the number of columns any single column
// must remain uncovered by, n is the number of columns (items), and t is the
// number of rows (tests).
type CFF interface {
	D() int
	N() int
	T() int

	// ToMatrix populates m with this CFF's rows, 0-indexed.
	ToMatrix(m cffmatrix.Matrix)
}

// Construction builds a CFF for a requested number of defectives d and items
// n. Not every construction supports every d; see each implementation.
type Construction interface {
	Build(d, n int) (CFF, error)
}

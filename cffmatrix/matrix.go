// Package cffmatrix provides binary matrix representations of cover-free
// families, and the generic decoding rule shared by every construction:
// merge the rows of every negative test and complement the result.
package cffmatrix

// Matrix is a t x n binary matrix representation of a CFF.
type Matrix interface {
	// Initialize allocates a t-row, n-column matrix of zeros.
	Initialize(t, n int)

	// Set marks row i, column j as 1.
	Set(i, j int)

	// GetRow returns the 0-indexed column positions set in row i.
	GetRow(i int) []int

	// ToIntMatrix renders the matrix as a dense 0/1 grid.
	ToIntMatrix() [][]int

	// FindDefectives decodes a length-t test-result vector y (1 = positive)
	// into the 1-indexed columns not covered by any negative row, and
	// reports whether that set has at most d members.
	FindDefectives(y []int, d int) (ok bool, defectives []int)
}

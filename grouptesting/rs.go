package grouptesting

import (
	"errors"
	"fmt"
)

// ErrRSDecodeFailed is returned when the positive test results admit no
// consistent degree-(k-1) polynomial over GF(q) — more defectives are
// present than the construction's d tolerates.
var ErrRSDecodeFailed = errors.New("no consistent polynomial found for the given result")

// RS decodes a d-CFF built from an extended Reed-Solomon code RS(k, N, q).
// Each defective corresponds to one degree-(k-1) polynomial consistent with
// the positive tests; its coefficients, read as a base-q number, give the
// defective's column, and are recovered by inverting the Vandermonde
// evaluation matrix at k fixed points.
type RS struct {
	N, D    int
	K       int // polynomial has k coefficients
	CodeLen int // N in RS(k, N, q): the codeword length
	Q       int // prime alphabet size
}

func NewRS(n, d, k, codeLen, q int) *RS {
	return &RS{N: n, D: d, K: k, CodeLen: codeLen, Q: q}
}

func (r *RS) FindDefectives(y []int) (bool, []int, error) {
	k, q, codeLen, d := r.K, r.Q, r.CodeLen, r.D

	var result []int
	for i, v := range y {
		if v == 1 {
			result = append(result, i)
		}
	}

	S := make([][]int, codeLen)
	for _, idx := range result {
		row := idx / q
		S[row] = append(S[row], idx%q)
	}

	for j := 0; j < codeLen; j++ {
		if len(S[j]) > d {
			return false, nil, nil
		}
	}

	inverse := findInverse(k, q)

	listPoly, err := findPolynomials(k, q, codeLen, d, S)
	if err != nil {
		return false, nil, err
	}

	I := make([]int, len(listPoly))
	for i, poly := range listPoly {
		g := matrixMultiplication(inverse, poly[:k], q)
		root := g[0]
		for i := 1; i < k; i++ {
			root = root*q + g[i]
		}
		I[i] = root + 1
	}

	return len(I) <= d, I, nil
}

// findPolynomials recovers, from the per-position candidate sets S, the
// codewords of every degree-(k-1) polynomial consistent with the positive
// results. It ports the original algorithm's package-level mutable startPos
// into an explicit parameter threaded through arrangeAvailable and
// isValidPolynomial.
func findPolynomials(k, q, codeLen, d int, S [][]int) ([][]int, error) {
	unused := make([][]bool, codeLen)
	for i, row := range S {
		unused[i] = make([]bool, len(row))
		for j := range unused[i] {
			unused[i][j] = true
		}
	}

	count := make([]int, codeLen+1)
	total := 0
	for i := 0; i < codeLen; i++ {
		count[i] = len(S[i])
		total += len(S[i])
	}
	count[codeLen] = total

	binomial1 := make([]int, k)
	for a := 1; a <= k; a++ {
		sign := 1
		if (a-1)%2 != 0 {
			sign = -1
		}
		binomial1[a-1] = sign * choose(k, a)
	}
	binomial2 := make([]int, k)
	for a := 0; a < k; a++ {
		sign := 1
		if a%2 != 0 {
			sign = -1
		}
		binomial2[a] = sign * choose(k, a)
	}

	var listPoly [][]int
	numPolyFound := 0

	for count[codeLen] != 0 {
		p := -1
		for i := 0; i < codeLen; i++ {
			if count[i] != 0 {
				p = i
				break
			}
		}

		startPos := p
		if p+k > codeLen {
			startPos = codeLen - k
		}

		M := make([]int, k)
		for i := 0; i < k; i++ {
			switch {
			case i+startPos == p:
				M[i] = 1
			case count[i+startPos] == d-numPolyFound:
				M[i] = count[i+startPos]
			default:
				M[i] = len(S[i+startPos])
			}
		}

		A := make([][]int, k)
		for i := 0; i < k; i++ {
			A[i] = make([]int, M[i])
			for j := range A[i] {
				A[i][j] = j
			}
		}

		arrangeAvailable(A, unused, k, p, startPos)

		T := make([]int, k)
		codeword := make([]int, codeLen)

		done := false
		successorEnd := true
		for !done && successorEnd {
			for i := 0; i < k; i++ {
				codeword[startPos+i] = S[i+startPos][A[i][T[i]]]
			}
			done = isValidPolynomial(k, q, codeLen, S, binomial1, binomial2, codeword, startPos)
			successorEnd = nextMixedRadix(T, M)
		}

		if !done {
			return nil, fmt.Errorf("%w", ErrRSDecodeFailed)
		}

		for i := 0; i < codeLen; i++ {
			index := indexOfInt(S[i], codeword[i])
			if unused[i][index] {
				unused[i][index] = false
				count[i]--
				count[codeLen]--
			}
		}
		numPolyFound++
		listPoly = append(listPoly, codeword)
	}

	return listPoly, nil
}

// isValidPolynomial extends codeword outward from [startPos, startPos+k)
// using the k-th finite difference relation and checks every extended
// position against its candidate set S.
func isValidPolynomial(k, q, codeLen int, S [][]int, binomial1, binomial2, codeword []int, startPos int) bool {
	for i := startPos + k; i < codeLen; i++ {
		f := 0
		for j := 1; j <= k; j++ {
			f += binomial1[j-1] * codeword[i-j]
		}
		f = ((f % q) + q) % q
		if !containsInt(S[i], f) {
			return false
		}
		codeword[i] = f
	}

	sign := 1
	if (k+1)%2 != 0 {
		sign = -1
	}
	for i := startPos - 1; i >= 0; i-- {
		f := 0
		index := i + k
		for j := 0; j < k; j++ {
			f += binomial2[j] * codeword[index]
			index--
		}
		f = ((sign*f)%q + q) % q
		if !containsInt(S[i], f) {
			return false
		}
		codeword[i] = f
	}

	return true
}

// nextMixedRadix advances T to the next mixed-radix tuple bounded by size,
// odometer-style, returning false once exhausted.
func nextMixedRadix(T, size []int) bool {
	i := len(T) - 1
	for i >= 0 && T[i] == size[i]-1 {
		T[i] = 0
		i--
	}
	if i < 0 {
		return false
	}
	T[i]++
	return true
}

// arrangeAvailable orders each A[i] so that, for the row still missing an
// evaluation (offset == p), its one unused candidate comes first; for every
// other row, unused candidates are packed to the left and already-used
// candidates to the right, so the mixed-radix search tries fresh
// evaluations before ones already claimed by another polynomial.
func arrangeAvailable(A [][]int, unused [][]bool, k, p, startPos int) {
	for i := 0; i < k; i++ {
		offset := startPos + i
		s := len(unused[offset])
		left, right := 0, s-1

		if offset == p {
			for j := 0; j < s; j++ {
				if unused[offset][j] {
					A[i][0] = j
					break
				}
			}
			continue
		}

		for j := 0; j < s; j++ {
			switch {
			case unused[offset][j]:
				A[i][left] = j
				left++
			case right >= len(A[i]):
				right--
			default:
				A[i][right] = j
				right--
			}
		}
	}
}

func choose(n, k int) int {
	if k == 0 {
		return 1
	}
	if k > n/2 {
		return choose(n, n-k)
	}
	result := n
	for i := 2; i <= k; i++ {
		result *= n - i + 1
		result /= i
	}
	return result
}

func indexOfInt(s []int, v int) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}

// findInverse computes the inverse, modulo the prime mod, of the k x k
// Vandermonde matrix whose (i, j) entry is i^(k-1-j), via Gauss-Jordan
// elimination with partial pivoting.
func findInverse(k, mod int) [][]int {
	A := make([][]int, k)
	for i := range A {
		A[i] = make([]int, k)
		exp := k - 1
		for j := 0; j < k; j++ {
			A[i][j] = modPow(i, exp, mod)
			exp--
		}
	}

	aug := make([][]int, k)
	for i := 0; i < k; i++ {
		aug[i] = make([]int, 2*k)
		copy(aug[i], A[i])
		aug[i][k+i] = 1
	}

	for p := 0; p < k; p++ {
		maxRow := p
		for i := p + 1; i < k; i++ {
			if aug[i][p] > aug[maxRow][p] {
				maxRow = i
			}
		}
		aug[p], aug[maxRow] = aug[maxRow], aug[p]

		for i := p + 1; i < k; i++ {
			alpha := aug[i][p] * modInverse(aug[p][p], mod) % mod
			for j := p; j < 2*k; j++ {
				aug[i][j] = ((aug[i][j]-alpha*aug[p][j]%mod)%mod + mod) % mod
			}
		}
	}

	for p := k - 1; p >= 0; p-- {
		for i := p - 1; i >= 0; i-- {
			alpha := aug[i][p] * modInverse(aug[p][p], mod) % mod
			for j := 2*k - 1; j >= p; j-- {
				aug[i][j] = ((aug[i][j]-alpha*aug[p][j]%mod)%mod + mod) % mod
			}
		}
	}

	for i := 0; i < k; i++ {
		divisor := aug[i][i]
		for j := k; j < 2*k; j++ {
			aug[i][j] = aug[i][j] * modInverse(divisor, mod) % mod
		}
	}

	inverse := make([][]int, k)
	for i := 0; i < k; i++ {
		inverse[i] = make([]int, k)
		copy(inverse[i], aug[i][k:2*k])
	}
	return inverse
}

func matrixMultiplication(inverse [][]int, b []int, mod int) []int {
	n := len(inverse)
	x := make([]int, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			x[i] = (x[i] + inverse[i][j]*b[j]%mod + mod) % mod
		}
	}
	return x
}

func modPow(base, exponent, mod int) int {
	result := 1
	base %= mod
	for exponent > 0 {
		if exponent&1 == 1 {
			result = result * base % mod
		}
		base = base * base % mod
		exponent >>= 1
	}
	return result
}

// modInverse computes the modular multiplicative inverse of a, assuming mod
// is prime, via Fermat's little theorem.
func modInverse(a, mod int) int {
	return modPow(a, mod-2, mod)
}

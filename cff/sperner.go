package cff

import "fmt"

// Sperner builds a 1-CFF from the middle layer of the subset lattice: every
// column is a distinct t/2-subset of {1,...,t}, where t is the smallest
// value for which C(t, t/2) >= n.
type Sperner struct{}

func (Sperner) Build(d, n int) (CFF, error) {
	if d != 1 {
		return nil, fmt.Errorf("sperner construction requires d = 1")
	}

	t := 1
	for Binomial(t, t/2) < int64(n) {
		t++
	}

	subset := make([]int, t/2)
	for k := 1; k <= len(subset); k++ {
		subset[k-1] = k
	}

	sets := make([][]int, n)
	for i := 0; i < n; i++ {
		row := make([]int, len(subset))
		copy(row, subset)
		sets[i] = row
		subset = SubsetLexSuccessor(subset, t/2, t)
	}

	return &SetSystem{d: d, n: n, t: t, sets: sets}, nil
}

// SubsetLexSuccessor computes the lexicographic successor of a t-subset of
// {1,...,n}, following Algorithm 2.6 of Stinson's Combinatorial Algorithms.
// It returns nil once array is the last subset in lexicographic order.
func SubsetLexSuccessor(array []int, t, n int) []int {
	next := make([]int, len(array))
	copy(next, array)

	i := t
	for i >= 1 && array[i-1] == n-t+i {
		i--
	}
	if i == 0 {
		return nil
	}
	for j := i; j <= t; j++ {
		next[j-1] = array[i-1] + 1 + j - i
	}
	return next
}

// Binomial computes the binomial coefficient C(n, k).
func Binomial(n, k int) int64 {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	var b int64 = 1
	for i, m := 1, n; i <= k; i, m = i+1, m-1 {
		b = b * int64(m) / int64(i)
	}
	return b
}

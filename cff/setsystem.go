package cff

import "mtss/cffmatrix"

// SetSystem is a CFF represented directly as n subsets of {1,...,t}, each of
// the same cardinality. Sperner and Steiner Triple System constructions both
// produce this representation.
type SetSystem struct {
	d, n, t int
	sets    [][]int // 1-indexed element values, one row per column
}

func (s *SetSystem) D() int { return s.d }
func (s *SetSystem) N() int { return s.n }
func (s *SetSystem) T() int { return s.t }

// SetSize returns the common cardinality of every column's subset.
func (s *SetSystem) SetSize() int { return len(s.sets[0]) }

// Sets returns the underlying subsets, one per column, with 1-indexed
// element values.
func (s *SetSystem) Sets() [][]int { return s.sets }

func (s *SetSystem) ToMatrix(m cffmatrix.Matrix) {
	m.Initialize(s.t, s.n)
	for i := 0; i < s.n; i++ {
		for j := 0; j < len(s.sets[i]); j++ {
			m.Set(s.sets[i][j]-1, i)
		}
	}
}

package cffmatrix

import "github.com/bits-and-blooms/bitset"

// CompactMatrix represents each row as a bitset, decoding by OR-merging the
// bitsets of every negative row and complementing the result.
type CompactMatrix struct {
	t, n int
	rows []*bitset.BitSet
}

func (m *CompactMatrix) Initialize(t, n int) {
	m.t, m.n = t, n
	m.rows = make([]*bitset.BitSet, t)
	for i := range m.rows {
		m.rows[i] = bitset.New(uint(n))
	}
}

func (m *CompactMatrix) Set(i, j int) {
	m.rows[i].Set(uint(j))
}

func (m *CompactMatrix) GetRow(i int) []int {
	var row []int
	for j := 0; j < m.n; j++ {
		if m.rows[i].Test(uint(j)) {
			row = append(row, j)
		}
	}
	return row
}

func (m *CompactMatrix) ToIntMatrix() [][]int {
	grid := make([][]int, m.t)
	for i := range grid {
		grid[i] = make([]int, m.n)
		for j := 0; j < m.n; j++ {
			if m.rows[i].Test(uint(j)) {
				grid[i][j] = 1
			}
		}
	}
	return grid
}

func (m *CompactMatrix) FindDefectives(y []int, d int) (bool, []int) {
	merged := bitset.New(uint(m.n))
	for i, v := range y {
		if v == 0 {
			merged.InPlaceUnion(m.rows[i])
		}
	}

	var defectives []int
	for j := 0; j < m.n; j++ {
		if !merged.Test(uint(j)) {
			defectives = append(defectives, j+1)
		}
	}
	return len(defectives) <= d, defectives
}

package cff

import "testing"

type fakeMatrix struct {
	t, n int
	grid [][]bool
}

func (f *fakeMatrix) Initialize(t, n int) {
	f.t, f.n = t, n
	f.grid = make([][]bool, t)
	for i := range f.grid {
		f.grid[i] = make([]bool, n)
	}
}
func (f *fakeMatrix) Set(i, j int)          { f.grid[i][j] = true }
func (f *fakeMatrix) GetRow(i int) []int {
	var row []int
	for j, v := range f.grid[i] {
		if v {
			row = append(row, j)
		}
	}
	return row
}
func (f *fakeMatrix) ToIntMatrix() [][]int { return nil }
func (f *fakeMatrix) FindDefectives(y []int, d int) (bool, []int) { return false, nil }

func TestSetSystemToMatrix(t *testing.T) {
	s := &SetSystem{d: 1, n: 2, t: 4, sets: [][]int{{1, 2}, {3, 4}}}
	m := &fakeMatrix{}
	s.ToMatrix(m)

	if m.t != 4 || m.n != 2 {
		t.Fatalf("matrix dims = (%d,%d), want (4,2)", m.t, m.n)
	}
	// column 0 (set {1,2}) sets rows 0 and 1 (0-indexed).
	if !m.grid[0][0] || !m.grid[1][0] {
		t.Fatalf("column 0 missing expected rows: %v", m.grid)
	}
	if !m.grid[2][1] || !m.grid[3][1] {
		t.Fatalf("column 1 missing expected rows: %v", m.grid)
	}
}

package cff

import "testing"

func TestCodeToMatrix(t *testing.T) {
	c := &Code{d: 2, n: 2, alphabet: 3, codes: [][]int{{0, 1}, {2, 0}}}
	m := &fakeMatrix{}
	c.ToMatrix(m)

	if m.t != c.T() || m.n != 2 {
		t.Fatalf("matrix dims = (%d,%d), want (%d,2)", m.t, m.n, c.T())
	}
	// column 0: codeword {0,1} -> index 0*3+0=0 and 1*3+1=4.
	if !m.grid[0][0] || !m.grid[4][0] {
		t.Fatalf("column 0 missing expected rows: %v", m.grid)
	}
	// column 1: codeword {2,0} -> index 0*3+2=2 and 1*3+0=3.
	if !m.grid[2][1] || !m.grid[3][1] {
		t.Fatalf("column 1 missing expected rows: %v", m.grid)
	}
}

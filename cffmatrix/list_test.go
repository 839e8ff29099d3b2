package cffmatrix

import "testing"

// buildTestMatrix sets up a 1-CFF(3,3) whose columns are the 2-subsets
// {1,2},{1,3},{2,3} of {1,2,3}, directly against the Matrix interface.
func buildTestMatrix(m Matrix) {
	m.Initialize(3, 3) // t=3 rows, n=3 columns
	// column 0 ~ rows {0,1}, column 1 ~ rows {0,2}, column 2 ~ rows {1,2}
	m.Set(0, 0)
	m.Set(1, 0)
	m.Set(0, 1)
	m.Set(2, 1)
	m.Set(1, 2)
	m.Set(2, 2)
}

func TestListMatrixFindDefectivesAllPositive(t *testing.T) {
	m := &ListMatrix{}
	buildTestMatrix(m)
	// all tests positive: no negative row to rule anything out, so every
	// column is a candidate and the set exceeds d.
	ok, defectives := m.FindDefectives([]int{1, 1, 1}, 1)
	if ok {
		t.Fatalf("expected ok=false: 3 candidate columns exceed d=1")
	}
	if len(defectives) != 3 {
		t.Fatalf("defectives = %v, want all 3 columns", defectives)
	}
}

func TestListMatrixFindDefectivesSingleDefect(t *testing.T) {
	m := &ListMatrix{}
	buildTestMatrix(m)
	// column 1 (1-indexed "2") is defective: rows covering it (0,2) are positive,
	// row 1 (covering columns {1,3} only) is negative.
	ok, defectives := m.FindDefectives([]int{1, 0, 1}, 1)
	if !ok {
		t.Fatalf("expected ok=true")
	}
	if len(defectives) != 1 || defectives[0] != 2 {
		t.Fatalf("defectives = %v, want [2]", defectives)
	}
}

func TestMergeLists(t *testing.T) {
	got := mergeLists([]int{1, 3, 5}, []int{2, 3, 6})
	want := []int{1, 2, 3, 5, 6}
	if len(got) != len(want) {
		t.Fatalf("merge = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("merge = %v, want %v", got, want)
		}
	}
}

func TestComplementList(t *testing.T) {
	got := complementList([]int{0, 2}, 4)
	want := []int{2, 4}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("complement = %v, want %v", got, want)
	}
}

func TestComplementListNilMergedIsAllColumns(t *testing.T) {
	got := complementList(nil, 3)
	want := []int{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("complement = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("complement = %v, want %v", got, want)
		}
	}
}

package cffmatrix

import "testing"

func TestCompactMatrixMatchesListMatrix(t *testing.T) {
	list := &ListMatrix{}
	compact := &CompactMatrix{}
	buildTestMatrix(list)
	buildTestMatrix(compact)

	for _, y := range [][]int{{1, 1, 1}, {1, 0, 1}, {0, 1, 1}, {0, 0, 0}} {
		okList, defList := list.FindDefectives(y, 1)
		okCompact, defCompact := compact.FindDefectives(y, 1)
		if okList != okCompact {
			t.Fatalf("y=%v: ok mismatch list=%v compact=%v", y, okList, okCompact)
		}
		if len(defList) != len(defCompact) {
			t.Fatalf("y=%v: defectives mismatch list=%v compact=%v", y, defList, defCompact)
		}
		for i := range defList {
			if defList[i] != defCompact[i] {
				t.Fatalf("y=%v: defectives mismatch list=%v compact=%v", y, defList, defCompact)
			}
		}
	}
}

func TestCompactMatrixGetRow(t *testing.T) {
	m := &CompactMatrix{}
	buildTestMatrix(m)
	row := m.GetRow(0)
	if len(row) != 2 || row[0] != 0 || row[1] != 1 {
		t.Fatalf("GetRow(0) = %v, want [0 1]", row)
	}
}

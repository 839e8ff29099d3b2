package grouptesting

import (
	"testing"

	"mtss/cff"
	"mtss/cffmatrix"
)

func TestGeneralFindDefectivesDelegatesToMatrix(t *testing.T) {
	c, err := cff.Sperner{}.Build(1, 5)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	m := &cffmatrix.ListMatrix{}
	c.ToMatrix(m)

	gt := NewGeneral(c.N(), c.D(), c.T(), m)

	y := make([]int, c.T())
	ok, defectives, err := gt.FindDefectives(y)
	if err != nil {
		t.Fatalf("FindDefectives: %v", err)
	}
	wantOk, wantDefectives := m.FindDefectives(y, c.D())
	if ok != wantOk {
		t.Fatalf("ok = %v, want %v", ok, wantOk)
	}
	if len(defectives) != len(wantDefectives) {
		t.Fatalf("defectives = %v, want %v", defectives, wantDefectives)
	}
}

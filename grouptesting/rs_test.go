package grouptesting

import (
	"testing"

	"mtss/cff"
)

func TestRSFindDefectivesNoPositives(t *testing.T) {
	c, err := cff.RS{}.Build(2, 9)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	code := c.(*cff.Code)
	k := (code.CodeLength()-1)/code.D() + 1
	gt := NewRS(code.N(), code.D(), k, code.CodeLength(), code.Alphabet())

	y := make([]int, code.T())
	ok, defectives, err := gt.FindDefectives(y)
	if err != nil {
		t.Fatalf("FindDefectives: %v", err)
	}
	if !ok || len(defectives) != 0 {
		t.Fatalf("ok=%v defectives=%v, want true, []", ok, defectives)
	}
}

func TestRSFindDefectivesSingleDefective(t *testing.T) {
	c, err := cff.RS{}.Build(2, 9)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	code := c.(*cff.Code)
	k := (code.CodeLength()-1)/code.D() + 1
	gt := NewRS(code.N(), code.D(), k, code.CodeLength(), code.Alphabet())

	column := 1 // arbitrary defective column index
	codeword := code.Codes()[column]
	y := make([]int, code.T())
	for j, v := range codeword {
		y[j*code.Alphabet()+v] = 1
	}

	ok, defectives, err := gt.FindDefectives(y)
	if err != nil {
		t.Fatalf("FindDefectives: %v", err)
	}
	if !ok {
		t.Fatalf("expected ok=true for a single defective")
	}
	found := false
	for _, d := range defectives {
		if d == column+1 {
			found = true
		}
	}
	if !found {
		t.Fatalf("defectives = %v, want to contain %d", defectives, column+1)
	}
}

package grouptesting

import (
	"testing"

	"mtss/cff"
)

func buildSTSDecoder(t *testing.T) (*STS, *cff.SetSystem) {
	t.Helper()
	c, err := cff.STS{}.Build(2, 7)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	s := c.(*cff.SetSystem)
	return NewSTS(s.N(), s.T(), s.Sets()), s
}

func TestSTSFindDefectivesNoPositives(t *testing.T) {
	gt, s := buildSTSDecoder(t)
	ok, defectives, err := gt.FindDefectives(make([]int, s.T()))
	if err != nil {
		t.Fatalf("FindDefectives: %v", err)
	}
	if !ok || defectives != nil {
		t.Fatalf("ok=%v defectives=%v, want true, nil", ok, defectives)
	}
}

func TestSTSFindDefectivesInvalidSize(t *testing.T) {
	gt, s := buildSTSDecoder(t)
	y := make([]int, s.T())
	y[0], y[1] = 1, 1 // exactly 2 positives: invalid
	_, _, err := gt.FindDefectives(y)
	if err == nil {
		t.Fatalf("expected error for 2 positive tests")
	}
}

func TestSTSFindDefectivesSingleDefective(t *testing.T) {
	gt, s := buildSTSDecoder(t)

	blocks := s.Sets()
	triple := blocks[0] // some triple {a,b,c}
	y := make([]int, s.T())
	for _, e := range triple {
		y[e-1] = 1
	}

	ok, defectives, err := gt.FindDefectives(y)
	if err != nil {
		t.Fatalf("FindDefectives: %v", err)
	}
	if !ok {
		t.Fatalf("expected ok=true for a single defective")
	}
	if len(defectives) != 1 {
		t.Fatalf("defectives = %v, want exactly one rank", defectives)
	}
}

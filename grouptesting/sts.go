package grouptesting

import (
	"fmt"
	"sort"

	"mtss/cff"
)

// STS decodes a 2-CFF built from a Steiner Triple System. The result
// vector's positive tests always decompose into whole STS triples; each
// triple's rank is the location of one defective item (or, once more than
// two defectives are present, one candidate among several).
type STS struct {
	N, T   int
	Blocks [][]int // the STS triples, 1-indexed element values
}

func NewSTS(n, t int, blocks [][]int) *STS {
	return &STS{N: n, T: t, Blocks: blocks}
}

func (s *STS) FindDefectives(y []int) (bool, []int, error) {
	var result []int
	for i, v := range y {
		if v == 1 {
			result = append(result, i+1)
		}
	}

	size := len(result)
	if size == 0 {
		return true, nil, nil
	}
	if size < 3 || size == 4 {
		return false, nil, fmt.Errorf("not a valid result: %d positive tests", size)
	}

	preSTS := cff.PresentationSTS(s.Blocks, s.T)
	rankSTS := cff.LocateSTS(s.Blocks, s.T)

	if size <= 6 {
		return s.decodeSmall(result, preSTS, rankSTS)
	}
	return s.decodeLarge(result, preSTS, rankSTS)
}

// decodeSmall handles 2 (s in {3,5,6}) or fewer defectives: the first
// element's triple is completed directly, and any leftover pair/triple
// (s = 5 or 6) is completed against what remains.
func (s *STS) decodeSmall(result []int, preSTS, rankSTS [][]int) (bool, []int, error) {
	var I []int
	var usedTriple []int

	element1 := result[0]
	for i := 1; i < len(result); i++ {
		element2 := result[i]
		element3 := preSTS[element1][element2]
		if containsInt(result, element3) {
			I = append(I, rankSTS[element1][element2])
			usedTriple = append(usedTriple, element1, element2, element3)
			result = removeInt(result, element1)
			result = removeInt(result, element2)
			result = removeInt(result, element3)
			break
		}
	}

	if len(result) != 0 { // leftover: s was 5 or 6
		ele1, ele2 := result[0], result[1]
		ele3 := preSTS[ele1][ele2]
		valid := (len(result) == 3 && ele3 == result[2]) ||
			(len(result) == 2 && containsInt(usedTriple, ele3))
		if !valid {
			return false, nil, fmt.Errorf("not a valid result")
		}
		I = append(I, rankSTS[ele1][ele2])
	}

	return true, I, nil
}

// decodeLarge handles more than two defectives: every pair of positive
// tests that completes to a third positive test forms a candidate triple,
// and the union of those triples must exhaust the positive set exactly.
func (s *STS) decodeLarge(result []int, preSTS, rankSTS [][]int) (bool, []int, error) {
	var triples [][]int
	remaining := append([]int(nil), result...)

	for i := 0; i < len(result); i++ {
		for j := i + 1; j < len(result); j++ {
			first, second := result[i], result[j]
			if first >= len(preSTS) || second >= len(preSTS[first]) {
				return false, nil, fmt.Errorf("not a valid result")
			}
			third := preSTS[first][second]
			if !containsInt(result, third) {
				continue
			}
			triple := []int{first, second, third}
			sort.Ints(triple)
			if containsTriple(triples, triple) {
				continue
			}
			triples = append(triples, triple)
			remaining = removeInt(remaining, first)
			remaining = removeInt(remaining, second)
			remaining = removeInt(remaining, third)
		}
	}

	if len(remaining) != 0 {
		return false, nil, fmt.Errorf("not a valid result")
	}

	I := make([]int, len(triples))
	for i, t := range triples {
		I[i] = rankSTS[t[0]][t[1]]
	}
	return false, I, nil
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

func containsTriple(triples [][]int, t []int) bool {
	for _, existing := range triples {
		if existing[0] == t[0] && existing[1] == t[1] && existing[2] == t[2] {
			return true
		}
	}
	return false
}

func removeInt(s []int, v int) []int {
	for i, x := range s {
		if x == v {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

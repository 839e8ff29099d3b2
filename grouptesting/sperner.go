package grouptesting

import "mtss/cff"

// Sperner decodes a 1-CFF built from the middle layer of the subset lattice.
// When the number of positive tests equals exactly t/2 there is a single
// candidate defective, ranked directly; with no positive test there is no
// defective; otherwise every t/2-subset of the positive tests consistent with
// n ranks as a candidate, and the result is reported as ambiguous.
type Sperner struct {
	N, T int
}

func NewSperner(n, t int) *Sperner {
	return &Sperner{N: n, T: t}
}

func (s *Sperner) FindDefectives(y []int) (bool, []int, error) {
	var result []int
	for i, v := range y {
		if v == 1 {
			result = append(result, i)
		}
	}

	half := s.T / 2

	if len(result) == half {
		pos := make([]int, half)
		for i := range result {
			pos[i] = result[i] + 1
		}
		return true, []int{rankSubset(pos, half, s.T)}, nil
	}

	if len(result) < half {
		// Fewer than t/2 positive tests contain no t/2-subset to rank.
		return len(result) == 0, nil, nil
	}

	combination := cff.Binomial(len(result), half)

	firstIndex := make([]int, half)
	for k := 1; k <= half; k++ {
		firstIndex[k-1] = k
	}

	first := make([]int, half)
	for i := range first {
		first[i] = result[firstIndex[i]-1] + 1
	}

	var I []int
	if r := rankSubset(first, half, s.T); r <= s.N {
		I = append(I, r)
	}

	for j := int64(0); j < combination-1; j++ {
		firstIndex = cff.SubsetLexSuccessor(firstIndex, half, len(result))
		for i := range first {
			first[i] = result[firstIndex[i]-1] + 1
		}
		r := rankSubset(first, half, s.T)
		if r <= s.N {
			I = append(I, r)
		} else {
			break
		}
	}

	return false, I, nil
}

// rankSubset computes the lexicographic rank, starting at 1, of a t-subset
// of {1,...,n}, following Algorithm 2.7 of Stinson's Combinatorial
// Algorithms.
func rankSubset(array []int, t, n int) int {
	r := 1
	currentPos := 0

	for i := 1; i <= t; i++ {
		if currentPos+1 <= array[i-1]-1 {
			for j := currentPos + 1; j <= array[i-1]-1; j++ {
				r += int(cff.Binomial(n-j, t-i))
			}
		}
		currentPos = array[i-1]
	}

	return r
}

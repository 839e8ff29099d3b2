package cffmatrix

// ListMatrix represents each row as the sorted list of its set column
// indices, decoding by repeatedly merging negative rows two at a time and
// complementing the result.
type ListMatrix struct {
	t, n  int
	tests [][]int
}

func (m *ListMatrix) Initialize(t, n int) {
	m.t, m.n = t, n
	m.tests = make([][]int, t)
}

func (m *ListMatrix) Set(i, j int) {
	m.tests[i] = append(m.tests[i], j)
}

func (m *ListMatrix) GetRow(i int) []int {
	return m.tests[i]
}

func (m *ListMatrix) ToIntMatrix() [][]int {
	grid := make([][]int, m.t)
	for i := range grid {
		grid[i] = make([]int, m.n)
		for _, j := range m.tests[i] {
			grid[i][j] = 1
		}
	}
	return grid
}

func (m *ListMatrix) FindDefectives(y []int, d int) (bool, []int) {
	var queue [][]int
	for i, v := range y {
		if v == 0 {
			queue = append(queue, m.tests[i])
		}
	}

	for len(queue) > 1 {
		merged := mergeLists(queue[0], queue[1])
		queue = append(queue[2:], merged)
	}

	var negative []int
	if len(queue) == 1 {
		negative = queue[0]
	}

	defectives := complementList(negative, m.n)
	return len(defectives) <= d, defectives
}

// mergeLists merges two sorted, duplicate-free lists into one sorted list.
func mergeLists(list1, list2 []int) []int {
	merged := make([]int, 0, len(list1)+len(list2))
	i, j := 0, 0
	for i < len(list1) && j < len(list2) {
		switch {
		case list1[i] == list2[j]:
			merged = append(merged, list1[i])
			i++
			j++
		case list1[i] < list2[j]:
			merged = append(merged, list1[i])
			i++
		default:
			merged = append(merged, list2[j])
			j++
		}
	}
	merged = append(merged, list1[i:]...)
	merged = append(merged, list2[j:]...)
	return merged
}

// complementList returns the 1-indexed columns in {1,...,n} absent from the
// sorted 0-indexed list merged.
func complementList(merged []int, n int) []int {
	var complement []int
	i, j := 0, 0
	for j < len(merged) {
		if i == merged[j] {
			i++
			j++
		} else {
			complement = append(complement, i+1)
			i++
		}
	}
	for i < n {
		complement = append(complement, i+1)
		i++
	}
	return complement
}

package cff

import (
	"fmt"
	"math"
)

// STS builds a 2-CFF from a Steiner Triple System: every column is one of
// the triples of an STS(v), where v is the smallest admissible order with at
// least b triples.
type STS struct{}

func (STS) Build(d, b int) (CFF, error) {
	if d != 2 {
		return nil, fmt.Errorf("STS construction requires d = 2")
	}
	if b < 7 {
		return nil, fmt.Errorf("STS is only applicable for n bigger or equal to 7")
	}

	v := int(math.Ceil((1 + math.Sqrt(1+24*float64(b))) / 2))
	switch v % 6 {
	case 0, 2:
		v++
	case 4, 5:
		v = v + 7 - (v % 6)
	}

	blocks := generateSTS(v)
	return &SetSystem{d: d, n: b, t: v, sets: blocks}, nil
}

// generateSTS builds the triples of an STS(v) using the Bose construction
// when v = 3 (mod 6) and the Skolem construction when v = 1 (mod 6).
func generateSTS(v int) [][]int {
	b := v * (v - 1) / 6
	blocks := make([][]int, b)
	for i := range blocks {
		blocks[i] = make([]int, 3)
	}

	switch v % 6 {
	case 3: // Bose construction
		q := v / 3
		quasiGroup := make([][]int, q)
		for x := 0; x < q; x++ {
			quasiGroup[x] = make([]int, q)
			for y := 0; y < q; y++ {
				quasiGroup[x][y] = (((q + 1) / 2) * (x + y)) % q
			}
		}

		blockNum := 0
		for x := 0; x <= q-1; x++ { // type 1
			blocks[blockNum][0] = 3*x + 1
			blocks[blockNum][1] = 3*x + 2
			blocks[blockNum][2] = 3*x + 3
			blockNum++
		}
		for x := 0; x <= q-1; x++ { // type 2
			for y := x + 1; y <= q-1; y++ {
				for i := 0; i < 3; i++ {
					blocks[blockNum][0] = 3*x + i + 1
					blocks[blockNum][1] = 3*y + i + 1
					blocks[blockNum][2] = 3*quasiGroup[x][y] + (i+1)%3 + 1
					blockNum++
				}
			}
		}

	case 1: // Skolem construction
		n := (v - 1) / 6
		q := 2 * n
		quasiGroup := make([][]int, q)
		for x := 0; x < q; x++ {
			quasiGroup[x] = make([]int, q)
			for y := 0; y < q; y++ {
				t := (x + y) % q
				if t%2 == 0 {
					quasiGroup[x][y] = t / 2
				} else {
					quasiGroup[x][y] = (t + q - 1) / 2
				}
			}
		}

		blockNum := 0
		inf := v
		for x := 0; x <= n-1; x++ { // type 1 and 2
			blocks[blockNum][0] = 3*x + 1
			blocks[blockNum][1] = 3*x + 2
			blocks[blockNum][2] = 3*x + 3
			blockNum++
			for i := 0; i < 3; i++ {
				blocks[blockNum][0] = inf
				blocks[blockNum][1] = 3*(x+n) + i + 1
				blocks[blockNum][2] = 3*x + (i+1)%3 + 1
				blockNum++
			}
		}
		for x := 0; x <= q-1; x++ { // type 3
			for y := x + 1; y <= q-1; y++ {
				for i := 0; i < 3; i++ {
					blocks[blockNum][0] = 3*x + i + 1
					blocks[blockNum][1] = 3*y + i + 1
					blocks[blockNum][2] = 3*quasiGroup[x][y] + (i+1)%3 + 1
					blockNum++
				}
			}
		}
	}

	return blocks
}

// PresentationSTS indexes the STS blocks so that the third element of any
// triple containing elements a and b can be recovered in O(1).
func PresentationSTS(blocks [][]int, v int) [][]int {
	preSTS := make([][]int, v+1)
	for i := range preSTS {
		preSTS[i] = make([]int, v+1)
	}
	for _, blk := range blocks {
		a, bb, c := blk[0], blk[1], blk[2]
		preSTS[a][bb] = c
		preSTS[bb][a] = c
		preSTS[a][c] = bb
		preSTS[c][a] = bb
		preSTS[bb][c] = a
		preSTS[c][bb] = a
	}
	return preSTS
}

// LocateSTS indexes the STS blocks so that the 1-indexed rank (row number)
// of the triple containing elements a and b can be recovered in O(1).
func LocateSTS(blocks [][]int, v int) [][]int {
	rankSTS := make([][]int, v+1)
	for i := range rankSTS {
		rankSTS[i] = make([]int, v+1)
	}
	for i, blk := range blocks {
		a, b, c := blk[0], blk[1], blk[2]
		rankSTS[a][b] = i + 1
		rankSTS[b][a] = i + 1
		rankSTS[a][c] = i + 1
		rankSTS[c][a] = i + 1
		rankSTS[b][c] = i + 1
		rankSTS[c][b] = i + 1
	}
	return rankSTS
}

package cff

import "mtss/cffmatrix"

// Code is a CFF represented as an orthogonal array over an alphabet of size
// Alphabet, one codeword per column. The Reed-Solomon construction produces
// this representation; t is derived as CodeLength()*Alphabet().
type Code struct {
	d, n, alphabet int
	codes          [][]int
}

func (c *Code) D() int { return c.d }
func (c *Code) N() int { return c.n }

// Alphabet returns the size q of the code's alphabet.
func (c *Code) Alphabet() int { return c.alphabet }

// CodeLength returns the codeword length N.
func (c *Code) CodeLength() int { return len(c.codes[0]) }

// Codes returns the raw codewords, one per column.
func (c *Code) Codes() [][]int { return c.codes }

func (c *Code) T() int { return c.CodeLength() * c.alphabet }

func (c *Code) ToMatrix(m cffmatrix.Matrix) {
	length := c.CodeLength()
	m.Initialize(c.T(), c.n)
	for i := 0; i < c.n; i++ {
		for j := 0; j < length; j++ {
			index := j*c.alphabet + c.codes[i][j]
			m.Set(index, i)
		}
	}
}

// Package mtss implements the modification-tolerant signature scheme: a
// message is blocked, its blocks are covered by a cover-free family so that
// any small set of modified blocks can be localized, and the whole thing is
// bound together with a classical or post-quantum signature over a single
// digest.
package mtss

import (
	"fmt"
	"strings"

	"mtss/block"
	"mtss/cdss"
	"mtss/cff"
	"mtss/cffmatrix"
	"mtss/grouptesting"
	"mtss/mtsshash"
)

// Specification pins down every construction choice a signature was made
// with, so that verification can rebuild the exact same CFF, matrix and
// decoder.
type Specification struct {
	CDSSType      string
	HashType      string
	D             int
	CFFMethod     string
	CFFMatrixType string
	FileType      string
	Choice        int
	Number        int
}

// NewCFF builds the cover-free family construction named by method, for n
// columns tolerating d defectives.
func NewCFF(method string, d, n int) (cff.CFF, error) {
	var construction cff.Construction
	switch strings.ToLower(method) {
	case "sperner":
		construction = cff.Sperner{}
	case "sts":
		construction = cff.STS{}
	case "rs":
		construction = cff.RS{}
	default:
		return nil, fmt.Errorf("invalid CFF method: %s", method)
	}
	return construction.Build(d, n)
}

// NewCFFMatrix materializes c into the matrix representation named by
// matrixType.
func NewCFFMatrix(matrixType string, c cff.CFF) (cffmatrix.Matrix, error) {
	var m cffmatrix.Matrix
	switch strings.ToLower(matrixType) {
	case "list":
		m = &cffmatrix.ListMatrix{}
	case "compact":
		m = &cffmatrix.CompactMatrix{}
	default:
		return nil, fmt.Errorf("invalid CFF matrix type: %s", matrixType)
	}
	c.ToMatrix(m)
	return m, nil
}

// NewBlockedMessage splits file according to spec's FileType, Choice and
// Number.
func NewBlockedMessage(file string, spec Specification) (*block.Message, error) {
	var splitter block.Splitter
	switch strings.ToLower(spec.FileType) {
	case "text":
		splitter = block.Text{}
	case "image":
		splitter = block.Image{}
	default:
		return nil, fmt.Errorf("invalid file type: %s", spec.FileType)
	}
	return splitter.Split(file, spec.Choice, spec.Number)
}

// GeneralDecoder selects the cff-agnostic decoder that delegates to the
// matrix's own FindDefectives.
const GeneralDecoder = 0

// NewDecoder builds the group testing decoder for c, keyed either on
// gtChoice (GeneralDecoder selects the matrix-generic decoder) or, for any
// other value, on the CFF method named by method, which picks the
// method-specific decoder grounded on c's own structure.
func NewDecoder(gtChoice int, c cff.CFF, method string, m cffmatrix.Matrix) (grouptesting.Decoder, error) {
	if gtChoice == GeneralDecoder {
		return grouptesting.NewGeneral(c.N(), c.D(), c.T(), m), nil
	}

	switch strings.ToLower(method) {
	case "sperner":
		return grouptesting.NewSperner(c.N(), c.T()), nil
	case "sts":
		sts, ok := c.(*cff.SetSystem)
		if !ok {
			return nil, fmt.Errorf("sts decoder requires a set-system CFF")
		}
		return grouptesting.NewSTS(c.N(), c.T(), sts.Sets()), nil
	case "rs":
		code, ok := c.(*cff.Code)
		if !ok {
			return nil, fmt.Errorf("rs decoder requires a code CFF")
		}
		k := (code.CodeLength()-1)/c.D() + 1
		return grouptesting.NewRS(c.N(), c.D(), k, code.CodeLength(), code.Alphabet()), nil
	default:
		return nil, fmt.Errorf("invalid CFF method: %s", method)
	}
}

// KeyGen generates a fresh key pair for the named CDSS scheme.
func KeyGen(scheme string) (cdss.PrivateKey, cdss.PublicKey, error) {
	signer, err := cdss.New(scheme)
	if err != nil {
		return nil, nil, err
	}
	return signer.KeyGen()
}

// concatenateBlocks joins a set of blocks, selected by index, into one byte
// slice, in ascending index order.
func concatenateBlocks(blocks [][]byte, indices []int) []byte {
	var out []byte
	for _, i := range indices {
		out = append(out, blocks[i]...)
	}
	return out
}

// hashBlocks hashes each of msg's blocks individually, in order.
func hashBlocks(msg *block.Message, h mtsshash.Hasher) [][]byte {
	digests := make([][]byte, len(msg.Blocks))
	for i, b := range msg.Blocks {
		digests[i] = h.Sum(b)
	}
	return digests
}

// hexEncodeUpper renders data as uppercase hexadecimal.
func hexEncodeUpper(data []byte) string {
	const digits = "0123456789ABCDEF"
	out := make([]byte, 2*len(data))
	for i, b := range data {
		out[2*i] = digits[b>>4]
		out[2*i+1] = digits[b&0x0f]
	}
	return string(out)
}

// tString builds the T-string: every tuple digest, in order, uppercase hex
// followed by a space, then the whole-message digest hstar with no trailing
// space.
func tString(tupleDigests [][]byte, hstar []byte) string {
	var b strings.Builder
	for _, d := range tupleDigests {
		b.WriteString(hexEncodeUpper(d))
		b.WriteByte(' ')
	}
	b.WriteString(hexEncodeUpper(hstar))
	return b.String()
}

// signPrep builds the canonical string signed by the underlying CDSS scheme:
// the scheme, hash, file type, CFF method and CFF matrix type, then the block
// size, block count, d and t, followed by the T-string, separated by single
// spaces.
func signPrep(spec Specification, blockSize, numberOfBlocks, t int, ts string) string {
	return fmt.Sprintf("%s %s %s %s %s %d %d %d %d %s",
		spec.CDSSType, spec.HashType, spec.FileType, spec.CFFMethod, spec.CFFMatrixType,
		blockSize, numberOfBlocks, spec.D, t, ts)
}

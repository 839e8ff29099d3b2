package mtss

import (
	"fmt"

	"mtss/block"
	"mtss/cdss"
	"mtss/cff"
	"mtss/mtsshash"
)

// Sign produces a modification-tolerant signature over msg: every row of the
// CFF's matrix covers a group of blocks, whose concatenation is hashed into
// that row's tuple digest; the whole message is hashed once more into
// hstar; and a CDSS signature is taken over the canonical string combining
// the specification with every digest.
func Sign(msg *block.Message, spec Specification, c cff.CFF, sk cdss.PrivateKey) (*Signature, error) {
	h, err := mtsshash.New(spec.HashType)
	if err != nil {
		return nil, err
	}
	signer, err := cdss.New(spec.CDSSType)
	if err != nil {
		return nil, err
	}

	m, err := NewCFFMatrix(spec.CFFMatrixType, c)
	if err != nil {
		return nil, err
	}

	t := c.T()
	tupleDigests := make([][]byte, t)
	for i := 0; i < t; i++ {
		row := m.GetRow(i)
		tupleDigests[i] = h.Sum(concatenateBlocks(msg.Blocks, row))
	}

	hstar := h.Sum(msg.Message)
	ts := tString(tupleDigests, hstar)

	prep := signPrep(spec, msg.BlockSize, msg.NumberOfBlocks, t, ts)
	sigBytes, err := signer.Sign([]byte(prep), sk)
	if err != nil {
		return nil, fmt.Errorf("mtss: sign: %w", err)
	}

	return &Signature{
		CDSSType:       spec.CDSSType,
		HashType:       spec.HashType,
		FileType:       spec.FileType,
		CFFMethod:      spec.CFFMethod,
		CFFMatrixType:  spec.CFFMatrixType,
		BlockSize:      msg.BlockSize,
		NumberOfBlocks: msg.NumberOfBlocks,
		D:              spec.D,
		T:              t,
		TString:        ts,
		SignatureHex:   hexEncodeUpper(sigBytes),
	}, nil
}

// Verify checks sig against the (possibly modified) message msgM, re-blocked
// with the same geometry the signature was produced under, and the (possibly
// rebuilt) cover-free family cffM. It returns false immediately if the CDSS
// signature itself is invalid; true with no defectives if the whole-message
// digest is unchanged; otherwise it localizes the changed blocks through
// gtChoice's decoder.
func Verify(msgM *block.Message, cffM cff.CFF, sig *Signature, gtChoice int, pk cdss.PublicKey) (bool, []int, error) {
	signer, err := cdss.New(sig.CDSSType)
	if err != nil {
		return false, nil, err
	}
	h, err := mtsshash.New(sig.HashType)
	if err != nil {
		return false, nil, err
	}

	spec := Specification{
		CDSSType:      sig.CDSSType,
		HashType:      sig.HashType,
		FileType:      sig.FileType,
		CFFMethod:     sig.CFFMethod,
		CFFMatrixType: sig.CFFMatrixType,
		D:             sig.D,
	}
	prep := signPrep(spec, sig.BlockSize, sig.NumberOfBlocks, sig.T, sig.TString)
	sigBytes, err := sig.signatureBytes()
	if err != nil {
		return false, nil, err
	}
	if !signer.Verify([]byte(prep), sigBytes, pk) {
		return false, nil, nil
	}

	hexTuple := sig.tupleHexes()
	if len(hexTuple) == 0 {
		return false, nil, fmt.Errorf("mtss: empty T-string")
	}
	hstar, err := hexDecodeUpper(hexTuple[len(hexTuple)-1])
	if err != nil {
		return false, nil, err
	}
	tuple := make([][]byte, len(hexTuple)-1)
	for i, hx := range hexTuple[:len(hexTuple)-1] {
		tuple[i], err = hexDecodeUpper(hx)
		if err != nil {
			return false, nil, err
		}
	}

	hstarM := h.Sum(msgM.Message)
	if bytesEqual(hstar, hstarM) {
		return true, nil, nil
	}

	m, err := NewCFFMatrix(sig.CFFMatrixType, cffM)
	if err != nil {
		return false, nil, err
	}

	y := make([]int, sig.T)
	for i := 0; i < sig.T; i++ {
		row := m.GetRow(i)
		tupleM := h.Sum(concatenateBlocks(msgM.Blocks, row))
		if !bytesEqual(tuple[i], tupleM) {
			y[i] = 1
		}
	}

	decoder, err := NewDecoder(gtChoice, cffM, sig.CFFMethod, m)
	if err != nil {
		return false, nil, err
	}
	ok, defectives, err := decoder.FindDefectives(y)
	if err != nil {
		return false, nil, err
	}
	return ok, defectives, nil
}

// SignFile splits file per spec, builds its CFF and matrix, signs it, and
// writes the resulting signature to sigFile.
func SignFile(file string, spec Specification, sk cdss.PrivateKey, sigFile string) (*Signature, error) {
	msg, err := NewBlockedMessage(file, spec)
	if err != nil {
		return nil, err
	}
	c, err := NewCFF(spec.CFFMethod, spec.D, msg.NumberOfBlocks)
	if err != nil {
		return nil, err
	}
	sig, err := Sign(msg, spec, c, sk)
	if err != nil {
		return nil, err
	}
	if err := WriteSignatureFile(sigFile, sig); err != nil {
		return nil, err
	}
	return sig, nil
}

// VerifyFile reads a signature from sigFile, re-blocks fileM with the
// signature's recorded block size, rebuilds the CFF that block count
// requires, and verifies.
func VerifyFile(fileM string, sigFile string, gtChoice int, pk cdss.PublicKey) (bool, []int, error) {
	sig, err := ReadSignatureFile(sigFile)
	if err != nil {
		return false, nil, err
	}

	spec := sig.Spec(block.ChoiceFixedBlockSize, sig.BlockSize)
	msgM, err := NewBlockedMessage(fileM, spec)
	if err != nil {
		return false, nil, err
	}
	cffM, err := NewCFF(sig.CFFMethod, sig.D, msgM.NumberOfBlocks)
	if err != nil {
		return false, nil, err
	}

	return Verify(msgM, cffM, sig, gtChoice, pk)
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

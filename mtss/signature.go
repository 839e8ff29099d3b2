package mtss

import (
	"fmt"
	"strconv"
	"strings"
)

// signatureFieldCount is the number of newline-delimited fields in a
// serialized Signature: the five algorithm identifiers (scheme, hash, file
// type, CFF method, CFF matrix type), the block geometry, d, t, the T-string
// and the raw signature bytes' hex encoding.
const signatureFieldCount = 11

// Signature is a complete, verifiable modification-tolerant signature: the
// specification it was produced under, the block geometry it was computed
// over, the per-tuple and whole-message digests, and the CDSS signature
// bytes over all of it.
type Signature struct {
	CDSSType       string
	HashType       string
	FileType       string
	CFFMethod      string
	CFFMatrixType  string
	BlockSize      int
	NumberOfBlocks int
	D              int
	T              int
	TString        string
	SignatureHex   string
}

// String renders sig in its canonical 11-line text form, with no trailing
// newline.
func (sig *Signature) String() string {
	fields := []string{
		sig.CDSSType,
		sig.HashType,
		sig.FileType,
		sig.CFFMethod,
		sig.CFFMatrixType,
		strconv.Itoa(sig.BlockSize),
		strconv.Itoa(sig.NumberOfBlocks),
		strconv.Itoa(sig.D),
		strconv.Itoa(sig.T),
		sig.TString,
		sig.SignatureHex,
	}
	return strings.Join(fields, "\n")
}

// ParseSignature parses the canonical text form produced by Signature.String,
// tolerating an optional trailing newline.
func ParseSignature(data string) (*Signature, error) {
	trimmed := strings.TrimRight(data, "\n")
	parts := strings.Split(trimmed, "\n")
	if len(parts) != signatureFieldCount {
		return nil, fmt.Errorf("mtss: malformed signature: expected %d fields, got %d", signatureFieldCount, len(parts))
	}

	blockSize, err := strconv.Atoi(parts[5])
	if err != nil {
		return nil, fmt.Errorf("mtss: malformed signature block size: %w", err)
	}
	numberOfBlocks, err := strconv.Atoi(parts[6])
	if err != nil {
		return nil, fmt.Errorf("mtss: malformed signature block count: %w", err)
	}
	d, err := strconv.Atoi(parts[7])
	if err != nil {
		return nil, fmt.Errorf("mtss: malformed signature d: %w", err)
	}
	t, err := strconv.Atoi(parts[8])
	if err != nil {
		return nil, fmt.Errorf("mtss: malformed signature t: %w", err)
	}

	return &Signature{
		CDSSType:       parts[0],
		HashType:       parts[1],
		FileType:       parts[2],
		CFFMethod:      parts[3],
		CFFMatrixType:  parts[4],
		BlockSize:      blockSize,
		NumberOfBlocks: numberOfBlocks,
		D:              d,
		T:              t,
		TString:        parts[9],
		SignatureHex:   parts[10],
	}, nil
}

// Spec rebuilds the Specification sig was produced under, given the
// construction-time choices (file-splitting strategy) that are not
// themselves recorded in the signature text.
func (sig *Signature) Spec(choice, number int) Specification {
	return Specification{
		CDSSType:      sig.CDSSType,
		HashType:      sig.HashType,
		D:             sig.D,
		CFFMethod:     sig.CFFMethod,
		CFFMatrixType: sig.CFFMatrixType,
		FileType:      sig.FileType,
		Choice:        choice,
		Number:        number,
	}
}

// tupleHexes splits TString into its uppercase-hex tuple digests and, as the
// last element, the whole-message digest hstar.
func (sig *Signature) tupleHexes() []string {
	return strings.Fields(sig.TString)
}

// signatureBytes decodes SignatureHex back into raw CDSS signature bytes.
func (sig *Signature) signatureBytes() ([]byte, error) {
	return hexDecodeUpper(sig.SignatureHex)
}

func hexDecodeUpper(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("mtss: odd-length hex string")
	}
	out := make([]byte, len(s)/2)
	for i := 0; i < len(out); i++ {
		hi, err := hexNibble(s[2*i])
		if err != nil {
			return nil, err
		}
		lo, err := hexNibble(s[2*i+1])
		if err != nil {
			return nil, err
		}
		out[i] = hi<<4 | lo
	}
	return out, nil
}

func hexNibble(c byte) (byte, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	default:
		return 0, fmt.Errorf("mtss: invalid hex digit %q", c)
	}
}

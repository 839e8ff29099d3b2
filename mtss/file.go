package mtss

import (
	"fmt"
	"os"
)

// WriteSignatureFile writes sig's canonical text form to path, with no
// trailing newline.
func WriteSignatureFile(path string, sig *Signature) error {
	if err := os.WriteFile(path, []byte(sig.String()), 0o644); err != nil {
		return fmt.Errorf("mtss: write signature file %s: %w", path, err)
	}
	return nil
}

// ReadSignatureFile reads back a signature written by WriteSignatureFile.
func ReadSignatureFile(path string) (*Signature, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mtss: read signature file %s: %w", path, err)
	}
	sig, err := ParseSignature(string(data))
	if err != nil {
		return nil, fmt.Errorf("mtss: %s: %w", path, err)
	}
	return sig, nil
}

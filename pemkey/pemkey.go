// Package pemkey persists CDSS key material to PEM files: classical keys
// keep their DER encoding under the standard PUBLIC KEY / PRIVATE KEY block
// types, post-quantum keys are wrapped raw under a block type named after
// their scheme.
package pemkey

import (
	"encoding/pem"
	"fmt"
	"os"
)

const (
	blockTypeClassicalPublic  = "PUBLIC KEY"
	blockTypeClassicalPrivate = "PRIVATE KEY"
)

// WriteClassicalPublicKey PEM-encodes DER-encoded public key bytes under the
// PUBLIC KEY block type.
func WriteClassicalPublicKey(path string, der []byte) error {
	return writeBlock(path, blockTypeClassicalPublic, der)
}

// ReadClassicalPublicKey reads back a PEM file written by
// WriteClassicalPublicKey, returning the DER bytes.
func ReadClassicalPublicKey(path string) ([]byte, error) {
	return readBlock(path, blockTypeClassicalPublic)
}

// WriteClassicalPrivateKey PEM-encodes DER-encoded private key bytes under
// the PRIVATE KEY block type.
func WriteClassicalPrivateKey(path string, der []byte) error {
	return writeBlock(path, blockTypeClassicalPrivate, der)
}

// ReadClassicalPrivateKey reads back a PEM file written by
// WriteClassicalPrivateKey, returning the DER bytes.
func ReadClassicalPrivateKey(path string) ([]byte, error) {
	return readBlock(path, blockTypeClassicalPrivate)
}

// WritePQCPublicKey PEM-encodes a post-quantum public key's raw bytes under
// a block type naming its scheme, e.g. "DILITHIUM PUBLIC KEY".
func WritePQCPublicKey(path, scheme string, raw []byte) error {
	return writeBlock(path, pqcBlockType(scheme, "PUBLIC KEY"), raw)
}

// ReadPQCPublicKey reads back a PEM file written by WritePQCPublicKey.
func ReadPQCPublicKey(path, scheme string) ([]byte, error) {
	return readBlock(path, pqcBlockType(scheme, "PUBLIC KEY"))
}

// WritePQCPrivateKey PEM-encodes a post-quantum private key's raw bytes
// under a block type naming its scheme.
func WritePQCPrivateKey(path, scheme string, raw []byte) error {
	return writeBlock(path, pqcBlockType(scheme, "PRIVATE KEY"), raw)
}

// ReadPQCPrivateKey reads back a PEM file written by WritePQCPrivateKey.
func ReadPQCPrivateKey(path, scheme string) ([]byte, error) {
	return readBlock(path, pqcBlockType(scheme, "PRIVATE KEY"))
}

func pqcBlockType(scheme, suffix string) string {
	upper := make([]byte, len(scheme))
	for i, c := range []byte(scheme) {
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		upper[i] = c
	}
	return string(upper) + " " + suffix
}

func writeBlock(path, blockType string, bytes []byte) error {
	block := &pem.Block{Type: blockType, Bytes: bytes}
	data := pem.EncodeToMemory(block)
	if data == nil {
		return fmt.Errorf("pemkey: failed to encode %s block", blockType)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("pemkey: write %s: %w", path, err)
	}
	return nil
}

func readBlock(path, blockType string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pemkey: read %s: %w", path, err)
	}
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("pemkey: no PEM block found in %s", path)
	}
	if block.Type != blockType {
		return nil, fmt.Errorf("pemkey: %s: expected block type %q, got %q", path, blockType, block.Type)
	}
	return block.Bytes, nil
}

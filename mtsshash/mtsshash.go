// Package mtsshash adapts the hash primitives the signature scheme treats
// as interchangeable digest functions: block hashes and the whole-message
// digest are computed with whichever Hasher the signature names.
package mtsshash

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"
)

// Hasher computes a fixed-size digest of arbitrary data.
type Hasher interface {
	Sum(data []byte) []byte
	Size() int
}

// New returns the Hasher for one of the recognised identifiers: sha2256,
// sha2512, sha3256, sha3512 (case-insensitive).
func New(name string) (Hasher, error) {
	switch strings.ToUpper(name) {
	case "SHA2256":
		return sha2256{}, nil
	case "SHA2512":
		return sha2512{}, nil
	case "SHA3256":
		return sha3256{}, nil
	case "SHA3512":
		return sha3512{}, nil
	default:
		return nil, fmt.Errorf("invalid hash algorithm: %s", name)
	}
}

type sha2256 struct{}

func (sha2256) Sum(data []byte) []byte { s := sha256.Sum256(data); return s[:] }
func (sha2256) Size() int              { return sha256.Size }

type sha2512 struct{}

func (sha2512) Sum(data []byte) []byte { s := sha512.Sum512(data); return s[:] }
func (sha2512) Size() int              { return sha512.Size }

type sha3256 struct{}

func (sha3256) Sum(data []byte) []byte { s := sha3.Sum256(data); return s[:] }
func (sha3256) Size() int              { return 32 }

type sha3512 struct{}

func (sha3512) Sum(data []byte) []byte { s := sha3.Sum512(data); return s[:] }
func (sha3512) Size() int              { return 64 }

// Package cdss adapts the classical and post-quantum digital signature
// schemes a signature can be built on top of behind one interface, so the
// protocol layer never branches on which algorithm produced a signature.
package cdss

import "fmt"

// PrivateKey and PublicKey carry whatever encoding the underlying scheme
// uses natively (ASN.1 DER for the classical schemes, raw bytes for the
// post-quantum ones); Signer implementations know how to interpret their own.
type PrivateKey []byte

type PublicKey []byte

// Signer is a digital signature scheme: key generation, signing and
// verification over an arbitrary message.
type Signer interface {
	// Name identifies the scheme, as recorded in a signature's scheme field.
	Name() string
	KeyGen() (PrivateKey, PublicKey, error)
	Sign(msg []byte, sk PrivateKey) ([]byte, error)
	Verify(msg, sig []byte, pk PublicKey) bool
}

// New returns the Signer for one of the recognised scheme identifiers:
// ecdsa, rsa, dilithium, falcon, sphincsplus (case-insensitive).
func New(scheme string) (Signer, error) {
	switch normalizeScheme(scheme) {
	case "ecdsa":
		return ECDSA{}, nil
	case "rsa":
		return RSA{}, nil
	case "dilithium":
		return Dilithium{}, nil
	case "falcon":
		return Falcon{}, nil
	case "sphincsplus":
		return SPHINCSPlus{}, nil
	default:
		return nil, fmt.Errorf("invalid CDSS scheme: %s", scheme)
	}
}

func normalizeScheme(s string) string {
	out := make([]byte, 0, len(s))
	for _, c := range []byte(s) {
		switch {
		case c >= 'A' && c <= 'Z':
			out = append(out, c+'a'-'A')
		case c == '+':
			out = append(out, 'p', 'l', 'u', 's')
		case c == '-' || c == '_':
			continue
		default:
			out = append(out, c)
		}
	}
	return string(out)
}

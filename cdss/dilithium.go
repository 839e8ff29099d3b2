package cdss

import (
	"fmt"

	"github.com/cloudflare/circl/sign/dilithium/mode3"
)

// Dilithium is CRYSTALS-Dilithium at security level 3 (mode3), a
// lattice-based post-quantum signature scheme.
type Dilithium struct{}

func (Dilithium) Name() string { return "Dilithium" }

func (Dilithium) KeyGen() (PrivateKey, PublicKey, error) {
	pub, priv, err := mode3.GenerateKey(nil)
	if err != nil {
		return nil, nil, fmt.Errorf("dilithium keygen: %w", err)
	}
	return PrivateKey(priv.Bytes()), PublicKey(pub.Bytes()), nil
}

func (Dilithium) Sign(msg []byte, sk PrivateKey) ([]byte, error) {
	var priv mode3.PrivateKey
	if err := priv.UnmarshalBinary(sk); err != nil {
		return nil, fmt.Errorf("dilithium parse private key: %w", err)
	}
	sig := make([]byte, mode3.SignatureSize)
	mode3.SignTo(&priv, msg, sig)
	return sig, nil
}

func (Dilithium) Verify(msg, sig []byte, pk PublicKey) bool {
	var pub mode3.PublicKey
	if err := pub.UnmarshalBinary(pk); err != nil {
		return false
	}
	return mode3.Verify(&pub, msg, sig)
}

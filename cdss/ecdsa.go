package cdss

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"crypto/x509"
	"fmt"
)

// ECDSA signs over the P-256 curve, hashing the message with SHA-256 before
// producing an ASN.1 signature.
type ECDSA struct{}

func (ECDSA) Name() string { return "ECDSA" }

func (ECDSA) KeyGen() (PrivateKey, PublicKey, error) {
	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("ecdsa keygen: %w", err)
	}
	skBytes, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return nil, nil, fmt.Errorf("ecdsa marshal private key: %w", err)
	}
	pkBytes, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	if err != nil {
		return nil, nil, fmt.Errorf("ecdsa marshal public key: %w", err)
	}
	return PrivateKey(skBytes), PublicKey(pkBytes), nil
}

func (ECDSA) Sign(msg []byte, sk PrivateKey) ([]byte, error) {
	key, err := x509.ParsePKCS8PrivateKey(sk)
	if err != nil {
		return nil, fmt.Errorf("ecdsa parse private key: %w", err)
	}
	priv, ok := key.(*ecdsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("ecdsa: not an ECDSA private key")
	}
	digest := sha256.Sum256(msg)
	sig, err := ecdsa.SignASN1(rand.Reader, priv, digest[:])
	if err != nil {
		return nil, fmt.Errorf("ecdsa sign: %w", err)
	}
	return sig, nil
}

func (ECDSA) Verify(msg, sig []byte, pk PublicKey) bool {
	key, err := x509.ParsePKIXPublicKey(pk)
	if err != nil {
		return false
	}
	pub, ok := key.(*ecdsa.PublicKey)
	if !ok {
		return false
	}
	digest := sha256.Sum256(msg)
	return ecdsa.VerifyASN1(pub, digest[:], sig)
}

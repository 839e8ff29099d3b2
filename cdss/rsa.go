package cdss

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"fmt"
)

// rsaKeyBits is the modulus size used for every generated RSA key pair.
const rsaKeyBits = 2048

// RSA signs with RSA-PSS over a SHA-256 digest of the message.
type RSA struct{}

func (RSA) Name() string { return "RSA" }

func (RSA) KeyGen() (PrivateKey, PublicKey, error) {
	priv, err := rsa.GenerateKey(rand.Reader, rsaKeyBits)
	if err != nil {
		return nil, nil, fmt.Errorf("rsa keygen: %w", err)
	}
	skBytes, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return nil, nil, fmt.Errorf("rsa marshal private key: %w", err)
	}
	pkBytes, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	if err != nil {
		return nil, nil, fmt.Errorf("rsa marshal public key: %w", err)
	}
	return PrivateKey(skBytes), PublicKey(pkBytes), nil
}

func (RSA) Sign(msg []byte, sk PrivateKey) ([]byte, error) {
	key, err := x509.ParsePKCS8PrivateKey(sk)
	if err != nil {
		return nil, fmt.Errorf("rsa parse private key: %w", err)
	}
	priv, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("rsa: not an RSA private key")
	}
	digest := sha256.Sum256(msg)
	sig, err := rsa.SignPSS(rand.Reader, priv, crypto.SHA256, digest[:], nil)
	if err != nil {
		return nil, fmt.Errorf("rsa sign: %w", err)
	}
	return sig, nil
}

func (RSA) Verify(msg, sig []byte, pk PublicKey) bool {
	key, err := x509.ParsePKIXPublicKey(pk)
	if err != nil {
		return false
	}
	pub, ok := key.(*rsa.PublicKey)
	if !ok {
		return false
	}
	digest := sha256.Sum256(msg)
	return rsa.VerifyPSS(pub, crypto.SHA256, digest[:], sig, nil) == nil
}

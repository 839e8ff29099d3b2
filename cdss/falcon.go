package cdss

import (
	"fmt"

	"github.com/pornin/go-fn-dsa/fndsa"
)

// falconLogN selects degree 512 (security level roughly comparable to
// Falcon-512 / FN-DSA-512).
const falconLogN = uint(9)

// Falcon is the NTRU-lattice, fast-Fourier-sampling signature scheme
// standardised as FN-DSA.
type Falcon struct{}

func (Falcon) Name() string { return "Falcon" }

func (Falcon) KeyGen() (PrivateKey, PublicKey, error) {
	sk, vk, err := fndsa.KeyGen(falconLogN, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("falcon keygen: %w", err)
	}
	return PrivateKey(sk), PublicKey(vk), nil
}

func (Falcon) Sign(msg []byte, sk PrivateKey) ([]byte, error) {
	sig, err := fndsa.Sign(nil, sk, fndsa.DOMAIN_NONE, 0, msg)
	if err != nil {
		return nil, fmt.Errorf("falcon sign: %w", err)
	}
	return sig, nil
}

func (Falcon) Verify(msg, sig []byte, pk PublicKey) bool {
	return fndsa.Verify(pk, fndsa.DOMAIN_NONE, 0, msg, sig)
}

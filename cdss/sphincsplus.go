package cdss

import (
	"fmt"

	circlsign "github.com/cloudflare/circl/sign"
	"github.com/cloudflare/circl/sign/schemes"
)

// sphincsPlusSchemeName is the hash-based, stateless signature scheme used
// for SPHINCS+: the small-signature, SHA2 parameter set.
const sphincsPlusSchemeName = "SPHINCS+-SHA2-128s-simple"

// SPHINCSPlus is the hash-based SPHINCS+ signature scheme, resolved through
// circl's generic scheme registry rather than a dedicated sub-package.
type SPHINCSPlus struct{}

func (SPHINCSPlus) Name() string { return "SPHINCS+" }

func sphincsPlusScheme() (circlsign.Scheme, error) {
	scheme := schemes.ByName(sphincsPlusSchemeName)
	if scheme == nil {
		return nil, fmt.Errorf("sphincsplus: unknown scheme %q", sphincsPlusSchemeName)
	}
	return scheme, nil
}

func (SPHINCSPlus) KeyGen() (PrivateKey, PublicKey, error) {
	scheme, err := sphincsPlusScheme()
	if err != nil {
		return nil, nil, err
	}
	pub, priv, err := scheme.GenerateKey()
	if err != nil {
		return nil, nil, fmt.Errorf("sphincsplus keygen: %w", err)
	}
	skBytes, err := priv.MarshalBinary()
	if err != nil {
		return nil, nil, fmt.Errorf("sphincsplus marshal private key: %w", err)
	}
	pkBytes, err := pub.MarshalBinary()
	if err != nil {
		return nil, nil, fmt.Errorf("sphincsplus marshal public key: %w", err)
	}
	return PrivateKey(skBytes), PublicKey(pkBytes), nil
}

func (SPHINCSPlus) Sign(msg []byte, sk PrivateKey) ([]byte, error) {
	scheme, err := sphincsPlusScheme()
	if err != nil {
		return nil, err
	}
	priv, err := scheme.UnmarshalBinaryPrivateKey(sk)
	if err != nil {
		return nil, fmt.Errorf("sphincsplus parse private key: %w", err)
	}
	return scheme.Sign(priv, msg, nil), nil
}

func (SPHINCSPlus) Verify(msg, sig []byte, pk PublicKey) bool {
	scheme, err := sphincsPlusScheme()
	if err != nil {
		return false
	}
	pub, err := scheme.UnmarshalBinaryPublicKey(pk)
	if err != nil {
		return false
	}
	return scheme.Verify(pub, msg, sig, nil)
}

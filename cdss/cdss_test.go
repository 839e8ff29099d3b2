package cdss

import "testing"

func TestNewRejectsUnknownScheme(t *testing.T) {
	if _, err := New("unknown"); err == nil {
		t.Fatalf("expected error for unknown scheme")
	}
}

func TestNewRecognisesEveryScheme(t *testing.T) {
	for _, name := range []string{"ecdsa", "ECDSA", "rsa", "dilithium", "falcon", "sphincsplus", "SPHINCS+", "sphincs-plus"} {
		signer, err := New(name)
		if err != nil {
			t.Fatalf("New(%s): %v", name, err)
		}
		if signer.Name() == "" {
			t.Fatalf("New(%s): empty scheme name", name)
		}
	}
}

func TestECDSARoundTrip(t *testing.T) {
	signer := ECDSA{}
	sk, pk, err := signer.KeyGen()
	if err != nil {
		t.Fatalf("keygen: %v", err)
	}
	msg := []byte("modification-tolerant signature scheme")
	sig, err := signer.Sign(msg, sk)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if !signer.Verify(msg, sig, pk) {
		t.Fatalf("verify failed on a genuine signature")
	}
	if signer.Verify([]byte("tampered"), sig, pk) {
		t.Fatalf("verify succeeded on a tampered message")
	}
}

func TestRSARoundTrip(t *testing.T) {
	signer := RSA{}
	sk, pk, err := signer.KeyGen()
	if err != nil {
		t.Fatalf("keygen: %v", err)
	}
	msg := []byte("modification-tolerant signature scheme")
	sig, err := signer.Sign(msg, sk)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if !signer.Verify(msg, sig, pk) {
		t.Fatalf("verify failed on a genuine signature")
	}
	if signer.Verify([]byte("tampered"), sig, pk) {
		t.Fatalf("verify succeeded on a tampered message")
	}
}

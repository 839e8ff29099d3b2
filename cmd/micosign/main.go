// Command micosign signs a file with a modification-tolerant signature:
// it generates a fresh CDSS key pair, splits the file into blocks, builds a
// cover-free family over the block count, and writes the resulting signature
// alongside the PEM-encoded public and private keys.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"mtss/block"
	"mtss/cdss"
	"mtss/mtss"
	"mtss/pemkey"
)

func main() {
	fs := flag.NewFlagSet("micosign", flag.ExitOnError)
	scheme := fs.String("scheme", "ecdsa", "CDSS scheme: ecdsa|rsa|dilithium|falcon|sphincsplus")
	hash := fs.String("hash", "SHA2256", "hash algorithm: SHA2256|SHA2512|SHA3256|SHA3512")
	fileType := fs.String("filetype", "text", "file type: text|image")
	cffMethod := fs.String("cff", "sperner", "CFF construction: sperner|sts|rs")
	matrixType := fs.String("matrix", "list", "CFF matrix representation: list|compact")
	d := fs.Int("d", 1, "number of defectives the construction must tolerate")
	choice := fs.Int("choice", block.ChoiceFixedBlockSize, "block separation: 0 fixed size, 1 fixed count")
	number := fs.Int("number", 1, "block size or block count, per -choice")
	in := fs.String("in", "", "file to sign (required)")
	sigOut := fs.String("sig", "signature.txt", "path to write the signature")
	pubOut := fs.String("pub", "public.pem", "path to write the public key")
	privOut := fs.String("priv", "private.pem", "path to write the private key")
	fs.Parse(os.Args[1:])

	if *in == "" {
		log.Fatalf("micosign: -in is required")
	}

	spec := mtss.Specification{
		CDSSType:      *scheme,
		HashType:      *hash,
		D:             *d,
		CFFMethod:     *cffMethod,
		CFFMatrixType: *matrixType,
		FileType:      *fileType,
		Choice:        *choice,
		Number:        *number,
	}

	sk, pk, err := mtss.KeyGen(*scheme)
	if err != nil {
		log.Fatalf("micosign: keygen: %v", err)
	}
	if err := writeKeyPair(*scheme, sk, pk, *privOut, *pubOut); err != nil {
		log.Fatalf("micosign: %v", err)
	}

	sig, err := mtss.SignFile(*in, spec, sk, *sigOut)
	if err != nil {
		log.Fatalf("micosign: sign: %v", err)
	}

	fmt.Printf("micosign: signed %s: %d blocks, %d tests, d=%d\n", *in, sig.NumberOfBlocks, sig.T, sig.D)
	fmt.Printf("micosign: signature written to %s\n", *sigOut)
}

func writeKeyPair(scheme string, sk cdss.PrivateKey, pk cdss.PublicKey, privPath, pubPath string) error {
	switch normalizeScheme(scheme) {
	case "ecdsa", "rsa":
		if err := pemkey.WriteClassicalPrivateKey(privPath, sk); err != nil {
			return err
		}
		return pemkey.WriteClassicalPublicKey(pubPath, pk)
	default:
		if err := pemkey.WritePQCPrivateKey(privPath, scheme, sk); err != nil {
			return err
		}
		return pemkey.WritePQCPublicKey(pubPath, scheme, pk)
	}
}

func normalizeScheme(s string) string {
	out := make([]byte, 0, len(s))
	for _, c := range []byte(s) {
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		out = append(out, c)
	}
	return string(out)
}

package mtsshash

import (
	"bytes"
	"testing"
)

func TestNewRejectsUnknownAlgorithm(t *testing.T) {
	if _, err := New("md5"); err == nil {
		t.Fatalf("expected error for unknown algorithm")
	}
}

func TestNewIsCaseInsensitive(t *testing.T) {
	if _, err := New("sha2256"); err != nil {
		t.Fatalf("New(sha2256): %v", err)
	}
	if _, err := New("SHA2256"); err != nil {
		t.Fatalf("New(SHA2256): %v", err)
	}
}

func TestHashersProduceStableFixedSizeDigests(t *testing.T) {
	names := []string{"SHA2256", "SHA2512", "SHA3256", "SHA3512"}
	for _, name := range names {
		h, err := New(name)
		if err != nil {
			t.Fatalf("New(%s): %v", name, err)
		}
		d1 := h.Sum([]byte("hello world"))
		d2 := h.Sum([]byte("hello world"))
		if !bytes.Equal(d1, d2) {
			t.Fatalf("%s: Sum is not deterministic", name)
		}
		if len(d1) != h.Size() {
			t.Fatalf("%s: digest length = %d, want Size() = %d", name, len(d1), h.Size())
		}
		d3 := h.Sum([]byte("different input"))
		if bytes.Equal(d1, d3) {
			t.Fatalf("%s: distinct inputs produced equal digests", name)
		}
	}
}

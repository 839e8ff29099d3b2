package cff

import "testing"

func TestFindRSParameters(t *testing.T) {
	k, codeLen, q := findRSParameters(16, 2)
	if q < codeLen {
		t.Fatalf("q = %d must be >= codeLen = %d", q, codeLen)
	}
	if !isPrime(q) {
		t.Fatalf("q = %d is not prime", q)
	}
	n := intPow(q, k)
	if n < 16 {
		t.Fatalf("q^k = %d, want >= n = 16", n)
	}
}

func TestGenerateOAIsConsistentWithPolynomials(t *testing.T) {
	k, codeLen, q := 2, 3, 3
	oa := generateOA(k, codeLen, q)
	if len(oa) != intPow(q, k) {
		t.Fatalf("got %d codewords, want %d", len(oa), intPow(q, k))
	}
	for r, row := range oa {
		if len(row) != codeLen {
			t.Fatalf("row has length %d, want %d", len(row), codeLen)
		}
		for _, v := range row {
			if v < 0 || v >= q {
				t.Fatalf("value %d out of range [0,%d)", v, q)
			}
		}
		// Row r evaluates the polynomial whose coefficients are the base-q
		// digits of r, leading coefficient first: f(x) = (r/q)*x + r%q.
		for x, v := range row {
			if want := (r/q*x + r%q) % q; v != want {
				t.Fatalf("row %d at x=%d = %d, want %d", r, x, v, want)
			}
		}
	}
}

func TestRSBuildDimensions(t *testing.T) {
	c, err := RS{}.Build(2, 16)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	code := c.(*Code)
	if code.N() != 16 {
		t.Fatalf("N = %d, want 16", code.N())
	}
	if code.T() != code.CodeLength()*code.Alphabet() {
		t.Fatalf("T() = %d, want CodeLength()*Alphabet() = %d", code.T(), code.CodeLength()*code.Alphabet())
	}
}

func TestIsPrime(t *testing.T) {
	primes := []int{2, 3, 5, 7, 11, 13}
	for _, p := range primes {
		if !isPrime(p) {
			t.Fatalf("isPrime(%d) = false, want true", p)
		}
	}
	composites := []int{0, 1, 4, 6, 9, 15}
	for _, c := range composites {
		if isPrime(c) {
			t.Fatalf("isPrime(%d) = true, want false", c)
		}
	}
}

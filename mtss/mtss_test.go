package mtss

import "testing"

func TestNewCFFRejectsUnknownMethod(t *testing.T) {
	if _, err := NewCFF("unknown", 1, 10); err == nil {
		t.Fatalf("expected error for unknown CFF method")
	}
}

func TestNewCFFMatrixRejectsUnknownType(t *testing.T) {
	c, err := NewCFF("sperner", 1, 10)
	if err != nil {
		t.Fatalf("NewCFF: %v", err)
	}
	if _, err := NewCFFMatrix("unknown", c); err == nil {
		t.Fatalf("expected error for unknown matrix type")
	}
}

func TestNewCFFMatrixBuildsBothRepresentations(t *testing.T) {
	c, err := NewCFF("sperner", 1, 10)
	if err != nil {
		t.Fatalf("NewCFF: %v", err)
	}
	for _, matrixType := range []string{"list", "compact"} {
		m, err := NewCFFMatrix(matrixType, c)
		if err != nil {
			t.Fatalf("NewCFFMatrix(%s): %v", matrixType, err)
		}
		row := m.GetRow(0)
		if row == nil {
			t.Logf("matrix type %s: row 0 is empty, which is fine for some CFFs", matrixType)
		}
	}
}

func TestNewDecoderGeneralDoesNotRequireConcreteType(t *testing.T) {
	c, err := NewCFF("sperner", 1, 10)
	if err != nil {
		t.Fatalf("NewCFF: %v", err)
	}
	m, err := NewCFFMatrix("list", c)
	if err != nil {
		t.Fatalf("NewCFFMatrix: %v", err)
	}
	if _, err := NewDecoder(GeneralDecoder, c, "sperner", m); err != nil {
		t.Fatalf("NewDecoder: %v", err)
	}
}

func TestNewDecoderSpecificDispatchesByMethod(t *testing.T) {
	c, err := NewCFF("sts", 2, 7)
	if err != nil {
		t.Fatalf("NewCFF: %v", err)
	}
	m, err := NewCFFMatrix("list", c)
	if err != nil {
		t.Fatalf("NewCFFMatrix: %v", err)
	}
	if _, err := NewDecoder(1, c, "sts", m); err != nil {
		t.Fatalf("NewDecoder: %v", err)
	}
}

func TestNewBlockedMessageRejectsUnknownFileType(t *testing.T) {
	spec := Specification{FileType: "unknown"}
	if _, err := NewBlockedMessage("irrelevant", spec); err == nil {
		t.Fatalf("expected error for unknown file type")
	}
}

func TestSignPrepFieldOrder(t *testing.T) {
	spec := Specification{
		CDSSType:      "ECDSA",
		HashType:      "SHA2256",
		FileType:      "text",
		CFFMethod:     "sperner",
		CFFMatrixType: "list",
		D:             1,
	}
	got := signPrep(spec, 10, 5, 6, "AABB 1122")
	want := "ECDSA SHA2256 text sperner list 10 5 1 6 AABB 1122"
	if got != want {
		t.Fatalf("signPrep = %q, want %q", got, want)
	}
}

package scram

import "testing"

func TestAlgorithmNamesAndSizes(t *testing.T) {
	if SHA1.Name() != "SCRAM-SHA-1" {
		t.Errorf("SHA1.Name() = %q", SHA1.Name())
	}
	if SHA256.Name() != "SCRAM-SHA-256" {
		t.Errorf("SHA256.Name() = %q", SHA256.Name())
	}
	if SHA1.HashSize() != 20 {
		t.Errorf("SHA1.HashSize() = %d, want 20", SHA1.HashSize())
	}
	if SHA256.HashSize() != 32 {
		t.Errorf("SHA256.HashSize() = %d, want 32", SHA256.HashSize())
	}
}

func TestAlgorithmZeroValuePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for zero-value Algorithm")
		}
	}()
	var zero Algorithm
	_ = zero.Name()
}

func TestAlgorithmEquality(t *testing.T) {
	if SHA1 == SHA256 {
		t.Fatal("SHA1 and SHA256 must compare unequal")
	}
	if SHA256 != SHA256 {
		t.Fatal("SHA256 must equal itself")
	}
}

func TestStdlibHashProviderMatchesAlgorithm(t *testing.T) {
	p := newStdlibHashProvider(SHA256)
	if p.Size() != SHA256.HashSize() {
		t.Fatalf("Size() = %d, want %d", p.Size(), SHA256.HashSize())
	}
	if len(p.Hash([]byte("hello"))) != SHA256.HashSize() {
		t.Fatal("Hash output has wrong length")
	}
	if len(p.HMAC([]byte("key"), []byte("data"))) != SHA256.HashSize() {
		t.Fatal("HMAC output has wrong length")
	}
}

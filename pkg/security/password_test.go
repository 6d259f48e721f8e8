package security

import (
	"strings"
	"testing"

	"github.com/red-stick-digital/brga-backend/pkg/config"
)

func testPasswordConfig() config.PasswordConfig {
	return config.PasswordConfig{
		ArgonMemoryKB:    8,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     8,
		ArgonKeyLen:      16,
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse", testPasswordConfig())
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Fatalf("unexpected hash format %q", hash)
	}

	ok, err := VerifyPassword("correct horse", hash)
	if err != nil {
		t.Fatalf("VerifyPassword returned error: %v", err)
	}
	if !ok {
		t.Fatal("expected matching password to verify")
	}

	ok, err = VerifyPassword("wrong horse", hash)
	if err != nil {
		t.Fatalf("VerifyPassword returned error: %v", err)
	}
	if ok {
		t.Fatal("expected mismatched password to fail verification")
	}
}

func TestVerifyPasswordRejectsMalformedHash(t *testing.T) {
	if _, err := VerifyPassword("anything", "not-a-hash"); err != ErrInvalidHash {
		t.Fatalf("expected ErrInvalidHash, got %v", err)
	}
}

func TestGenerateTempPasswordShape(t *testing.T) {
	pw, err := GenerateTempPassword(12)
	if err != nil {
		t.Fatalf("GenerateTempPassword returned error: %v", err)
	}
	if len(pw) != 13 {
		t.Fatalf("expected 12 alphanumeric chars plus suffix, got %q (len %d)", pw, len(pw))
	}
	if !strings.HasSuffix(pw, "!") {
		t.Fatalf("expected symbol suffix, got %q", pw)
	}
	for _, r := range strings.TrimSuffix(pw, "!") {
		if !isAlphanumeric(r) {
			t.Fatalf("expected alphanumeric body, found %q in %q", r, pw)
		}
	}
}

func TestGenerateTempPasswordUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		pw, err := GenerateTempPassword(12)
		if err != nil {
			t.Fatalf("GenerateTempPassword returned error: %v", err)
		}
		if seen[pw] {
			t.Fatalf("duplicate temp password generated: %q", pw)
		}
		seen[pw] = true
	}
}

func TestGenerateTempPasswordRejectsNonPositiveLength(t *testing.T) {
	if _, err := GenerateTempPassword(0); err == nil {
		t.Fatal("expected error for zero length")
	}
}

package util

import (
	"errors"
	"testing"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "correct horse" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !VerifyPassword("correct horse", hash) {
		t.Fatal("expected the original password to verify")
	}
	if VerifyPassword("battery staple", hash) {
		t.Fatal("expected a different password to fail")
	}
}

func TestHashPasswordIsSalted(t *testing.T) {
	a, err := HashPassword("same-input")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	b, err := HashPassword("same-input")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if a == b {
		t.Fatal("two hashes of the same password should differ")
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("123456"); err != nil {
		t.Fatalf("six characters should pass, got %v", err)
	}
	if err := ValidatePassword("12345"); !errors.Is(err, ErrPasswordTooShort) {
		t.Fatalf("expected ErrPasswordTooShort, got %v", err)
	}
	if err := ValidatePassword(""); !errors.Is(err, ErrPasswordTooShort) {
		t.Fatalf("expected ErrPasswordTooShort for empty input, got %v", err)
	}
	// Whitespace is part of the password; raw length is what counts.
	if err := ValidatePassword("1234  "); err != nil {
		t.Fatalf("six raw characters with trailing spaces should pass, got %v", err)
	}
	if err := ValidatePassword("      "); err != nil {
		t.Fatalf("six spaces meet the length policy, got %v", err)
	}
}

func TestVerifyPasswordRejectsGarbageHash(t *testing.T) {
	if VerifyPassword("anything", "not-a-bcrypt-hash") {
		t.Fatal("malformed hash should never verify")
	}
}

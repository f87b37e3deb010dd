package util

import (
	"strings"
	"testing"
)

func TestGenerateOTPFormat(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 10000; i++ {
		code, err := GenerateOTP(6)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if len(code) != 6 {
			t.Fatalf("expected 6 characters, got %q", code)
		}
		for _, r := range code {
			if !strings.ContainsRune(OTPAlphabet, r) {
				t.Fatalf("code %q contains %q outside the alphabet", code, r)
			}
		}
		seen[code] = struct{}{}
	}
	// 10k draws from a 32^6 space should essentially never collide en masse.
	if len(seen) < 9900 {
		t.Fatalf("suspiciously many duplicate codes: %d unique of 10000", len(seen))
	}
}

func TestGenerateOTPAlphabetExcludesLookalikes(t *testing.T) {
	// L is deliberately kept; uppercase-only codes leave nothing to
	// confuse it with.
	for _, r := range "0O1I" {
		if strings.ContainsRune(OTPAlphabet, r) {
			t.Fatalf("alphabet must not contain %q", r)
		}
	}
	if !strings.ContainsRune(OTPAlphabet, 'L') {
		t.Fatal("alphabet must retain L")
	}
	if len(OTPAlphabet) != 32 {
		t.Fatalf("expected 32 symbols, got %d", len(OTPAlphabet))
	}
}

func TestGenerateOTPDefaultsBadLengthToSix(t *testing.T) {
	for _, length := range []int{0, -3} {
		code, err := GenerateOTP(length)
		if err != nil {
			t.Fatalf("generate(%d): %v", length, err)
		}
		if len(code) != 6 {
			t.Fatalf("expected fallback to 6 characters, got %q", code)
		}
	}
}

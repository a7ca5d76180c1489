package auth

import (
	"strings"
	"testing"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}
	if !strings.HasPrefix(hash, "$2a$") && !strings.HasPrefix(hash, "$2b$") {
		t.Errorf("hash %q does not look like bcrypt", hash)
	}

	match, err := CheckPassword("correct horse battery staple", hash)
	if err != nil {
		t.Fatalf("CheckPassword() error: %v", err)
	}
	if !match {
		t.Error("CheckPassword() = false for correct password")
	}
}

func TestCheckPasswordMismatch(t *testing.T) {
	hash, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}

	match, err := CheckPassword("wrong", hash)
	if err != nil {
		t.Fatalf("CheckPassword() unexpected error on mismatch: %v", err)
	}
	if match {
		t.Error("CheckPassword() = true for wrong password")
	}
}

func TestCheckPasswordMalformedHash(t *testing.T) {
	match, err := CheckPassword("secret", "not-a-bcrypt-hash")
	if err == nil {
		t.Error("CheckPassword() expected error for malformed hash")
	}
	if match {
		t.Error("CheckPassword() = true for malformed hash")
	}
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	h1, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}
	h2, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same password are identical, salt missing")
	}
}

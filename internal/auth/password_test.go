package auth

import "testing"

func TestHashAndVerifyPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("123456")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "123456" {
		t.Fatalf("hash equals the plaintext password")
	}

	if !VerifyPassword(hash, "123456") {
		t.Fatalf("expected matching password to verify")
	}
	if VerifyPassword(hash, "654321") {
		t.Fatalf("expected non-matching password to fail verification")
	}
}

func TestVerifyPassword_InvalidHash(t *testing.T) {
	t.Parallel()

	if VerifyPassword("not-a-bcrypt-hash", "123456") {
		t.Fatalf("expected garbage hash to fail verification")
	}
}

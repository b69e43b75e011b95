package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestNewTokenAndVerify_Success(t *testing.T) {
	t.Parallel()

	secret := "super-secret"
	userID := uint64(42)

	tok, err := NewToken(secret, userID)
	if err != nil {
		t.Fatalf("NewToken error: %v", err)
	}

	gotID, ok := VerifyToken(secret, tok)
	if !ok {
		t.Fatalf("VerifyToken reported invalid for a fresh token")
	}
	if gotID != userID {
		t.Fatalf("userID mismatch: got %d want %d", gotID, userID)
	}
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewToken("right-secret", 7)
	if err != nil {
		t.Fatalf("NewToken error: %v", err)
	}

	if _, ok := VerifyToken("wrong-secret", tok); ok {
		t.Fatalf("expected verification failure for wrong secret")
	}
}

func TestVerifyToken_Expired(t *testing.T) {
	t.Parallel()

	secret := "secret"
	claims := jwt.MapClaims{
		"sub": 7,
		"exp": time.Now().UTC().Add(-time.Minute).Unix(),
		"iat": time.Now().UTC().Add(-2 * time.Minute).Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}

	if _, ok := VerifyToken(secret, tok); ok {
		t.Fatalf("expected verification failure for expired token")
	}
}

func TestVerifyToken_MissingSubject(t *testing.T) {
	t.Parallel()

	secret := "secret"
	claims := jwt.MapClaims{
		"exp": time.Now().UTC().Add(time.Hour).Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}

	if _, ok := VerifyToken(secret, tok); ok {
		t.Fatalf("expected verification failure for token without sub claim")
	}
}

func TestVerifyToken_MalformedString(t *testing.T) {
	t.Parallel()

	if _, ok := VerifyToken("k", "not.a.jwt"); ok {
		t.Fatalf("expected verification failure for malformed token")
	}
}

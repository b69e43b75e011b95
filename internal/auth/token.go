package auth // package auth provides credential helpers: hashing, tokens, request identity

import (
	"time" // time utilities for generating expirations

	"github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// TokenTTL is the fixed lifetime of an access token. There is no refresh
// flow; clients log in again when the token expires.
const TokenTTL = 3 * time.Hour

// NewToken builds and signs an HS256 JWT for a user. The JWT carries the
// standard claims: subject (sub) holding the numeric user ID, expiration
// (exp) and issued at (iat).
func NewToken(secret string, userID uint64) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": now.Add(TokenTTL).Unix(),
		"iat": now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// VerifyToken checks a token's signature and expiry against the secret and
// yields the embedded user ID. Any failure (bad signature, expired,
// malformed, missing subject) reports ok=false; callers treat that as
// "unauthenticated" rather than an error.
func VerifyToken(secret, raw string) (uint64, bool) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		// Reject tokens signed with anything but HMAC.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return 0, false
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false
	}
	// JWT numeric values decode as float64.
	sub, ok := claims["sub"].(float64)
	if !ok || sub <= 0 {
		return 0, false
	}
	return uint64(sub), true
}

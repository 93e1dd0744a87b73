package auth // package auth signs and verifies the session cookie token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library for creating and parsing signed tokens
)

// The session cookie does not carry the credential itself — only the
// session store does.  The cookie value is an HS256-signed token whose
// subject is the opaque session ID, so a tampered or expired cookie is
// rejected before the store is ever consulted.

// ErrInvalidToken covers every way a cookie token can fail
// verification: bad signature, wrong algorithm, expired, or missing
// subject.  Callers treat it identically to "no session".
var ErrInvalidToken = errors.New("invalid session token")

// NewSessionToken builds and signs an HS256 token for a session ID.
// The expiry mirrors the session store TTL so both halves of a
// session die together.
func NewSessionToken(secret, sessionID string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub": sessionID,
		"exp": now.Add(ttl).Unix(),
		"iat": now.Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(secret))
}

// ParseSessionToken verifies the token and returns the session ID it
// carries.  Only HMAC-signed tokens are accepted.
func ParseSessionToken(secret, raw string) (string, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrInvalidToken
	}
	return sub, nil
}

package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is the session lifetime used when no TTL is configured.
const DefaultTokenTTL = 7 * 24 * time.Hour

// Claims defines the JWT claims a session token carries.
type Claims struct {
	jwt.RegisteredClaims
	UserID int `json:"user_id"`
}

// TokenCodec signs and verifies self-contained session tokens. Tokens are
// stateless: nothing is stored server-side and expiry is the only
// termination mechanism.
type TokenCodec struct {
	signingKey []byte
	ttl        time.Duration
}

// NewTokenCodec builds a codec with the process-wide signing key. A
// non-positive ttl falls back to DefaultTokenTTL.
func NewTokenCodec(signingKey string, ttl time.Duration) *TokenCodec {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenCodec{signingKey: []byte(signingKey), ttl: ttl}
}

// TTL returns the configured token lifetime.
func (c *TokenCodec) TTL() time.Duration {
	return c.ttl
}

// Issue signs a token for userID expiring after the configured TTL.
func (c *TokenCodec) Issue(userID int) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
	})
	signed, err := token.SignedString(c.signingKey)
	if err != nil {
		return "", fmt.Errorf("sign token for user %d: %w", userID, err)
	}
	return signed, nil
}

// Verify parses the token and returns the subject user id. Every failure
// mode collapses to ErrInvalidToken: a caller cannot tell a tampered token
// from an expired one.
func (c *TokenCodec) Verify(accessToken string) (int, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return c.signingKey, nil
	})
	if err != nil {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, ErrInvalidToken
	}
	return claims.UserID, nil
}

package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/epms/payroll-system/internal/core/domain"
)

// DefaultTokenTTL applies when no TTL is configured. Tokens are not
// renewable; expiry forces a fresh login.
const DefaultTokenTTL = 24 * time.Hour

// Claims is the identity fact set carried inside a token.
type Claims struct {
	Username string      `json:"username"`
	Role     domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenCodec signs and verifies the compact session tokens handed to clients.
// The signing secret is process-wide configuration; rotating it invalidates
// every outstanding token.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenCodec{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured token lifetime.
func (tc *TokenCodec) TTL() time.Duration {
	return tc.ttl
}

// Issue produces a signed HS256 token carrying the identity, expiring one
// TTL from now.
func (tc *TokenCodec) Issue(identity domain.Identity) (string, error) {
	now := time.Now()
	claims := Claims{
		Username: identity.Username,
		Role:     identity.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tc.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tc.secret)
}

// Verify checks signature, structure, and expiry, and returns the embedded
// identity. Every rejection maps to domain.ErrInvalidToken: callers cannot
// distinguish an expired token from a tampered or malformed one.
func (tc *TokenCodec) Verify(token string) (domain.Identity, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return tc.secret, nil
	})
	if err != nil || !parsed.Valid || !claims.Role.IsValid() {
		return domain.Identity{}, domain.ErrInvalidToken
	}
	return domain.Identity{
		ID:       claims.Subject,
		Username: claims.Username,
		Role:     claims.Role,
	}, nil
}

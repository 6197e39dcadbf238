// Package auth holds the two leaf components of the authentication core:
// the password hasher and the token codec. Both are pure with respect to
// external state and safe for concurrent use.
package auth

import "golang.org/x/crypto/bcrypt"

// Hasher produces and verifies salted one-way password digests using bcrypt.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher with the given bcrypt cost factor. Costs outside
// the range bcrypt accepts fall back to bcrypt.DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash returns a salted digest of plaintext. A fresh random salt is embedded
// in every digest, so hashing the same input twice yields different outputs.
func (h *Hasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches digest. The comparison is
// constant-time; a malformed digest counts as a mismatch, never a panic
// or an error.
func (h *Hasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}

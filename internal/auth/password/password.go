// Package password wraps bcrypt behind a small hashing interface.
package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost matches the cost used by the existing user base.
const DefaultCost = 10

// Hasher hashes and verifies secrets with bcrypt.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher with the given cost; non-positive uses DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost {
		cost = DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash returns the bcrypt digest of secret.
func (h *Hasher) Hash(secret string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether secret matches digest. A malformed digest is an
// error; a simple mismatch is not.
func (h *Hasher) Verify(digest, secret string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(secret))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, err
	}
}

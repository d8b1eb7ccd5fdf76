// Package auth provides the credential primitives of the authentication
// core: bcrypt password hashing and the signed session-token service.
package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher produces and checks password digests.
type PasswordHasher interface {
	// Hash generates a salted digest safe to persist.
	Hash(password string) (string, error)

	// Verify reports whether password matches digest. A malformed digest
	// is reported as a mismatch, never as an error.
	Verify(password, digest string) bool
}

// BcryptHasher implements PasswordHasher with bcrypt. Each call salts
// independently, so two digests of the same password differ.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher with the given cost factor. Costs below
// bcrypt.MinCost select bcrypt.DefaultCost (10).
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(digest), nil
}

func (h *BcryptHasher) Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}

// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"socialdesk/config"
	"socialdesk/internal/domain/service"

	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher implements service.PasswordHasher with bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher reads the cost factor from auth.bcryptCost.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		cost = cfg.Auth.BcryptCost
	}

	return NewBcryptHasherWithCost(cost)
}

// NewBcryptHasherWithCost clamps cost into the range bcrypt accepts.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	cost = min(max(cost, bcrypt.MinCost), bcrypt.MaxCost)

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash. bcrypt rejects passwords longer than 72 bytes.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for the access tokens.
type Claims struct {
	UserID uuid.UUID `json:"uid"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for an owner.
	GenerateAccessToken(userID uuid.UUID) (string, error)

	// ValidateToken parses and verifies a token string.
	ValidateToken(tokenString string) (*Claims, error)
}

package usecase

import (
	"context"

	"socialdesk/internal/domain/entity"
)

// LoginOutput carries the access token issued on login.
type LoginOutput struct {
	User        *entity.User `json:"user"`
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int64        `json:"expires_in"`
}

// AuthUsecase manages owner accounts.
type AuthUsecase interface {
	// Register creates an owner account. Used by the admin CLI.
	Register(ctx context.Context, email, name, password string) (*entity.User, error)

	// Login verifies credentials and issues an access token.
	Login(ctx context.Context, email, password string) (*LoginOutput, error)
}

package usecase

import (
	"context"

	"socialdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// ConnectStart is returned when an owner starts the Meta OAuth flow.
type ConnectStart struct {
	AuthorizationURL string `json:"authorization_url"`
	State            string `json:"state"`
}

// ConnectionUsecase links owners to their Meta accounts.
type ConnectionUsecase interface {
	// BeginConnect issues a single-use state bound to userID.
	BeginConnect(ctx context.Context, userID uuid.UUID) (*ConnectStart, error)

	// CompleteConnect consumes state, exchanges code and upserts the connection.
	CompleteConnect(ctx context.Context, state, code string) (*entity.SocialConnection, error)

	ListConnections(ctx context.Context, userID uuid.UUID) ([]*entity.SocialConnection, error)
}

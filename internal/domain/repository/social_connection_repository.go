package repository

import (
	"context"

	"socialdesk/internal/domain/entity"
	"socialdesk/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrConnectionNotFound is returned when no social connection matches.
	ErrConnectionNotFound = errors.New("social connection not found")
)

// SocialConnectionRepository defines persistence of Meta credentials.
type SocialConnectionRepository interface {
	// Upsert inserts or updates the connection keyed on (user_id, platform).
	Upsert(ctx context.Context, connection *entity.SocialConnection) error

	FindByUserAndPlatform(ctx context.Context, userID uuid.UUID, platform entity.Platform) (*entity.SocialConnection, error)

	// FindByPageID resolves the owner of a page (or Instagram account) id.
	FindByPageID(ctx context.Context, pageID string) (*entity.SocialConnection, error)

	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.SocialConnection, error)
}

package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// OAuthStateStore binds single-use OAuth state tokens to the user that started the flow.
type OAuthStateStore interface {
	// Save stores state for userID until ttl elapses.
	Save(ctx context.Context, state string, userID uuid.UUID, ttl time.Duration) error

	// Consume returns the user bound to state and deletes it. ok is false for unknown or expired states.
	Consume(ctx context.Context, state string) (userID uuid.UUID, ok bool, err error)
}

// IdempotencyStore remembers processed event keys so redelivered events can be skipped early.
type IdempotencyStore interface {
	Seen(ctx context.Context, key string) (bool, error)
	MarkProcessed(ctx context.Context, key string, ttl time.Duration) error
}

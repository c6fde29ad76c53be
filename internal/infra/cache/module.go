package cache

import (
	"socialdesk/internal/domain/service"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// StoreParams holds dependencies for the key stores, injected by Fx
type StoreParams struct {
	fx.In

	Client *redis.Client `optional:"true"`
}

// NewOAuthStateStore picks the Redis store when a client is available.
func NewOAuthStateStore(params StoreParams) service.OAuthStateStore {
	if params.Client == nil {
		return NewMemoryStateStore()
	}

	return NewRedisStateStore(params.Client)
}

// NewIdempotencyStore picks the Redis store when a client is available.
func NewIdempotencyStore(params StoreParams) service.IdempotencyStore {
	if params.Client == nil {
		return NewMemoryIdempotencyStore()
	}

	return NewRedisIdempotencyStore(params.Client)
}

// Module provides the key stores
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewRedisClient,
		NewOAuthStateStore,
		NewIdempotencyStore,
	),
)

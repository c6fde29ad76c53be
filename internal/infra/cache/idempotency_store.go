package cache

import (
	"context"
	"sync"
	"time"

	"socialdesk/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const processedPrefix = keyPrefix + "processed:"

type redisIdempotencyStore struct {
	client *redis.Client
}

// NewRedisIdempotencyStore remembers processed event ids in Redis.
func NewRedisIdempotencyStore(client *redis.Client) service.IdempotencyStore {
	return &redisIdempotencyStore{client: client}
}

func (s *redisIdempotencyStore) Seen(ctx context.Context, key string) (bool, error) {
	n, err := s.client.Exists(ctx, processedPrefix+key).Result()
	if err != nil {
		return false, errors.Wrap(err, "check processed marker")
	}

	return n > 0, nil
}

func (s *redisIdempotencyStore) MarkProcessed(ctx context.Context, key string, ttl time.Duration) error {
	if err := s.client.Set(ctx, processedPrefix+key, "1", ttl).Err(); err != nil {
		return errors.Wrap(err, "set processed marker")
	}

	return nil
}

type memoryIdempotencyStore struct {
	mu      sync.Mutex
	markers map[string]time.Time
	now     func() time.Time
}

// NewMemoryIdempotencyStore keeps processed markers in process memory.
func NewMemoryIdempotencyStore() service.IdempotencyStore {
	return &memoryIdempotencyStore{
		markers: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (s *memoryIdempotencyStore) Seen(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiresAt, ok := s.markers[key]
	if !ok {
		return false, nil
	}
	if !s.now().Before(expiresAt) {
		delete(s.markers, key)

		return false, nil
	}

	return true, nil
}

func (s *memoryIdempotencyStore) MarkProcessed(_ context.Context, key string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for k, expiresAt := range s.markers {
		if !now.Before(expiresAt) {
			delete(s.markers, k)
		}
	}
	s.markers[key] = now.Add(ttl)

	return nil
}

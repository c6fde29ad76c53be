package cache

import (
	"context"
	"sync"
	"time"

	"socialdesk/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const oauthStatePrefix = keyPrefix + "oauth_state:"

type redisStateStore struct {
	client *redis.Client
}

// NewRedisStateStore keeps OAuth states in Redis so any API instance can finish the flow.
func NewRedisStateStore(client *redis.Client) service.OAuthStateStore {
	return &redisStateStore{client: client}
}

func (s *redisStateStore) Save(ctx context.Context, state string, userID uuid.UUID, ttl time.Duration) error {
	if err := s.client.Set(ctx, oauthStatePrefix+state, userID.String(), ttl).Err(); err != nil {
		return errors.Wrap(err, "save oauth state")
	}

	return nil
}

func (s *redisStateStore) Consume(ctx context.Context, state string) (uuid.UUID, bool, error) {
	// GETDEL makes the state single-use across instances.
	value, err := s.client.GetDel(ctx, oauthStatePrefix+state).Result()
	if errors.Is(err, redis.Nil) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, errors.Wrap(err, "consume oauth state")
	}

	userID, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, false, errors.Wrap(err, "parse oauth state owner")
	}

	return userID, true, nil
}

type stateEntry struct {
	userID    uuid.UUID
	expiresAt time.Time
}

type memoryStateStore struct {
	mu     sync.Mutex
	states map[string]stateEntry
	now    func() time.Time
}

// NewMemoryStateStore keeps OAuth states in process memory. Only suitable for a single API instance.
func NewMemoryStateStore() service.OAuthStateStore {
	return &memoryStateStore{
		states: make(map[string]stateEntry),
		now:    time.Now,
	}
}

func (s *memoryStateStore) Save(_ context.Context, state string, userID uuid.UUID, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for key, entry := range s.states {
		if !now.Before(entry.expiresAt) {
			delete(s.states, key)
		}
	}
	s.states[state] = stateEntry{userID: userID, expiresAt: now.Add(ttl)}

	return nil
}

func (s *memoryStateStore) Consume(_ context.Context, state string) (uuid.UUID, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.states[state]
	if !ok {
		return uuid.Nil, false, nil
	}
	delete(s.states, state)

	if !s.now().Before(entry.expiresAt) {
		return uuid.Nil, false, nil
	}

	return entry.userID, true, nil
}

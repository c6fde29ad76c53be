// Package cache holds the short-lived key stores: OAuth state and webhook idempotency markers.
package cache

import (
	"context"
	"crypto/tls"
	"log/slog"

	"socialdesk/config"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const keyPrefix = "socialdesk:"

// NewRedisClient connects to redis.addr. It returns nil when Redis is not configured,
// in which case the in-memory stores are used.
func NewRedisClient(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) (*redis.Client, error) {
	if cfg.Redis == nil || cfg.Redis.Addr == "" {
		logger.Info("Redis not configured, using in-memory key stores")

		return nil, nil
	}

	opts := &redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
	if cfg.Redis.UseTLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	client := redis.NewClient(opts)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "redis ping")
			}
			logger.Info("Connected to Redis", slog.String("addr", cfg.Redis.Addr))

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

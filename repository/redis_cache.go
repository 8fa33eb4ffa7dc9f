package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisCache(opts *redis.Options, ttl time.Duration, logger *slog.Logger) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(opts),
		ttl:    ttl,
		logger: logger,
	}
}

// Get reports a miss for both absent keys and transport errors; the latter are logged.
func (r *RedisCache) Get(ctx context.Context, key string) (string, bool) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.Warn("redis get failed", "key", key, "error", err)
		}
		return "", false
	}
	return val, true
}

func (r *RedisCache) Set(ctx context.Context, key string, value string) error {
	return r.client.Set(ctx, key, value, r.ttl).Err()
}

func (r *RedisCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisCache) Name() string {
	return "redis"
}

func (r *RedisCache) Close() error {
	return r.client.Close()
}

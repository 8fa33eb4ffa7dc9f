package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/cespare/xxhash/v2"

	"mortgage-planner/repository"
)

// cacheKey hashes the JSON form of resolved parameters under a kind prefix.
func cacheKey(kind string, params any) (string, error) {
	raw, err := json.Marshal(params)
	if err != nil {
		return "", fmt.Errorf("encode %s cache key: %w", kind, err)
	}
	return fmt.Sprintf("%s:%016x", kind, xxhash.Sum64(raw)), nil
}

// cached returns the stored value for params, or computes and stores it.
// Cache failures are logged and never fail the calculation.
func cached[T any](
	ctx context.Context,
	cache repository.CacheRepository,
	logger *slog.Logger,
	kind string,
	params any,
	compute func() (T, error),
) (T, error) {
	key, err := cacheKey(kind, params)
	if err != nil {
		logger.Warn("cache key failed", "kind", kind, "error", err)
		return compute()
	}

	if raw, ok := cache.Get(ctx, key); ok {
		var v T
		if err := json.Unmarshal([]byte(raw), &v); err == nil {
			logger.Debug("cache hit", "key", key)
			return v, nil
		}
		logger.Warn("discarding unreadable cache entry", "key", key)
	}

	v, err := compute()
	if err != nil {
		return v, err
	}

	raw, err := json.Marshal(v)
	if err != nil {
		logger.Warn("failed to encode result for cache", "key", key, "error", err)
		return v, nil
	}
	if err := cache.Set(ctx, key, string(raw)); err != nil {
		logger.Warn("failed to cache result", "key", key, "error", err)
	}
	return v, nil
}

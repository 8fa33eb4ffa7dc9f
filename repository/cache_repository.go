package repository

import "context"

// CacheRepository stores serialized calculation results by key.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string) error
	Ping(ctx context.Context) error
	Name() string
}

package storage

import (
	"context"
	"time"

	"esgweb/internal/schema"
	lru "esgweb/internal/storage/lru_cache"
)

type registryClient interface {
	GetCompanies(ctx context.Context, records []schema.RegistryRecord) ([]schema.RegistryRecord, error)
}

type lruLocalCache[K comparable, V any] interface {
	BatchGet(keys []K) ([]V, []K)
	Update(rows []lru.CacheItem[K, V])
	GetValues() []V
}

type redisCache[V any] interface {
	BatchGet(ctx context.Context, keys []string) ([]V, []string, error)
	Update(keys []string, values []V)
	Set(ctx context.Context, key string, value V, expiration time.Duration) error
}

package app

import (
	"context"

	"esgweb/internal/schema"
)

type lruCache[K comparable, V any] interface {
	GetValues() []V
}

type storage interface {
	Get(ctx context.Context, records map[string]schema.RegistryRecord) ([]schema.RegistryRecord, error)
}

package service

import (
	"context"

	"esgweb/internal/schema"
)

type storage interface {
	Get(ctx context.Context, records map[string]schema.RegistryRecord) ([]schema.RegistryRecord, error)
}

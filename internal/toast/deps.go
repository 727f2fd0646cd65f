package toast

import (
	"context"
	"time"

	"esgweb/internal/schema"
)

type listStore interface {
	Append(ctx context.Context, key string, value schema.Toast, expiration time.Duration) error
	Drain(ctx context.Context, key string) ([]schema.Toast, error)
}

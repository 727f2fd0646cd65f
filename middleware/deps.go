package middleware

import (
	"context"

	"esgweb/internal/schema"
)

type sessionLoader interface {
	Load(ctx context.Context, id string) (schema.Session, error)
}

package session

import (
	"context"
	"time"

	"esgweb/internal/dto/auth_dto"
	"esgweb/internal/schema"
)

type kvStore interface {
	Set(ctx context.Context, key string, value schema.Session, expiration time.Duration) error
	Get(ctx context.Context, key string) (schema.Session, error)
	Delete(ctx context.Context, key string) error
}

type authClient interface {
	Login(ctx context.Context, request auth_dto.LoginRequest) (*auth_dto.LoginResponse, error)
}

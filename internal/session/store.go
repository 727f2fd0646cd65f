package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"esgweb/internal/client"
	"esgweb/internal/dto/auth_dto"
	"esgweb/internal/schema"
	redisStorage "esgweb/internal/storage/redis"

	"github.com/google/uuid"
)

var (
	// ErrInvalidCredentials backend rejected the email/password pair
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrExpired session is unknown or past its expiry
	ErrExpired = errors.New("session expired")
)

// Store keeps browser sessions in redis
type Store struct {
	kv         kvStore
	authClient authClient
	ttl        time.Duration
	now        func() time.Time
}

func NewStore(kv kvStore, authClient authClient, ttl time.Duration) *Store {
	return &Store{
		kv:         kv,
		authClient: authClient,
		ttl:        ttl,
		now:        time.Now,
	}
}

// Login authenticates against the backend and opens a session
func (s *Store) Login(ctx context.Context, email, password string) (schema.Session, error) {
	resp, err := s.authClient.Login(ctx, auth_dto.LoginRequest{Email: email, Password: password})
	if err != nil {
		var statusErr *client.StatusError
		if errors.As(err, &statusErr) && (statusErr.Code == http.StatusUnauthorized || statusErr.Code == http.StatusForbidden) {
			return schema.Session{}, ErrInvalidCredentials
		}
		return schema.Session{}, fmt.Errorf("login: %w", err)
	}

	ttl := s.ttl
	if tokenTTL := time.Duration(resp.ExpiresIn) * time.Second; tokenTTL > 0 && tokenTTL < ttl {
		ttl = tokenTTL
	}

	sess := schema.Session{
		ID:        uuid.NewString(),
		Email:     email,
		Token:     resp.AccessToken,
		ExpiresAt: s.now().Add(ttl),
	}
	if err := s.kv.Set(ctx, sess.ID, sess, ttl); err != nil {
		return schema.Session{}, fmt.Errorf("save session: %w", err)
	}
	return sess, nil
}

// Load returns a live session by id
func (s *Store) Load(ctx context.Context, id string) (schema.Session, error) {
	if id == "" {
		return schema.Session{}, ErrExpired
	}
	sess, err := s.kv.Get(ctx, id)
	if errors.Is(err, redisStorage.ErrNotFound) {
		return schema.Session{}, ErrExpired
	}
	if err != nil {
		return schema.Session{}, fmt.Errorf("load session: %w", err)
	}
	if !sess.ExpiresAt.After(s.now()) {
		return schema.Session{}, ErrExpired
	}
	return sess, nil
}

func (s *Store) Logout(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	return s.kv.Delete(ctx, id)
}

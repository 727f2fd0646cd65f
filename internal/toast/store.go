package toast

import (
	"context"
	"time"

	"esgweb/internal/schema"
	"esgweb/internal/session"

	"github.com/rs/zerolog/log"
)

// Store queues toasts per session until the next rendered page shows them
type Store struct {
	list listStore
	ttl  time.Duration
}

func NewStore(list listStore, ttl time.Duration) *Store {
	return &Store{
		list: list,
		ttl:  ttl,
	}
}

// Push queues a toast for the session found in ctx, anonymous requests are only logged
func (s *Store) Push(ctx context.Context, toast schema.Toast) {
	id := session.IDFromContext(ctx)
	if id == "" {
		log.Warn().Str("level", string(toast.Level)).Str("message", toast.Message).Msg("toast without session dropped")
		return
	}
	if err := s.list.Append(ctx, id, toast, s.ttl); err != nil {
		log.Error().Err(err).Str("session", id).Msg("couldn't queue toast")
	}
}

// Pop returns and clears every queued toast of the session found in ctx
func (s *Store) Pop(ctx context.Context) []schema.Toast {
	id := session.IDFromContext(ctx)
	if id == "" {
		return nil
	}
	toasts, err := s.list.Drain(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("session", id).Msg("couldn't read toasts")
		return nil
	}
	return toasts
}

package session

import (
	"context"

	"esgweb/internal/client"
	"esgweb/internal/schema"
)

type sessionKey struct{}

// WithSession attaches the session and its bearer token to ctx
func WithSession(ctx context.Context, s schema.Session) context.Context {
	ctx = context.WithValue(ctx, sessionKey{}, s)
	return client.WithToken(ctx, s.Token)
}

// FromContext returns the session attached by WithSession
func FromContext(ctx context.Context) (schema.Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(schema.Session)
	return s, ok
}

// IDFromContext returns the session id, empty for anonymous requests
func IDFromContext(ctx context.Context) string {
	s, _ := FromContext(ctx)
	return s.ID
}

// CookieName browser cookie carrying the session id
const CookieName = "esg_session"

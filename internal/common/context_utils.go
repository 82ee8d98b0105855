package common

import (
	"context"

	"ferrestock/internal/sessions"
)

type contextKey string

const sessionKey contextKey = "session"

func WithSession(ctx context.Context, sess *sessions.Session) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}

// SessionFromContext returns the authenticated session, or nil for an
// anonymous request.
func SessionFromContext(ctx context.Context) *sessions.Session {
	sess, _ := ctx.Value(sessionKey).(*sessions.Session)
	return sess
}

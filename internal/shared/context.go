package shared

import "context"

type contextKey string

const sessionContextKey contextKey = "session"

// ContextWithSession stores the session in the context.
func ContextWithSession(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, sess)
}

// SessionFromContext retrieves the session from the context, nil when absent.
func SessionFromContext(ctx context.Context) *Session {
	sess, _ := ctx.Value(sessionContextKey).(*Session)
	return sess
}

// Package authctx carries the caller's session through context.Context so the
// marketplace client can forward it without every use case threading tokens.
package authctx

import "context"

type Session struct {
	UserID      string
	Role        string
	AccessToken string
}

type ctxKey struct{}

func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(Session)
	if !ok || s.AccessToken == "" {
		return Session{}, false
	}
	return s, true
}

package session

import (
	"context"
	"errors"
)

type ctxKey int

const ctxSession ctxKey = iota

func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxSession, s)
}

func FromContext(ctx context.Context) (Session, error) {
	v := ctx.Value(ctxSession)
	if s, ok := v.(Session); ok && s.ID != "" {
		return s, nil
	}
	return Session{}, errors.New("session not in context")
}

func Username(ctx context.Context) (string, error) {
	s, err := FromContext(ctx)
	if err != nil {
		return "", err
	}
	return s.Username, nil
}

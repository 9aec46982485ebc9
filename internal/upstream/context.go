package upstream

import "context"

type ctxKey int

const ctxToken ctxKey = iota

// WithToken attaches a bearer token to the context. The session middleware
// is the only expected caller; handlers never touch raw tokens.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, ctxToken, token)
}

// TokenFrom returns the bearer token attached by the session middleware.
func TokenFrom(ctx context.Context) (string, bool) {
	v := ctx.Value(ctxToken)
	if s, ok := v.(string); ok && s != "" {
		return s, true
	}
	return "", false
}

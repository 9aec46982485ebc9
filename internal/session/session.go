// Package session owns the console's credential state: one server-side
// session per logged-in admin, keyed by an opaque ID carried in a cookie.
// The upstream bearer token lives only inside the session record; it is
// never sent to the browser.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"magiccall-admin/internal/upstream"
)

var ErrNotFound = errors.New("session: not found")

type Session struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Store is the persistence contract for sessions. Implementations must be
// safe for concurrent use.
type Store interface {
	Save(ctx context.Context, s Session) error
	Get(ctx context.Context, id string) (Session, error)
	Delete(ctx context.Context, id string) error
}

// New builds a session from a successful upstream login. The configured TTL
// is capped by the token's own exp claim when the token parses as a JWT; a
// session must never outlive the credential it wraps.
func New(auth upstream.AuthResponse, now time.Time, ttl time.Duration) Session {
	expires := now.Add(ttl)
	if tokenExp := tokenExpiry(auth.Token); !tokenExp.IsZero() && tokenExp.Before(expires) {
		expires = tokenExp
	}
	return Session{
		ID:        uuid.NewString(),
		Token:     auth.Token,
		Username:  auth.Username,
		FirstName: auth.FirstName,
		LastName:  auth.LastName,
		Roles:     auth.Roles,
		CreatedAt: now,
		ExpiresAt: expires,
	}
}

func (s Session) HasRole(role string) bool {
	for _, r := range s.Roles {
		if r == role {
			return true
		}
	}
	return false
}

func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

// tokenExpiry reads the exp claim without verifying the signature. The
// console does not hold the upstream signing secret; the upstream remains
// the authority and will answer 401 for anything stale or forged.
func tokenExpiry(token string) time.Time {
	if token == "" {
		return time.Time{}
	}
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}
	}
	if claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}

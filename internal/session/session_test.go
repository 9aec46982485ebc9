package session

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"magiccall-admin/internal/upstream"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	s, err := tok.SignedString([]byte("irrelevant"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

func TestNew_CapsTTLByTokenExpiry(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()
	tokenExp := now.Add(2 * time.Hour)

	s := New(upstream.AuthResponse{
		Token:    signedToken(t, tokenExp),
		Username: "admin",
		Roles:    []string{"ROLE_ADMIN"},
	}, now, 7*24*time.Hour)

	if s.ID == "" {
		t.Fatalf("expected generated session id")
	}
	if !s.ExpiresAt.Equal(tokenExp) {
		t.Fatalf("expected expiry capped at token exp %v, got %v", tokenExp, s.ExpiresAt)
	}
}

func TestNew_OpaqueTokenUsesConfiguredTTL(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()
	s := New(upstream.AuthResponse{Token: "not-a-jwt", Username: "admin"}, now, 7*24*time.Hour)
	if !s.ExpiresAt.Equal(now.Add(7 * 24 * time.Hour)) {
		t.Fatalf("expected configured TTL, got %v", s.ExpiresAt)
	}
}

func TestSession_HasRole(t *testing.T) {
	s := Session{Roles: []string{"ROLE_USER", "ROLE_ADMIN"}}
	if !s.HasRole("ROLE_ADMIN") {
		t.Fatalf("expected ROLE_ADMIN")
	}
	if s.HasRole("ROLE_OPERATOR") {
		t.Fatalf("did not expect ROLE_OPERATOR")
	}
}

func TestMemoryStore_ExpiredSessionIsGone(t *testing.T) {
	store := NewMemoryStore()
	now := time.Unix(1700000000, 0).UTC()
	store.clock = func() time.Time { return now }

	sess := Session{ID: "s1", Username: "admin", ExpiresAt: now.Add(time.Minute)}
	if err := store.Save(context.Background(), sess); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := store.Get(context.Background(), "s1"); err != nil {
		t.Fatalf("get: %v", err)
	}

	now = now.Add(2 * time.Minute)
	if _, err := store.Get(context.Background(), "s1"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound after expiry, got %v", err)
	}
	if store.Len() != 0 {
		t.Fatalf("expected expired session reaped")
	}
}

func TestMemoryStore_DeleteUnknownIsNoop(t *testing.T) {
	store := NewMemoryStore()
	if err := store.Delete(context.Background(), "missing"); err != nil {
		t.Fatalf("delete: %v", err)
	}
}

package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestLoginLimiter_NilClientNeverBlocks(t *testing.T) {
	var l *LoginLimiter
	ok, err := l.Allow(context.Background(), "10.0.0.1")
	if err != nil || !ok {
		t.Fatalf("expected nil limiter to allow, got ok=%v err=%v", ok, err)
	}

	l = NewLoginLimiter(nil, 5, time.Minute)
	ok, err = l.Allow(context.Background(), "10.0.0.1")
	if err != nil || !ok {
		t.Fatalf("expected limiter without redis to allow, got ok=%v err=%v", ok, err)
	}
}

func TestLoginLimiter_ScriptCompiles(t *testing.T) {
	if loginAttemptScript == nil {
		t.Fatalf("expected script to be initialized")
	}
}

// Package ratelimit throttles login attempts per client IP so the console
// cannot be used as a password oracle against the upstream.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var loginAttemptScript = redis.NewScript(`
-- KEYS[1] = attempt counter key
-- ARGV[1] = limit (int)
-- ARGV[2] = window_ms (int)
--
-- Returns:
--  1 if the attempt is allowed
--  0 if the limit for the window is reached
local current = redis.call('INCR', KEYS[1])
if current == 1 then
  redis.call('PEXPIRE', KEYS[1], ARGV[2])
else
  -- Ensure TTL exists even if key already existed without TTL
  if redis.call('PTTL', KEYS[1]) < 0 then
    redis.call('PEXPIRE', KEYS[1], ARGV[2])
  end
end

if current > tonumber(ARGV[1]) then
  return 0
end
return 1
`)

// LoginLimiter counts attempts in Redis with a fixed window. The counter
// key TTL self-heals on process crash; no cleanup job needed.
type LoginLimiter struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
}

func NewLoginLimiter(rdb *redis.Client, limit int, window time.Duration) *LoginLimiter {
	return &LoginLimiter{rdb: rdb, limit: limit, window: window}
}

// Allow records one attempt for the key (normally the client IP) and
// reports whether it is within the window's budget.
func (l *LoginLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if l == nil || l.rdb == nil {
		// No limiter configured; never block logins on a missing dependency.
		return true, nil
	}
	if key == "" {
		return false, fmt.Errorf("key is required")
	}
	if l.limit <= 0 || l.window <= 0 {
		return true, nil
	}

	res, err := loginAttemptScript.Run(ctx, l.rdb, []string{"console:login_attempts:" + key}, l.limit, l.window.Milliseconds()).Int()
	if err != nil {
		return false, err
	}
	return res == 1, nil
}

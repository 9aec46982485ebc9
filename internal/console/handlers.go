// Package console serves the admin console's own HTTP surface: one view
// model endpoint per resource screen plus the mutations those screens
// trigger. Handlers stay thin: parse/validate input, call the upstream
// client, return JSON. Every mutation is followed by a full collection
// re-fetch; the console never patches local state optimistically.
package console

import (
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/singleflight"

	"magiccall-admin/internal/audit"
	"magiccall-admin/internal/ratelimit"
	"magiccall-admin/internal/session"
	"magiccall-admin/internal/upstream"
	"magiccall-admin/pkg/logger"
)

// Handlers groups HTTP handlers for dependency injection.
type Handlers struct {
	Upstream   *upstream.Client
	Guard      session.Guard
	Audit      *audit.Service
	Limiter    *ratelimit.LoginLimiter
	SessionTTL time.Duration

	// flights collapses concurrent identical list fetches per admin.
	flights singleflight.Group
	// inflight rejects duplicate concurrent mutations on the same row.
	inflight *keyedInflight

	clock func() time.Time
}

func NewHandlers(up *upstream.Client, guard session.Guard, aud *audit.Service, limiter *ratelimit.LoginLimiter, sessionTTL time.Duration) *Handlers {
	return &Handlers{
		Upstream:   up,
		Guard:      guard,
		Audit:      aud,
		Limiter:    limiter,
		SessionTTL: sessionTTL,
		inflight:   newKeyedInflight(),
		clock:      time.Now,
	}
}

// recordAction writes the audit trail entry for a mutation that already
// succeeded upstream. Best-effort; see audit.Service.Record.
func (h *Handlers) recordAction(c *gin.Context, action audit.Action, resource string, id int64, msg string) {
	sess, err := session.FromContext(c.Request.Context())
	if err != nil {
		return
	}
	h.Audit.Record(c.Request.Context(), logger.FromGin(c), audit.Event{
		Action:        action,
		ActorUsername: sess.Username,
		IPAddress:     c.ClientIP(),
		Resource:      resource,
		ResourceID:    id,
		Message:       msg,
	})
}

package console

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"magiccall-admin/internal/audit"
)

/* ===================== EXPIRED VOICES VIEW ===================== */

func (h *Handlers) ListExpiredVoices(c *gin.Context) {
	items, err := listDeduped(h, c, "expired-voices", h.Upstream.ListExpiredVoices)
	if err != nil {
		h.fail(c, err)
		return
	}
	respondList(c, items, parseListQuery(c), "")
}

func (h *Handlers) CleanupStatistics(c *gin.Context) {
	stats, err := h.Upstream.CleanupStatistics(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handlers) PreviewCleanup(c *gin.Context) {
	preview, err := h.Upstream.PreviewCleanup(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, preview)
}

// RunCleanup triggers the upstream expiry sweep. Collection-level, so the
// in-flight key is fixed: two admins cannot race two sweeps through the
// console at once.
func (h *Handlers) RunCleanup(c *gin.Context) {
	var result map[string]any
	msg, ok := h.mutate(c, "voice-cleanup:run", func(ctx context.Context) (string, error) {
		r, msg, err := h.Upstream.RunCleanup(ctx)
		result = r
		return msg, err
	})
	if !ok {
		return
	}
	msg = fallback(msg, "Cleanup completed")
	h.recordAction(c, audit.ActionCleanupRun, "voice-cleanup", 0, msg)

	c.JSON(http.StatusOK, gin.H{"message": msg, "result": result})
}

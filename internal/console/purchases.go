package console

import (
	"context"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"magiccall-admin/internal/audit"
	"magiccall-admin/internal/upstream"
)

/* ===================== VOICE PURCHASES VIEW ===================== */

// ListVoicePurchases serves the subscription review screen. Filtering by
// status is console-side, recomputed from the full fetched collection.
func (h *Handlers) ListVoicePurchases(c *gin.Context) {
	items, err := listDeduped(h, c, "voice-purchases", h.Upstream.ListVoicePurchases)
	if err != nil {
		h.fail(c, err)
		return
	}
	respondList(c, filterVoicePurchases(items, c.Query("status")), parseListQuery(c), "")
}

func (h *Handlers) refreshVoicePurchases(c *gin.Context, message string) {
	items, err := h.Upstream.ListVoicePurchases(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	respondList(c, filterVoicePurchases(items, c.Query("status")), parseListQuery(c), message)
}

func filterVoicePurchases(items []upstream.VoicePurchase, status string) []upstream.VoicePurchase {
	status = strings.ToLower(strings.TrimSpace(status))
	if status == "" || status == "all" {
		return items
	}
	out := make([]upstream.VoicePurchase, 0, len(items))
	for _, p := range items {
		if strings.ToLower(p.Status) == status {
			out = append(out, p)
		}
	}
	return out
}

func (h *Handlers) ApproveVoicePurchase(c *gin.Context) {
	h.voicePurchaseAction(c, audit.ActionVPApprove, "Purchase approved", h.Upstream.ApproveVoicePurchase)
}

func (h *Handlers) RejectVoicePurchase(c *gin.Context) {
	h.voicePurchaseAction(c, audit.ActionVPReject, "Purchase rejected", h.Upstream.RejectVoicePurchase)
}

func (h *Handlers) DeleteVoicePurchase(c *gin.Context) {
	h.voicePurchaseAction(c, audit.ActionVPDelete, "Purchase deleted", h.Upstream.DeleteVoicePurchase)
}

func (h *Handlers) voicePurchaseAction(c *gin.Context, action audit.Action, defaultMsg string, call func(ctx context.Context, id int64) (string, error)) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	msg, ok := h.mutate(c, "voice-purchase:"+strconv.FormatInt(id, 10), func(ctx context.Context) (string, error) {
		return call(ctx, id)
	})
	if !ok {
		return
	}
	msg = fallback(msg, defaultMsg)
	h.recordAction(c, action, "voice-purchase", id, msg)
	h.refreshVoicePurchases(c, msg)
}

package console

import (
	"context"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"magiccall-admin/internal/audit"
	"magiccall-admin/internal/upstream"
)

/* ===================== TOP-UPS VIEW ===================== */

// ListTopUps serves the top-up review screen. The status filter is applied
// to the already fetched collection; the upstream is never asked to filter.
func (h *Handlers) ListTopUps(c *gin.Context) {
	items, err := listDeduped(h, c, "topups", h.Upstream.ListTopUps)
	if err != nil {
		h.fail(c, err)
		return
	}
	respondList(c, filterTopUps(items, c.Query("status")), parseListQuery(c), "")
}

func (h *Handlers) refreshTopUps(c *gin.Context, message string) {
	items, err := h.Upstream.ListTopUps(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	respondList(c, filterTopUps(items, c.Query("status")), parseListQuery(c), message)
}

func filterTopUps(items []upstream.TopUp, status string) []upstream.TopUp {
	status = strings.ToLower(strings.TrimSpace(status))
	if status == "" || status == "all" {
		return items
	}
	out := make([]upstream.TopUp, 0, len(items))
	for _, t := range items {
		if strings.ToLower(t.Status) == status {
			out = append(out, t)
		}
	}
	return out
}

func (h *Handlers) ApproveTopUp(c *gin.Context) {
	h.topUpAction(c, audit.ActionTopUpApprove, "Top-up approved", h.Upstream.ApproveTopUp)
}

func (h *Handlers) RejectTopUp(c *gin.Context) {
	h.topUpAction(c, audit.ActionTopUpReject, "Top-up rejected", h.Upstream.RejectTopUp)
}

func (h *Handlers) DeleteTopUp(c *gin.Context) {
	h.topUpAction(c, audit.ActionTopUpDelete, "Top-up deleted", h.Upstream.DeleteTopUp)
}

func (h *Handlers) topUpAction(c *gin.Context, action audit.Action, defaultMsg string, call func(ctx context.Context, id int64) (string, error)) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	msg, ok := h.mutate(c, "topup:"+strconv.FormatInt(id, 10), func(ctx context.Context) (string, error) {
		return call(ctx, id)
	})
	if !ok {
		return
	}
	msg = fallback(msg, defaultMsg)
	h.recordAction(c, action, "topup", id, msg)
	h.refreshTopUps(c, msg)
}

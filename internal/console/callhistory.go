package console

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"magiccall-admin/internal/audit"
)

/* ===================== CALL HISTORY VIEW (read-mostly) ===================== */

func (h *Handlers) ListCallHistory(c *gin.Context) {
	items, err := listDeduped(h, c, "call-history", h.Upstream.ListCallHistory)
	if err != nil {
		h.fail(c, err)
		return
	}
	respondList(c, items, parseListQuery(c), "")
}

// GetCallHistory looks a record up by numeric id, or by FreeSWITCH uuid
// when the path segment is not a number.
func (h *Handlers) GetCallHistory(c *gin.Context) {
	raw := c.Param("id")
	if id, err := strconv.ParseInt(raw, 10, 64); err == nil && id > 0 {
		rec, err := h.Upstream.GetCallHistory(c.Request.Context(), id)
		if err != nil {
			h.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, rec)
		return
	}

	rec, err := h.Upstream.GetCallHistoryByUUID(c.Request.Context(), raw)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// DeleteCallHistory is admin maintenance for bogus records; display stays
// read-only otherwise.
func (h *Handlers) DeleteCallHistory(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	msg, ok := h.mutate(c, "call-history:"+strconv.FormatInt(id, 10), func(ctx context.Context) (string, error) {
		return h.Upstream.DeleteCallHistory(ctx, id)
	})
	if !ok {
		return
	}
	msg = fallback(msg, "Call record deleted")
	h.recordAction(c, audit.ActionCallDelete, "call-history", id, msg)

	items, err := h.Upstream.ListCallHistory(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	respondList(c, items, parseListQuery(c), msg)
}

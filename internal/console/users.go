package console

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"magiccall-admin/internal/audit"
	"magiccall-admin/internal/upstream"
)

/* ===================== USERS VIEW ===================== */

func (h *Handlers) ListUsers(c *gin.Context) {
	items, err := listDeduped(h, c, "users", h.Upstream.ListUsers)
	if err != nil {
		h.fail(c, err)
		return
	}
	respondList(c, items, parseListQuery(c), "")
}

// refreshUsers re-fetches the collection after a mutation so the view
// reflects server state, not a local guess.
func (h *Handlers) refreshUsers(c *gin.Context, message string) {
	items, err := h.Upstream.ListUsers(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	respondList(c, items, parseListQuery(c), message)
}

func (h *Handlers) UpdateUser(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req upstream.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	msg, ok := h.mutate(c, "user:"+strconv.FormatInt(id, 10), func(ctx context.Context) (string, error) {
		_, msg, err := h.Upstream.UpdateUser(ctx, id, req)
		return msg, err
	})
	if !ok {
		return
	}
	msg = fallback(msg, "User updated")
	h.recordAction(c, audit.ActionUserUpdate, "user", id, msg)
	h.refreshUsers(c, msg)
}

func (h *Handlers) EnableUser(c *gin.Context) {
	h.userAction(c, audit.ActionUserEnable, "User enabled", h.Upstream.EnableUser)
}

func (h *Handlers) DisableUser(c *gin.Context) {
	h.userAction(c, audit.ActionUserDisable, "User disabled", h.Upstream.DisableUser)
}

func (h *Handlers) DeleteUser(c *gin.Context) {
	h.userAction(c, audit.ActionUserDelete, "User deleted", h.Upstream.DeleteUser)
}

func (h *Handlers) userAction(c *gin.Context, action audit.Action, defaultMsg string, call func(ctx context.Context, id int64) (string, error)) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	msg, ok := h.mutate(c, "user:"+strconv.FormatInt(id, 10), func(ctx context.Context) (string, error) {
		return call(ctx, id)
	})
	if !ok {
		return
	}
	msg = fallback(msg, defaultMsg)
	h.recordAction(c, action, "user", id, msg)
	h.refreshUsers(c, msg)
}

// GetUserBalance proxies the per-user balance lookup used by the user
// detail drawer. Display only; every figure comes from the upstream.
func (h *Handlers) GetUserBalance(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	bal, err := h.Upstream.GetUserBalance(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, bal)
}

// GetUserCalls lists one user's call history for the drill-down view.
func (h *Handlers) GetUserCalls(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	items, err := h.Upstream.ListCallHistoryByUser(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	respondList(c, items, parseListQuery(c), "")
}

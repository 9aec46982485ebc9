package console

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"magiccall-admin/internal/session"
	"magiccall-admin/internal/upstream"
	"magiccall-admin/pkg/logger"
)

// fail is the single place console errors are translated for the UI:
//   - upstream 401: the session is torn down and the client is redirected
//     to login, no matter which action triggered it
//   - upstream business rejection: status and message pass through verbatim
//   - transport failure: a generic connection-error banner
func (h *Handlers) fail(c *gin.Context, err error) {
	if errors.Is(err, upstream.ErrUnauthorized) {
		h.Guard.Teardown(c)
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired", "redirect": session.LoginRoute})
		return
	}

	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) {
		c.AbortWithStatusJSON(apiErr.StatusCode, gin.H{"error": apiErr.Message})
		return
	}

	logger.FromGin(c).Error("upstream request failed", "err", err)
	c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": "connection error"})
}

type listQuery struct {
	Page     int
	PageSize int
}

// parseListQuery reads optional pagination params. Zero means "everything",
// which is what the console UI sends today.
func parseListQuery(c *gin.Context) listQuery {
	q := listQuery{}
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 0 {
		q.Page = v
	}
	if v, err := strconv.Atoi(c.Query("pageSize")); err == nil && v > 0 {
		q.PageSize = v
	}
	return q
}

// respondList answers a collection view model. items is never null JSON:
// an empty collection is the UI's "no records" placeholder state and must
// stay distinguishable from a fetch error.
func respondList[T any](c *gin.Context, items []T, q listQuery, message string) {
	if items == nil {
		items = []T{}
	}
	total := len(items)
	page := paginate(items, q)

	out := gin.H{"items": page, "total": total}
	if q.Page > 0 && q.PageSize > 0 {
		out["page"] = q.Page
		out["pageSize"] = q.PageSize
	}
	if message != "" {
		out["message"] = message
	}
	c.JSON(http.StatusOK, out)
}

func paginate[T any](items []T, q listQuery) []T {
	if q.Page <= 0 || q.PageSize <= 0 {
		return items
	}
	start := (q.Page - 1) * q.PageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + q.PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

func firstN[T any](items []T, n int) []T {
	if items == nil {
		return []T{}
	}
	if len(items) <= n {
		return items
	}
	return items[:n]
}

// listDeduped collapses concurrent identical list fetches for the same
// admin into one upstream call.
func listDeduped[T any](h *Handlers, c *gin.Context, resource string, fetch func(ctx context.Context) ([]T, error)) ([]T, error) {
	key := resource
	if sess, err := session.FromContext(c.Request.Context()); err == nil {
		key = sess.Username + ":" + resource
	}
	v, err, _ := h.flights.Do(key, func() (any, error) {
		return fetch(c.Request.Context())
	})
	if err != nil {
		return nil, err
	}
	items, _ := v.([]T)
	return items, nil
}

// mutate wraps a state-changing upstream call with the in-flight guard.
// Returns the upstream's message and whether the caller should continue
// (on false the response has already been written).
func (h *Handlers) mutate(c *gin.Context, key string, action func(ctx context.Context) (string, error)) (string, bool) {
	if !h.inflight.TryAcquire(key) {
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "action already in progress"})
		return "", false
	}
	defer h.inflight.Release(key)

	msg, err := action(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return "", false
	}
	return msg, true
}

func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func fallback(msg, def string) string {
	if msg != "" {
		return msg
	}
	return def
}

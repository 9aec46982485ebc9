package console

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"magiccall-admin/internal/audit"
	"magiccall-admin/internal/upstream"
)

/* ===================== PACKAGES VIEW ===================== */

func (h *Handlers) ListPackages(c *gin.Context) {
	// Name search goes upstream; it is the one list the API can filter.
	if name := strings.TrimSpace(c.Query("name")); name != "" {
		items, err := h.Upstream.SearchPackages(c.Request.Context(), name)
		if err != nil {
			h.fail(c, err)
			return
		}
		respondList(c, items, parseListQuery(c), "")
		return
	}

	items, err := listDeduped(h, c, "packages", h.Upstream.ListPackages)
	if err != nil {
		h.fail(c, err)
		return
	}
	respondList(c, items, parseListQuery(c), "")
}

func (h *Handlers) refreshPackages(c *gin.Context, message string) {
	items, err := h.Upstream.ListPackages(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	respondList(c, items, parseListQuery(c), message)
}

func bindPackageRequest(c *gin.Context) (upstream.PackageRequest, bool) {
	var req upstream.PackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return req, false
	}
	req.PackageName = strings.TrimSpace(req.PackageName)
	if req.PackageName == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "packageName required"})
		return req, false
	}
	if len(req.VoiceTypeIDs) == 0 {
		// Blocked before any request is sent; a package without voices is
		// not a thing the upstream accepts either.
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "select at least one voice type"})
		return req, false
	}
	return req, true
}

func (h *Handlers) CreatePackage(c *gin.Context) {
	req, ok := bindPackageRequest(c)
	if !ok {
		return
	}
	msg, ok := h.mutate(c, "package:create", func(ctx context.Context) (string, error) {
		_, msg, err := h.Upstream.CreatePackage(ctx, req)
		return msg, err
	})
	if !ok {
		return
	}
	msg = fallback(msg, "Package created")
	h.recordAction(c, audit.ActionPkgCreate, "package", 0, msg)
	h.refreshPackages(c, msg)
}

func (h *Handlers) UpdatePackage(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	req, ok := bindPackageRequest(c)
	if !ok {
		return
	}
	msg, ok := h.mutate(c, "package:"+strconv.FormatInt(id, 10), func(ctx context.Context) (string, error) {
		_, msg, err := h.Upstream.UpdatePackage(ctx, id, req)
		return msg, err
	})
	if !ok {
		return
	}
	msg = fallback(msg, "Package updated")
	h.recordAction(c, audit.ActionPkgUpdate, "package", id, msg)
	h.refreshPackages(c, msg)
}

func (h *Handlers) DeletePackage(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	msg, ok := h.mutate(c, "package:"+strconv.FormatInt(id, 10), func(ctx context.Context) (string, error) {
		return h.Upstream.DeletePackage(ctx, id)
	})
	if !ok {
		return
	}
	msg = fallback(msg, "Package deleted")
	h.recordAction(c, audit.ActionPkgDelete, "package", id, msg)
	h.refreshPackages(c, msg)
}

/* ===================== PACKAGE PURCHASES (read-only) ===================== */

func (h *Handlers) ListPackagePurchases(c *gin.Context) {
	items, err := listDeduped(h, c, "purchases", h.Upstream.ListPackagePurchases)
	if err != nil {
		h.fail(c, err)
		return
	}
	respondList(c, items, parseListQuery(c), "")
}

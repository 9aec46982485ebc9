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

/* ===================== VOICE TYPES VIEW ===================== */

func (h *Handlers) ListVoiceTypes(c *gin.Context) {
	items, err := listDeduped(h, c, "voice-types", h.Upstream.ListVoiceTypes)
	if err != nil {
		h.fail(c, err)
		return
	}
	respondList(c, items, parseListQuery(c), "")
}

func (h *Handlers) refreshVoiceTypes(c *gin.Context, message string) {
	items, err := h.Upstream.ListVoiceTypes(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	respondList(c, items, parseListQuery(c), message)
}

func bindVoiceTypeRequest(c *gin.Context) (upstream.VoiceTypeRequest, bool) {
	var req upstream.VoiceTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return req, false
	}
	req.VoiceName = strings.TrimSpace(req.VoiceName)
	req.Code = strings.TrimSpace(req.Code)
	if req.VoiceName == "" || req.Code == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "voiceName and code required"})
		return req, false
	}
	return req, true
}

func (h *Handlers) CreateVoiceType(c *gin.Context) {
	req, ok := bindVoiceTypeRequest(c)
	if !ok {
		return
	}
	msg, ok := h.mutate(c, "voice-type:create", func(ctx context.Context) (string, error) {
		_, msg, err := h.Upstream.CreateVoiceType(ctx, req)
		return msg, err
	})
	if !ok {
		return
	}
	msg = fallback(msg, "Voice type created")
	h.recordAction(c, audit.ActionVoiceCreate, "voice-type", 0, msg)
	h.refreshVoiceTypes(c, msg)
}

func (h *Handlers) UpdateVoiceType(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	req, ok := bindVoiceTypeRequest(c)
	if !ok {
		return
	}
	msg, ok := h.mutate(c, "voice-type:"+strconv.FormatInt(id, 10), func(ctx context.Context) (string, error) {
		_, msg, err := h.Upstream.UpdateVoiceType(ctx, id, req)
		return msg, err
	})
	if !ok {
		return
	}
	msg = fallback(msg, "Voice type updated")
	h.recordAction(c, audit.ActionVoiceUpdate, "voice-type", id, msg)
	h.refreshVoiceTypes(c, msg)
}

func (h *Handlers) DeleteVoiceType(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	msg, ok := h.mutate(c, "voice-type:"+strconv.FormatInt(id, 10), func(ctx context.Context) (string, error) {
		return h.Upstream.DeleteVoiceType(ctx, id)
	})
	if !ok {
		return
	}
	msg = fallback(msg, "Voice type deleted")
	h.recordAction(c, audit.ActionVoiceDelete, "voice-type", id, msg)
	h.refreshVoiceTypes(c, msg)
}

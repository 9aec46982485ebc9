package console

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"magiccall-admin/internal/audit"
	"magiccall-admin/internal/rbac"
	"magiccall-admin/internal/session"
	"magiccall-admin/internal/upstream"
	"magiccall-admin/pkg/logger"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates against the upstream and opens a console session.
//
// A success-status upstream response without ROLE_ADMIN is an authorization
// failure: the console answers "Access denied" and stores nothing. The
// session is the console's only credential store, and a token that can
// never pass the admin guard has no business being in it.
func (h *Handlers) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "username and password required"})
		return
	}

	if ok, err := h.Limiter.Allow(c.Request.Context(), c.ClientIP()); err != nil {
		logger.FromGin(c).Error("login limiter unavailable", "err", err)
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "try again later"})
		return
	} else if !ok {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many login attempts"})
		return
	}

	resp, err := h.Upstream.Login(c.Request.Context(), upstream.Credentials{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		// A 401 here is bad credentials, not a dead session; do not redirect.
		if errors.Is(err, upstream.ErrUnauthorized) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}
		h.fail(c, err)
		return
	}

	if !rbac.IsAdmin(resp.Roles) {
		logger.FromGin(c).Warn("non-admin login refused", "username", resp.Username)
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	now := h.clock()
	sess := session.New(resp, now, h.SessionTTL)
	if err := h.Guard.Store.Save(c.Request.Context(), sess); err != nil {
		logger.FromGin(c).Error("session save failed", "err", err)
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "session store unavailable"})
		return
	}
	h.Guard.Cookie.SetCookie(c, sess, now)

	h.Audit.Record(c.Request.Context(), logger.FromGin(c), audit.Event{
		Action:        audit.ActionLogin,
		ActorUsername: sess.Username,
		IPAddress:     c.ClientIP(),
		Resource:      "session",
	})

	c.JSON(http.StatusOK, gin.H{
		"username":  sess.Username,
		"firstName": sess.FirstName,
		"lastName":  sess.LastName,
		"roles":     sess.Roles,
		"redirect":  "/",
	})
}

// LoginStatus is the inverse guard for the login screen: an already
// authenticated client is pointed straight at the dashboard.
func (h *Handlers) LoginStatus(c *gin.Context) {
	sid, err := c.Cookie(h.Guard.Cookie.Name)
	if err == nil && sid != "" {
		if sess, err := h.Guard.Store.Get(c.Request.Context(), sid); err == nil {
			c.JSON(http.StatusOK, gin.H{"authenticated": true, "username": sess.Username, "redirect": "/"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"authenticated": false})
}

func (h *Handlers) Logout(c *gin.Context) {
	h.recordAction(c, audit.ActionLogout, "session", 0, "")
	h.Guard.Teardown(c)
	c.JSON(http.StatusOK, gin.H{"redirect": session.LoginRoute})
}

// SessionInfo powers the header chrome (who am I, which roles).
func (h *Handlers) SessionInfo(c *gin.Context) {
	sess, err := session.FromContext(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required", "redirect": session.LoginRoute})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"username":  sess.Username,
		"firstName": sess.FirstName,
		"lastName":  sess.LastName,
		"roles":     sess.Roles,
		"expiresAt": sess.ExpiresAt,
	})
}

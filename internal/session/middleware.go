package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"magiccall-admin/internal/upstream"
)

// LoginRoute is where unauthenticated clients are sent.
const LoginRoute = "/login"

// CookieOptions is how the session ID cookie is issued and cleared.
type CookieOptions struct {
	Name   string
	Secure bool
}

// SetCookie issues the session ID cookie. HttpOnly always; the browser
// never needs script access to the session ID.
func (o CookieOptions) SetCookie(c *gin.Context, sess Session, now time.Time) {
	maxAge := int(sess.ExpiresAt.Sub(now) / time.Second)
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(o.Name, sess.ID, maxAge, "/", "", o.Secure, true)
}

func (o CookieOptions) ClearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(o.Name, "", -1, "/", "", o.Secure, true)
}

// Guard verifies the session cookie and injects identity into request
// context. It does not perform role checks; those belong to internal/rbac.
type Guard struct {
	Store  Store
	Cookie CookieOptions
}

// RequireSession aborts with a single 401 + login redirect when no live
// session backs the request. On success the session and its bearer token
// are attached to the request context for handlers and the upstream client.
func (g Guard) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(g.Cookie.Name)
		if err != nil || sid == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required", "redirect": LoginRoute})
			return
		}

		sess, err := g.Store.Get(c.Request.Context(), sid)
		if errors.Is(err, ErrNotFound) {
			g.Cookie.ClearCookie(c)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired", "redirect": LoginRoute})
			return
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "session lookup failed"})
			return
		}

		ctx := WithSession(c.Request.Context(), sess)
		ctx = upstream.WithToken(ctx, sess.Token)
		c.Request = c.Request.WithContext(ctx)

		// Also store on gin context for handler convenience.
		c.Set("username", sess.Username)
		c.Set("roles", sess.Roles)

		c.Next()
	}
}

// Teardown removes the session behind the request, if any, and clears the
// cookie. Used by logout and by the upstream-401 error path.
func (g Guard) Teardown(c *gin.Context) {
	if sid, err := c.Cookie(g.Cookie.Name); err == nil && sid != "" {
		_ = g.Store.Delete(c.Request.Context(), sid)
	}
	g.Cookie.ClearCookie(c)
}

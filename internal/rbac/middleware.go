package rbac

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"magiccall-admin/internal/session"
)

// RequireAdmin enforces the console invariant: every resource view and
// mutation is admin-only. The session guard must run earlier in the chain.
//
// A logged-in user without ROLE_ADMIN should not normally exist (login
// refuses to create the session), so a 403 here means a session predates a
// role revocation.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := session.FromContext(c.Request.Context())
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required", "redirect": session.LoginRoute})
			return
		}
		if !IsAdmin(sess.Roles) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		c.Next()
	}
}

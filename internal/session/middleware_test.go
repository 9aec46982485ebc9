package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"magiccall-admin/internal/upstream"
)

func guardRouter(t *testing.T, store Store) (*gin.Engine, Guard) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	g := Guard{Store: store, Cookie: CookieOptions{Name: "mc_admin_session"}}

	r := gin.New()
	r.GET("/x", g.RequireSession(), func(c *gin.Context) {
		sess, err := FromContext(c.Request.Context())
		if err != nil {
			c.JSON(500, gin.H{"error": "no session in context"})
			return
		}
		tok, _ := upstream.TokenFrom(c.Request.Context())
		c.JSON(200, gin.H{"username": sess.Username, "token": tok})
	})
	return r, g
}

func TestRequireSession_NoCookieRedirectsToLoginOnce(t *testing.T) {
	r, _ := guardRouter(t, NewMemoryStore())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), LoginRoute) {
		t.Fatalf("expected login redirect in body, got %s", w.Body.String())
	}
}

func TestRequireSession_UnknownSessionClearsCookie(t *testing.T) {
	r, _ := guardRouter(t, NewMemoryStore())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.AddCookie(&http.Cookie{Name: "mc_admin_session", Value: "gone"})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	cleared := false
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "mc_admin_session" && ck.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatalf("expected stale cookie cleared")
	}
}

func TestRequireSession_InjectsIdentityAndToken(t *testing.T) {
	store := NewMemoryStore()
	r, _ := guardRouter(t, store)

	sess := Session{
		ID:        "s1",
		Token:     "tok-abc",
		Username:  "admin",
		Roles:     []string{"ROLE_ADMIN"},
		ExpiresAt: time.Now().Add(time.Hour),
	}
	if err := store.Save(context.Background(), sess); err != nil {
		t.Fatalf("save: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.AddCookie(&http.Cookie{Name: "mc_admin_session", Value: "s1"})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"username":"admin"`) || !strings.Contains(w.Body.String(), `"token":"tok-abc"`) {
		t.Fatalf("expected identity and token injected, got %s", w.Body.String())
	}
}

func TestTeardown_DeletesSessionAndClearsCookie(t *testing.T) {
	store := NewMemoryStore()
	_, g := guardRouter(t, store)

	sess := Session{ID: "s2", Username: "admin", ExpiresAt: time.Now().Add(time.Hour)}
	if err := store.Save(context.Background(), sess); err != nil {
		t.Fatalf("save: %v", err)
	}

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/logout", nil)
	c.Request.AddCookie(&http.Cookie{Name: "mc_admin_session", Value: "s2"})

	g.Teardown(c)

	if store.Len() != 0 {
		t.Fatalf("expected session deleted")
	}
	cleared := false
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "mc_admin_session" && ck.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatalf("expected cookie cleared")
	}
}

package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func headerResolver() Resolver {
	return ResolverFunc(func(_ context.Context, r *http.Request) (*Identity, bool) {
		if id := r.Header.Get("X-Test-User"); id != "" {
			return &Identity{ID: id, Username: "user-" + id}, true
		}
		return nil, false
	})
}

func newEngine(resolver Resolver) *gin.Engine {
	r := gin.New()
	r.Use(OptionalAuth(resolver))
	r.GET("/open", func(c *gin.Context) {
		id, ok := FromContext(c)
		if !ok {
			c.String(http.StatusOK, "anonymous")
			return
		}
		c.String(http.StatusOK, id.ID)
	})
	r.GET("/closed", RequireAuth(), func(c *gin.Context) {
		userID, _ := c.Get("userID")
		c.String(http.StatusOK, userID.(string))
	})
	return r
}

func TestOptionalAuth(t *testing.T) {
	r := newEngine(headerResolver())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/open", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "anonymous", w.Body.String())

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("X-Test-User", "u1")
	r.ServeHTTP(w, req)
	assert.Equal(t, "u1", w.Body.String())
}

func TestRequireAuth(t *testing.T) {
	r := newEngine(headerResolver())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/closed", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"success":false,"error":{"code":"AUTHENTICATION_REQUIRED","message":"Authentication required. Please log in."}}`, w.Body.String())

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/closed", nil)
	req.Header.Set("X-Test-User", "u2")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u2", w.Body.String())
}

func TestAnonymousResolver(t *testing.T) {
	r := newEngine(Anonymous)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/closed", nil)
	req.Header.Set("X-Test-User", "u3")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"watchthis/sharing/internal/models"
	"watchthis/sharing/internal/service"
	"watchthis/sharing/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		kind service.Kind
		want int
	}{
		{service.KindMissingFields, http.StatusBadRequest},
		{service.KindInvalidShare, http.StatusBadRequest},
		{service.KindInvalidID, http.StatusBadRequest},
		{service.KindInvalidStatus, http.StatusBadRequest},
		{service.KindValidation, http.StatusBadRequest},
		{service.KindAuthenticationRequired, http.StatusUnauthorized},
		{service.KindForbidden, http.StatusForbidden},
		{service.KindNotFound, http.StatusNotFound},
		{service.KindConflict, http.StatusConflict},
		{service.KindInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.kind.Code(), func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.kind))
		})
	}
}

func TestNewPaginatedResponse(t *testing.T) {
	resp := NewPaginatedResponse(&store.Page[models.Share]{Page: 2, Limit: 10, Total: 11})
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Data)
	assert.Empty(t, resp.Data)
	assert.Equal(t, PaginationMeta{Page: 2, Limit: 10, Total: 11}, resp.Pagination)
}

func TestPageParams(t *testing.T) {
	tests := []struct {
		query             string
		wantPage, wantLim int
	}{
		{"", 1, 20},
		{"page=3&limit=5", 3, 5},
		{"page=0&limit=-4", 1, 20},
		{"page=x&limit=y", 1, 20},
		{"limit=500", 1, 500},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)
			page, limit := pageParams(c)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLim, limit)
		})
	}
}

func TestShareFilterValidator(t *testing.T) {
	require.NoError(t, RegisterValidators())
	require.NoError(t, RegisterValidators(), "registration is idempotent")

	for _, status := range []string{"", "all", "pending", "watched", "archived"} {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/?status="+status, nil)
		var q ListSharesQuery
		assert.NoError(t, c.ShouldBindQuery(&q), status)
	}

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/?status=deleted", nil)
	var q ListSharesQuery
	err := c.ShouldBindQuery(&q)
	require.Error(t, err)
	assert.True(t, failedTag(err, "sharefilter"))
}

func TestNotFound(t *testing.T) {
	r := gin.New()
	r.NoRoute(NotFound)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"success":false,"error":{"code":"NOT_FOUND","message":"Route not found"}}`, w.Body.String())
}

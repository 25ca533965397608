package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"watchthis/sharing/internal/store"
)

// PaginationMeta defines the structure for pagination metadata.
type PaginationMeta struct {
	Page    int   `json:"page" example:"1"`
	Limit   int   `json:"limit" example:"20"`
	Total   int64 `json:"total" example:"42"`
	HasNext bool  `json:"hasNext" example:"true"`
}

// PaginatedResponse defines the structure for a paginated list of any type.
type PaginatedResponse[T any] struct {
	Success    bool           `json:"success" example:"true"`
	Data       []T            `json:"data"`
	Pagination PaginationMeta `json:"pagination"`
}

// NewPaginatedResponse creates a new PaginatedResponse from a store page.
func NewPaginatedResponse[T any](page *store.Page[T]) PaginatedResponse[T] {
	data := page.Items
	if data == nil {
		data = []T{}
	}
	return PaginatedResponse[T]{
		Success: true,
		Data:    data,
		Pagination: PaginationMeta{
			Page:    page.Page,
			Limit:   page.Limit,
			Total:   page.Total,
			HasNext: page.HasNext,
		},
	}
}

// pageParams reads page and limit from the query string. Missing or
// unparsable values fall back to the defaults; the store clamps the rest.
func pageParams(c *gin.Context) (page, limit int) {
	page = queryInt(c, "page", store.DefaultPage)
	limit = queryInt(c, "limit", store.DefaultLimit)
	return page, limit
}

func queryInt(c *gin.Context, key string, fallback int) int {
	raw, ok := c.GetQuery(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

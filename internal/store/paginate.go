package store

import "gorm.io/gorm"

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// Page is one window of a larger ordered result.
type Page[T any] struct {
	Items   []T
	Page    int
	Limit   int
	Total   int64
	HasNext bool
}

// normalizePage clamps page and limit to usable values.
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

// paginate counts every row matched by db, then fetches the requested window.
// The count ignores ordering, offset and limit. db is reused for both
// queries, so each one starts from its own session.
func paginate[T any](db *gorm.DB, order string, page, limit int) (*Page[T], error) {
	page, limit = normalizePage(page, limit)

	var total int64
	if err := db.Session(&gorm.Session{}).Model(new(T)).Count(&total).Error; err != nil {
		return nil, err
	}

	results := make([]T, 0, limit)
	offset := (page - 1) * limit
	if err := db.Session(&gorm.Session{}).Order(order).Offset(offset).Limit(limit).Find(&results).Error; err != nil {
		return nil, err
	}

	return &Page[T]{
		Items:   results,
		Page:    page,
		Limit:   limit,
		Total:   total,
		HasNext: int64(offset+len(results)) < total,
	}, nil
}

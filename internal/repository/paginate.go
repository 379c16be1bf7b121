package repository

import (
	"gorm.io/gorm"
)

// paginate applies OFFSET (page-1)*limit LIMIT limit with sane floors. The
// count query runs on the same predicate before this is applied.
func paginate(q *gorm.DB, page, limit int) *gorm.DB {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return q.Offset((page - 1) * limit).Limit(limit)
}

package database

import (
	"gorm.io/gorm"

	"github.com/brunofarias/zapboard/internal/utils"
)

// Paginate returns a GORM scope applying the requested page window.
// Meant to be chained after the unbounded Count on the same query.
func Paginate(params utils.PaginationParams) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(params.Offset).Limit(params.Limit)
	}
}

// Package pagination binds 1-based page requests and builds page metadata.
package pagination

import (
	"gorm.io/gorm"
)

// Request is bound from the query string (?page=1&size=10). Both values must be positive,
// so invalid requests are rejected by the binding layer before reaching the store.
// The upper bounds keep Offset well inside int range.
type Request struct {
	Page int `form:"page" binding:"required,min=1,max=100000"`
	Size int `form:"size" binding:"required,min=1,max=100"`
}

func (r Request) Offset() int {
	return (r.Page - 1) * r.Size
}

// Info is the page metadata returned next to a list of items
type Info struct {
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

func NewInfo(req Request, total int64) Info {
	return Info{
		Page:          req.Page,
		Size:          req.Size,
		TotalElements: total,
		TotalPages:    TotalPages(total, req.Size),
	}
}

// TotalPages returns ceil(total/size)
func TotalPages(total int64, size int) int {
	if size <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}

// Paginate is a GORM scope ordering by id descending (most recent first).
//
//	db.Scopes(pagination.Paginate(req)).Find(&coffees)
func Paginate(req Request) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order("id DESC").Offset(req.Offset()).Limit(req.Size)
	}
}

// File: internal/common/pagination.go
package common

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultPageSize matches the page size the frontend was built against.
	DefaultPageSize int64 = 5
)

// GetPageParams extracts `size` and `page` query parameters from the Gin
// context. Pages are zero-indexed; a missing, non-numeric, or non-positive
// size falls back to DefaultPageSize, and a missing or negative page to 0.
func GetPageParams(c *gin.Context) (size, page int64) {
	size, err := strconv.ParseInt(c.DefaultQuery("size", strconv.FormatInt(DefaultPageSize, 10)), 10, 64)
	if err != nil || size <= 0 {
		size = DefaultPageSize
	}

	page, err = strconv.ParseInt(c.DefaultQuery("page", "0"), 10, 64)
	if err != nil || page < 0 {
		page = 0
	}
	return size, page
}

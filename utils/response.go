package utils

import "github.com/gin-gonic/gin"

// Pagination is the metadata block returned alongside every list response.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

func NewPagination(page, limit int, total int64) Pagination {
	totalPages := int(total) / limit
	if int(total)%limit != 0 {
		totalPages++
	}
	return Pagination{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
}

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONList(c *gin.Context, code int, data interface{}, p Pagination) {
	c.JSON(code, gin.H{"success": true, "data": data, "pagination": p})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

package server

import (
	"strconv"
	"strings"

	"polls/internal/web"

	"github.com/gin-gonic/gin"
)

// parsePage reads the 1-based ?page= value; anything unusable is page 1.
func parsePage(c *gin.Context) int {
	raw := strings.TrimSpace(c.Query("page"))
	if value, err := strconv.Atoi(raw); err == nil && value > 0 {
		return value
	}
	return 1
}

// buildPaginationData clamps page into [1, TotalPages]; an empty list still
// has one page.
func buildPaginationData(basePath string, page, perPage int, total int64) web.PaginationData {
	if perPage <= 0 {
		perPage = 1
	}
	totalPages := max(int((total+int64(perPage)-1)/int64(perPage)), 1)
	page = min(max(page, 1), totalPages)
	data := web.PaginationData{
		BasePath:   basePath,
		Page:       page,
		PerPage:    perPage,
		Total:      int(total),
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}
	if data.HasPrev {
		data.PrevPage = page - 1
	}
	if data.HasNext {
		data.NextPage = page + 1
	}
	return data
}

func pageOffset(page, perPage int) int {
	return (page - 1) * perPage
}

package utils

import (
	"strconv"

	"github.com/brunofarias/zapboard/internal/constants"
	"github.com/gin-gonic/gin"
)

// PaginationParams holds the page window requested by a client.
type PaginationParams struct {
	Page   int
	Limit  int
	Offset int
}

// PaginationResponse is the pagination block echoed back on list endpoints.
type PaginationResponse struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// GetPaginationParams reads page/limit from the query string, clamping
// out-of-range values instead of rejecting the request.
func GetPaginationParams(c *gin.Context) PaginationParams {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < constants.MinPageSize {
		page = constants.MinPageSize
	}

	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit < constants.MinPageSize || limit > constants.MaxPageSize {
		limit = constants.DefaultPageSize
	}

	return PaginationParams{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

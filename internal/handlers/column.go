package handlers

import (
	"errors"
	"net/http"

	apierrors "github.com/brunofarias/zapboard/internal/errors"
	"github.com/brunofarias/zapboard/internal/middleware"
	"github.com/brunofarias/zapboard/internal/services"
	"github.com/gin-gonic/gin"
)

// ColumnHandler coordinates column-related HTTP handlers.
type ColumnHandler struct {
	columnService *services.ColumnService
}

// NewColumnHandler creates a new ColumnHandler.
func NewColumnHandler(columnService *services.ColumnService) *ColumnHandler {
	return &ColumnHandler{
		columnService: columnService,
	}
}

// CreateColumn creates a new column on a board.
func (h *ColumnHandler) CreateColumn(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateColumnRequest struct {
		Title   string `json:"title" binding:"required"`
		BoardID uint64 `json:"board_id" binding:"required"`
		Order   *int   `json:"order"`
	}

	var req CreateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	column, err := h.columnService.CreateColumn(services.CreateColumnInput{
		Title:   req.Title,
		BoardID: req.BoardID,
		Order:   req.Order,
		UserID:  userID,
	})
	if err != nil {
		respondColumnError(c, err)
		return
	}

	c.JSON(http.StatusCreated, column)
}

// UpdateColumn renames and/or repositions a column.
func (h *ColumnHandler) UpdateColumn(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	columnID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	type UpdateColumnRequest struct {
		Title *string `json:"title"`
		Order *int    `json:"order"`
	}

	var req UpdateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	column, err := h.columnService.UpdateColumn(columnID, userID, services.UpdateColumnInput{
		Title: req.Title,
		Order: req.Order,
	})
	if err != nil {
		respondColumnError(c, err)
		return
	}

	c.JSON(http.StatusOK, column)
}

// DeleteColumn removes a column and everything attached to it.
func (h *ColumnHandler) DeleteColumn(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	columnID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.columnService.DeleteColumn(columnID, userID); err != nil {
		respondColumnError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Column deleted successfully",
	})
}

func respondColumnError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrColumnNotFound),
		errors.Is(err, services.ErrBoardNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrTitleEmpty):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}

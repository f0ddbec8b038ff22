package handlers

import (
	"errors"
	"net/http"

	apierrors "github.com/brunofarias/zapboard/internal/errors"
	"github.com/brunofarias/zapboard/internal/middleware"
	"github.com/brunofarias/zapboard/internal/services"
	"github.com/gin-gonic/gin"
)

// TemplateHandler coordinates notification-template HTTP handlers.
type TemplateHandler struct {
	templateService *services.TemplateService
}

// NewTemplateHandler creates a new TemplateHandler.
func NewTemplateHandler(templateService *services.TemplateService) *TemplateHandler {
	return &TemplateHandler{
		templateService: templateService,
	}
}

// TemplateRequest is the payload for creating or updating a column template.
type TemplateRequest struct {
	Template string `json:"template" binding:"required"`
	IsActive *bool  `json:"is_active"`
}

// ListForBoard returns the template configuration of every column on a board.
func (h *TemplateHandler) ListForBoard(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	boardID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	templates, err := h.templateService.ListForBoard(boardID, userID)
	if err != nil {
		respondTemplateError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"templates": templates,
	})
}

// GetTemplate returns the notification template of a column. When none has
// been saved yet, a default starter template is suggested.
func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	columnID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	template, err := h.templateService.GetTemplate(columnID, userID)
	if err != nil {
		if errors.Is(err, services.ErrTemplateNotFound) {
			column, colErr := h.templateService.OwnedColumn(columnID, userID)
			if colErr != nil {
				respondTemplateError(c, colErr)
				return
			}
			c.JSON(http.StatusOK, gin.H{
				"column_id": columnID,
				"template":  services.DefaultTemplate(column.Title),
				"is_active": false,
				"exists":    false,
			})
			return
		}
		respondTemplateError(c, err)
		return
	}

	c.JSON(http.StatusOK, template)
}

// CreateTemplate saves a new template for a column.
func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	columnID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req TemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	template, err := h.templateService.CreateTemplate(columnID, userID, services.TemplateInput{
		Template: req.Template,
		IsActive: isActive,
	})
	if err != nil {
		respondTemplateError(c, err)
		return
	}

	c.JSON(http.StatusCreated, template)
}

// UpsertTemplate creates or replaces the template of a column.
func (h *TemplateHandler) UpsertTemplate(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	columnID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req TemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	template, err := h.templateService.UpsertTemplate(columnID, userID, services.TemplateInput{
		Template: req.Template,
		IsActive: isActive,
	})
	if err != nil {
		respondTemplateError(c, err)
		return
	}

	c.JSON(http.StatusOK, template)
}

func respondTemplateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTemplateNotFound),
		errors.Is(err, services.ErrColumnNotFound),
		errors.Is(err, services.ErrBoardNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrTemplateExists):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrTemplateRequired),
		errors.Is(err, services.ErrTemplateTooLong):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}

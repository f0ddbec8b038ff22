package handlers

import (
	"errors"
	"net/http"
	"time"

	apierrors "github.com/brunofarias/zapboard/internal/errors"
	"github.com/brunofarias/zapboard/internal/middleware"
	"github.com/brunofarias/zapboard/internal/models"
	"github.com/brunofarias/zapboard/internal/services"
	"github.com/gin-gonic/gin"
)

// CardHandler coordinates card-related HTTP handlers.
type CardHandler struct {
	cardService *services.CardService
}

// NewCardHandler creates a new CardHandler.
func NewCardHandler(cardService *services.CardService) *CardHandler {
	return &CardHandler{
		cardService: cardService,
	}
}

// CreateCard creates a new card in a column.
func (h *CardHandler) CreateCard(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateCardRequest struct {
		Content           string     `json:"content" binding:"required"`
		Description       string     `json:"description"`
		ColumnID          uint64     `json:"column_id" binding:"required"`
		Order             *int       `json:"order"`
		Priority          string     `json:"priority"`
		StartDate         *time.Time `json:"start_date"`
		DueDate           *time.Time `json:"due_date"`
		CompletedDate     *time.Time `json:"completed_date"`
		SendNotifications *bool      `json:"send_notifications"`
		ContactID         *uint64    `json:"contact_id"`
	}

	var req CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	card, err := h.cardService.CreateCard(services.CreateCardInput{
		Content:           req.Content,
		Description:       req.Description,
		ColumnID:          req.ColumnID,
		Order:             req.Order,
		Priority:          models.CardPriority(req.Priority),
		StartDate:         req.StartDate,
		DueDate:           req.DueDate,
		CompletedDate:     req.CompletedDate,
		SendNotifications: req.SendNotifications,
		ContactID:         req.ContactID,
		UserID:            userID,
	})
	if err != nil {
		respondCardError(c, err)
		return
	}

	c.JSON(http.StatusCreated, card)
}

// GetCard returns a single card with its contact loaded.
func (h *CardHandler) GetCard(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	cardID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	card, err := h.cardService.GetCard(cardID, userID)
	if err != nil {
		respondCardError(c, err)
		return
	}

	c.JSON(http.StatusOK, card)
}

// UpdateCard updates card fields. Changing column_id moves the card and
// triggers the notification pipeline for the destination column.
func (h *CardHandler) UpdateCard(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	cardID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	// Parse raw JSON to tell absent fields from explicit nulls
	var rawReq map[string]any
	if err := c.ShouldBindJSON(&rawReq); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	var input services.UpdateCardInput

	if content, ok := rawReq["content"].(string); ok {
		input.Content = &content
	}
	if description, ok := rawReq["description"].(string); ok {
		input.Description = &description
	}
	if columnID, ok := rawReq["column_id"].(float64); ok {
		id := uint64(columnID)
		input.ColumnID = &id
	}
	if order, ok := rawReq["order"].(float64); ok {
		o := int(order)
		input.Order = &o
	}
	if priority, ok := rawReq["priority"].(string); ok {
		p := models.CardPriority(priority)
		input.Priority = &p
	}
	if startDate, ok := rawReq["start_date"].(string); ok {
		parsed, err := time.Parse(time.RFC3339, startDate)
		if err != nil {
			apierrors.BadRequest(c, "Invalid start_date")
			return
		}
		input.StartDate = &parsed
	}
	if raw, present := rawReq["due_date"]; present {
		if raw == nil {
			input.ClearDueDate = true
		} else if dueDate, ok := raw.(string); ok {
			parsed, err := time.Parse(time.RFC3339, dueDate)
			if err != nil {
				apierrors.BadRequest(c, "Invalid due_date")
				return
			}
			input.DueDate = &parsed
		}
	}
	if completedDate, ok := rawReq["completed_date"].(string); ok {
		parsed, err := time.Parse(time.RFC3339, completedDate)
		if err != nil {
			apierrors.BadRequest(c, "Invalid completed_date")
			return
		}
		input.CompletedDate = &parsed
	}
	if sendNotifications, ok := rawReq["send_notifications"].(bool); ok {
		input.SendNotifications = &sendNotifications
	}
	if raw, present := rawReq["contact_id"]; present {
		if raw == nil {
			input.ClearContact = true
		} else if contactID, ok := raw.(float64); ok {
			id := uint64(contactID)
			input.ContactID = &id
		}
	}

	card, err := h.cardService.UpdateCard(c.Request.Context(), cardID, userID, input)
	if err != nil {
		respondCardError(c, err)
		return
	}

	c.JSON(http.StatusOK, card)
}

// DeleteCard removes a card.
func (h *CardHandler) DeleteCard(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	cardID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.cardService.DeleteCard(cardID, userID); err != nil {
		respondCardError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Card deleted successfully",
	})
}

func respondCardError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrCardNotFound),
		errors.Is(err, services.ErrColumnNotFound),
		errors.Is(err, services.ErrContactNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrContentRequired),
		errors.Is(err, services.ErrInvalidPriority):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}

package handlers

import (
	"net/http"

	apierrors "github.com/brunofarias/zapboard/internal/errors"
	"github.com/brunofarias/zapboard/internal/middleware"
	"github.com/brunofarias/zapboard/internal/services"
	"github.com/brunofarias/zapboard/internal/utils"
	"github.com/gin-gonic/gin"
)

// WhatsAppHandler exposes manual notification dispatch and test sends.
type WhatsAppHandler struct {
	cardService  *services.CardService
	notification *services.NotificationService
}

// NewWhatsAppHandler creates a new WhatsAppHandler.
func NewWhatsAppHandler(cardService *services.CardService, notification *services.NotificationService) *WhatsAppHandler {
	return &WhatsAppHandler{
		cardService:  cardService,
		notification: notification,
	}
}

// Notify runs the notification pipeline for a card against a column's
// template, optionally overriding the recipient.
func (h *WhatsAppHandler) Notify(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type NotifyRequest struct {
		CardID         uint64 `json:"card_id" binding:"required"`
		ColumnID       uint64 `json:"column_id" binding:"required"`
		RecipientPhone string `json:"recipient_phone"`
	}

	var req NotifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if req.RecipientPhone != "" {
		if err := utils.ValidatePhone(req.RecipientPhone); err != nil {
			apierrors.BadRequest(c, err.Error())
			return
		}
		req.RecipientPhone = utils.NormalizePhone(req.RecipientPhone)
	}

	outcome, err := h.cardService.NotifyCard(c.Request.Context(), req.CardID, req.ColumnID, req.RecipientPhone, userID)
	if err != nil {
		respondCardError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sent":       outcome.Sent,
		"skipped":    outcome.Skipped,
		"recipient":  outcome.Recipient,
		"message_id": outcome.MessageID,
		"error":      outcome.FailureReason,
	})
}

// Test renders a template with caller-provided variables and sends it to an
// explicit phone number.
func (h *WhatsAppHandler) Test(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type TestRequest struct {
		Template    string         `json:"template" binding:"required"`
		PhoneNumber string         `json:"phone_number" binding:"required"`
		Variables   map[string]any `json:"variables"`
	}

	var req TestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := utils.ValidatePhone(req.PhoneNumber); err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	result, message := h.notification.SendTest(
		c.Request.Context(), userID, req.Template,
		utils.NormalizePhone(req.PhoneNumber), req.Variables,
	)

	status := http.StatusOK
	if !result.Success {
		status = http.StatusBadGateway
	}

	c.JSON(status, gin.H{
		"success":    result.Success,
		"message_id": result.MessageID,
		"message":    message,
		"error":      result.Error,
	})
}

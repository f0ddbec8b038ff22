package handlers

import (
	"errors"
	"net/http"

	"github.com/brunofarias/zapboard/internal/dto"
	apierrors "github.com/brunofarias/zapboard/internal/errors"
	"github.com/brunofarias/zapboard/internal/middleware"
	"github.com/brunofarias/zapboard/internal/services"
	"github.com/brunofarias/zapboard/internal/utils"
	"github.com/gin-gonic/gin"
)

// ContactHandler coordinates contact-related HTTP handlers.
type ContactHandler struct {
	contactService *services.ContactService
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// ContactRequest is the payload for creating or updating a contact.
type ContactRequest struct {
	Name           string `json:"name" binding:"required"`
	WhatsAppNumber string `json:"whatsapp_number" binding:"required"`
}

// ListContacts returns the user's contacts ordered by name.
func (h *ContactHandler) ListContacts(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	params := utils.GetPaginationParams(c)

	contacts, total, err := h.contactService.ListContacts(userID, params)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch contacts")
		return
	}

	contactDTOs := make([]dto.ContactDTO, 0, len(contacts))
	for _, contact := range contacts {
		contactDTOs = append(contactDTOs, dto.ToContactDTO(contact))
	}

	c.JSON(http.StatusOK, gin.H{
		"contacts": contactDTOs,
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// GetContact returns a single contact.
func (h *ContactHandler) GetContact(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	contactID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	contact, err := h.contactService.GetContact(contactID, userID)
	if err != nil {
		respondContactError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToContactDTO(*contact))
}

// CreateContact validates the phone number and creates a contact.
func (h *ContactHandler) CreateContact(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	contact, err := h.contactService.CreateContact(userID, services.ContactInput{
		Name:           req.Name,
		WhatsAppNumber: req.WhatsAppNumber,
	})
	if err != nil {
		respondContactError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToContactDTO(*contact))
}

// UpdateContact validates and updates a contact.
func (h *ContactHandler) UpdateContact(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	contactID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	contact, err := h.contactService.UpdateContact(contactID, userID, services.ContactInput{
		Name:           req.Name,
		WhatsAppNumber: req.WhatsAppNumber,
	})
	if err != nil {
		respondContactError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToContactDTO(*contact))
}

// DeleteContact removes a contact, detaching it from any cards first.
func (h *ContactHandler) DeleteContact(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	contactID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.contactService.DeleteContact(contactID, userID); err != nil {
		respondContactError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Contact deleted successfully",
	})
}

// ListCountries returns the supported phone countries with their display
// masks, for the contact form.
func (h *ContactHandler) ListCountries(c *gin.Context) {
	countries := make([]gin.H, 0, len(utils.Countries))
	for _, country := range utils.Countries {
		countries = append(countries, gin.H{
			"code":       country.Code,
			"name":       country.Name,
			"phone_code": country.PhoneCode,
			"mask":       country.Mask,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"countries": countries,
	})
}

func respondContactError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrContactNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrContactNameRequired),
		errors.Is(err, services.ErrContactNameTooLong),
		errors.Is(err, utils.ErrPhoneMissingCountryCode),
		errors.Is(err, utils.ErrPhoneTooShort),
		errors.Is(err, utils.ErrPhoneInvalidFormat):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}

package dto

import (
	"strings"
	"time"

	"github.com/brunofarias/zapboard/internal/models"
	"github.com/brunofarias/zapboard/internal/utils"
)

// ContactDTO represents a contact with its number rendered in the
// country's display mask.
type ContactDTO struct {
	ID              uint64    `json:"id"`
	Name            string    `json:"name"`
	WhatsAppNumber  string    `json:"whatsapp_number"`
	FormattedNumber string    `json:"formatted_number"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ToContactDTO converts a contact to its response shape.
func ToContactDTO(contact models.Contact) ContactDTO {
	return ContactDTO{
		ID:              contact.ID,
		Name:            contact.Name,
		WhatsAppNumber:  contact.WhatsAppNumber,
		FormattedNumber: formatByDialingCode(contact.WhatsAppNumber),
		CreatedAt:       contact.CreatedAt,
		UpdatedAt:       contact.UpdatedAt,
	}
}

// formatByDialingCode picks the country by the number's dialing prefix,
// longest prefix first so +351 wins over +35.
func formatByDialingCode(number string) string {
	var best utils.Country
	for _, country := range utils.Countries {
		if strings.HasPrefix(number, country.PhoneCode) && len(country.PhoneCode) > len(best.PhoneCode) {
			best = country
		}
	}
	if best.Code == "" {
		return number
	}
	return utils.FormatPhone(number, best.Code)
}

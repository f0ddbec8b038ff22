package services

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/brunofarias/zapboard/internal/constants"
	"github.com/brunofarias/zapboard/internal/models"
	"github.com/brunofarias/zapboard/internal/repository"
	"github.com/brunofarias/zapboard/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrContactNameRequired = errors.New("contact name is required")
	ErrContactNameTooLong  = errors.New("contact name is too long")
)

// ContactService handles the per-user contacts directory. Phone validation
// here is the data-quality gate for numbers entering the notification
// pipeline.
type ContactService struct {
	contactRepo repository.ContactRepository
	cardRepo    repository.CardRepository
}

// NewContactService creates a new ContactService
func NewContactService(contactRepo repository.ContactRepository, cardRepo repository.CardRepository) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
		cardRepo:    cardRepo,
	}
}

// ContactInput represents input for creating or updating a contact
type ContactInput struct {
	Name           string
	WhatsAppNumber string
}

// ListContacts lists a page of the user's contacts ordered by name
func (s *ContactService) ListContacts(userID uint64, params utils.PaginationParams) ([]models.Contact, int64, error) {
	contacts, total, err := s.contactRepo.ListByUserID(userID, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list contacts: %w", err)
	}
	return contacts, total, nil
}

// GetContact returns one contact owned by the user
func (s *ContactService) GetContact(contactID, userID uint64) (*models.Contact, error) {
	contact, err := s.contactRepo.FindByIDAndUser(contactID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to find contact: %w", err)
	}
	return contact, nil
}

// CreateContact validates and creates a contact
func (s *ContactService) CreateContact(userID uint64, input ContactInput) (*models.Contact, error) {
	if err := validateContactInput(input); err != nil {
		return nil, err
	}

	contact := &models.Contact{
		Name:           input.Name,
		WhatsAppNumber: utils.NormalizePhone(input.WhatsAppNumber),
		UserID:         userID,
	}

	if err := s.contactRepo.Create(contact); err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	return contact, nil
}

// UpdateContact validates and updates a contact owned by the user
func (s *ContactService) UpdateContact(contactID, userID uint64, input ContactInput) (*models.Contact, error) {
	contact, err := s.GetContact(contactID, userID)
	if err != nil {
		return nil, err
	}

	if err := validateContactInput(input); err != nil {
		return nil, err
	}

	contact.Name = input.Name
	contact.WhatsAppNumber = utils.NormalizePhone(input.WhatsAppNumber)

	if err := s.contactRepo.Update(contact); err != nil {
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}

	return contact, nil
}

// DeleteContact removes a contact, nulling card references first so cards
// survive the deletion without a dangling contact id.
func (s *ContactService) DeleteContact(contactID, userID uint64) error {
	if _, err := s.GetContact(contactID, userID); err != nil {
		return err
	}

	if err := s.cardRepo.ClearContactRefs(contactID); err != nil {
		return fmt.Errorf("failed to clear card references: %w", err)
	}

	if err := s.contactRepo.Delete(contactID); err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}

	return nil
}

func validateContactInput(input ContactInput) error {
	if input.Name == "" {
		return ErrContactNameRequired
	}
	if utf8.RuneCountInString(input.Name) > constants.MaxContactNameLength {
		return ErrContactNameTooLong
	}
	if len(input.WhatsAppNumber) > constants.MaxPhoneNumberLength {
		return utils.ErrPhoneInvalidFormat
	}
	return utils.ValidatePhone(input.WhatsAppNumber)
}

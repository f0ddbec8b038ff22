package repository

import (
	"github.com/brunofarias/zapboard/internal/database"
	"github.com/brunofarias/zapboard/internal/models"
	"github.com/brunofarias/zapboard/internal/utils"
	"gorm.io/gorm"
)

// GormContactRepository is a GORM implementation of ContactRepository
type GormContactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new ContactRepository
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &GormContactRepository{db: db}
}

// Create creates a new contact
func (r *GormContactRepository) Create(contact *models.Contact) error {
	return r.db.Create(contact).Error
}

// FindByIDAndUser finds a contact owned by the given user
func (r *GormContactRepository) FindByIDAndUser(id, userID uint64) (*models.Contact, error) {
	var contact models.Contact
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).
		First(&contact).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

// ListByUserID lists a page of a user's contacts ordered by name, along
// with the unpaginated total
func (r *GormContactRepository) ListByUserID(userID uint64, params utils.PaginationParams) ([]models.Contact, int64, error) {
	query := r.db.Model(&models.Contact{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var contacts []models.Contact
	if err := query.
		Order("name ASC").
		Scopes(database.Paginate(params)).
		Find(&contacts).Error; err != nil {
		return nil, 0, err
	}
	return contacts, total, nil
}

// Update updates a contact
func (r *GormContactRepository) Update(contact *models.Contact) error {
	return r.db.Save(contact).Error
}

// Delete removes a contact
func (r *GormContactRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Contact{}, id).Error
}

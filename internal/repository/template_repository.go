package repository

import (
	"errors"

	"github.com/brunofarias/zapboard/internal/models"
	"gorm.io/gorm"
)

// GormTemplateRepository is a GORM implementation of TemplateRepository
type GormTemplateRepository struct {
	db *gorm.DB
}

// NewTemplateRepository creates a new TemplateRepository
func NewTemplateRepository(db *gorm.DB) TemplateRepository {
	return &GormTemplateRepository{db: db}
}

// FindByColumnID finds the template attached to a column
func (r *GormTemplateRepository) FindByColumnID(columnID uint64) (*models.NotificationTemplate, error) {
	var template models.NotificationTemplate
	if err := r.db.Where("column_id = ?", columnID).
		First(&template).Error; err != nil {
		return nil, err
	}
	return &template, nil
}

// Create creates a template for a column
func (r *GormTemplateRepository) Create(template *models.NotificationTemplate) error {
	return r.db.Create(template).Error
}

// Upsert creates or replaces the template for a column
func (r *GormTemplateRepository) Upsert(columnID uint64, body string, isActive bool) (*models.NotificationTemplate, error) {
	var template models.NotificationTemplate
	err := r.db.Where("column_id = ?", columnID).First(&template).Error
	switch {
	case err == nil:
		template.Template = body
		template.IsActive = isActive
		if err := r.db.Save(&template).Error; err != nil {
			return nil, err
		}
		return &template, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		template = models.NotificationTemplate{
			ColumnID: columnID,
			Template: body,
			IsActive: isActive,
		}
		if err := r.db.Create(&template).Error; err != nil {
			return nil, err
		}
		return &template, nil
	default:
		return nil, err
	}
}

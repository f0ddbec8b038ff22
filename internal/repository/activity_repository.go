package repository

import (
	"github.com/brunofarias/zapboard/internal/constants"
	"github.com/brunofarias/zapboard/internal/models"
	"gorm.io/gorm"
)

// GormActivityRepository is a GORM implementation of ActivityRepository
type GormActivityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &GormActivityRepository{db: db}
}

// CreateLog appends an activity log entry
func (r *GormActivityRepository) CreateLog(entry *models.ActivityLog) error {
	return r.db.Create(entry).Error
}

// CreateCardActivity appends a card transition record
func (r *GormActivityRepository) CreateCardActivity(activity *models.CardActivity) error {
	return r.db.Create(activity).Error
}

// ListLogs returns log entries, newest first
func (r *GormActivityRepository) ListLogs(filter ActivityFilter) ([]models.ActivityLog, error) {
	query := r.db.Model(&models.ActivityLog{})

	if filter.BoardID != nil {
		query = query.Where("board_id = ?", *filter.BoardID)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = constants.DefaultActivityLogLimit
	}
	if limit > constants.MaxActivityLogLimit {
		limit = constants.MaxActivityLogLimit
	}

	var logs []models.ActivityLog
	if err := query.Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// ListCardActivities returns a card's transition records, newest first
func (r *GormActivityRepository) ListCardActivities(cardID uint64) ([]models.CardActivity, error) {
	var activities []models.CardActivity
	if err := r.db.Where("card_id = ?", cardID).
		Order("created_at DESC").
		Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

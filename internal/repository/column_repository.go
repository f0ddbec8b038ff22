package repository

import (
	"github.com/brunofarias/zapboard/internal/models"
	"gorm.io/gorm"
)

// GormColumnRepository is a GORM implementation of ColumnRepository
type GormColumnRepository struct {
	db *gorm.DB
}

// NewColumnRepository creates a new ColumnRepository
func NewColumnRepository(db *gorm.DB) ColumnRepository {
	return &GormColumnRepository{db: db}
}

// Create creates a column at the given order
func (r *GormColumnRepository) Create(column *models.Column) error {
	return r.db.Create(column).Error
}

// FindByID finds a column by ID with optional preloading
func (r *GormColumnRepository) FindByID(id uint64, preload ...string) (*models.Column, error) {
	var column models.Column
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&column, id).Error; err != nil {
		return nil, err
	}

	return &column, nil
}

// Update persists title changes
func (r *GormColumnRepository) Update(column *models.Column) error {
	return r.db.Save(column).Error
}

// Reorder moves a column to newOrder, shifting its board siblings so the
// board keeps a dense 0..N-1 sequence. All updates run in one transaction.
func (r *GormColumnRepository) Reorder(column *models.Column, newOrder int) error {
	oldOrder := column.Order
	if newOrder == oldOrder {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if newOrder > oldOrder {
			// Close the gap: siblings in (old, new] shift down
			err := tx.Model(&models.Column{}).
				Where("board_id = ? AND position > ? AND position <= ?", column.BoardID, oldOrder, newOrder).
				UpdateColumn("position", gorm.Expr("position - 1")).Error
			if err != nil {
				return err
			}
		} else {
			// Open a slot: siblings in [new, old) shift up
			err := tx.Model(&models.Column{}).
				Where("board_id = ? AND position >= ? AND position < ?", column.BoardID, newOrder, oldOrder).
				UpdateColumn("position", gorm.Expr("position + 1")).Error
			if err != nil {
				return err
			}
		}

		column.Order = newOrder
		return tx.Model(column).UpdateColumn("position", newOrder).Error
	})
}

// Delete removes a column together with its cards and template, and
// decrements the order of every sibling that sat after it.
func (r *GormColumnRepository) Delete(column *models.Column) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("column_id = ?", column.ID).
			Delete(&models.Card{}).Error; err != nil {
			return err
		}

		if err := tx.Where("column_id = ?", column.ID).
			Delete(&models.NotificationTemplate{}).Error; err != nil {
			return err
		}

		if err := tx.Delete(&models.Column{}, column.ID).Error; err != nil {
			return err
		}

		return tx.Model(&models.Column{}).
			Where("board_id = ? AND position > ?", column.BoardID, column.Order).
			UpdateColumn("position", gorm.Expr("position - 1")).Error
	})
}

// ListByBoard lists a board's columns in order with templates preloaded
func (r *GormColumnRepository) ListByBoard(boardID uint64) ([]models.Column, error) {
	var columns []models.Column
	err := r.db.Preload("NotificationTemplate").
		Where("board_id = ?", boardID).
		Order("position ASC").
		Find(&columns).Error
	if err != nil {
		return nil, err
	}
	return columns, nil
}

// NextOrder returns the order for appending a column to a board
func (r *GormColumnRepository) NextOrder(boardID uint64) (int, error) {
	var count int64
	if err := r.db.Model(&models.Column{}).
		Where("board_id = ?", boardID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

// CountByBoard returns the number of columns on a board
func (r *GormColumnRepository) CountByBoard(boardID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Column{}).
		Where("board_id = ?", boardID).
		Count(&count).Error
	return count, err
}

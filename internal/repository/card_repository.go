package repository

import (
	"github.com/brunofarias/zapboard/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCardRepository is a GORM implementation of CardRepository
type GormCardRepository struct {
	db *gorm.DB
}

// NewCardRepository creates a new CardRepository
func NewCardRepository(db *gorm.DB) CardRepository {
	return &GormCardRepository{db: db}
}

// Create creates a card at the given order
func (r *GormCardRepository) Create(card *models.Card) error {
	return r.db.Create(card).Error
}

// FindByID finds a card by ID with optional preloading
func (r *GormCardRepository) FindByID(id uint64, preload ...string) (*models.Card, error) {
	var card models.Card
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&card, id).Error; err != nil {
		return nil, err
	}

	return &card, nil
}

// Update persists field changes that do not affect ordering. Associations
// are omitted so a preloaded Contact cannot re-fill a cleared contact_id.
func (r *GormCardRepository) Update(card *models.Card) error {
	return r.db.Omit(clause.Associations).Save(card).Error
}

// Reorder moves a card within its column, shifting siblings so the column
// keeps a dense 0..N-1 sequence. All updates run in one transaction.
func (r *GormCardRepository) Reorder(card *models.Card, newOrder int) error {
	oldOrder := card.Order
	if newOrder == oldOrder {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if newOrder > oldOrder {
			err := tx.Model(&models.Card{}).
				Where("column_id = ? AND position > ? AND position <= ?", card.ColumnID, oldOrder, newOrder).
				UpdateColumn("position", gorm.Expr("position - 1")).Error
			if err != nil {
				return err
			}
		} else {
			err := tx.Model(&models.Card{}).
				Where("column_id = ? AND position >= ? AND position < ?", card.ColumnID, newOrder, oldOrder).
				UpdateColumn("position", gorm.Expr("position + 1")).Error
			if err != nil {
				return err
			}
		}

		card.Order = newOrder
		return tx.Model(card).UpdateColumn("position", newOrder).Error
	})
}

// Move places a card into another column at toOrder. The source column's
// gap is closed and the destination column's slot is opened, both inside
// one transaction so the dense invariant holds in each column.
func (r *GormCardRepository) Move(card *models.Card, toColumnID uint64, toOrder int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// Close the gap in the source column
		err := tx.Model(&models.Card{}).
			Where("column_id = ? AND position > ?", card.ColumnID, card.Order).
			UpdateColumn("position", gorm.Expr("position - 1")).Error
		if err != nil {
			return err
		}

		// Open a slot in the destination column
		err = tx.Model(&models.Card{}).
			Where("column_id = ? AND position >= ?", toColumnID, toOrder).
			UpdateColumn("position", gorm.Expr("position + 1")).Error
		if err != nil {
			return err
		}

		card.ColumnID = toColumnID
		card.Order = toOrder
		return tx.Model(card).
			UpdateColumns(map[string]interface{}{
				"column_id": toColumnID,
				"position":  toOrder,
			}).Error
	})
}

// Delete removes a card and decrements the order of every sibling after it
func (r *GormCardRepository) Delete(card *models.Card) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Card{}, card.ID).Error; err != nil {
			return err
		}

		return tx.Model(&models.Card{}).
			Where("column_id = ? AND position > ?", card.ColumnID, card.Order).
			UpdateColumn("position", gorm.Expr("position - 1")).Error
	})
}

// NextOrder returns the order for appending a card to a column
func (r *GormCardRepository) NextOrder(columnID uint64) (int, error) {
	var count int64
	if err := r.db.Model(&models.Card{}).
		Where("column_id = ?", columnID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

// CountByColumn returns the number of cards in a column
func (r *GormCardRepository) CountByColumn(columnID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Card{}).
		Where("column_id = ?", columnID).
		Count(&count).Error
	return count, err
}

// ClearContactRefs nulls the contact reference on all cards pointing at it
func (r *GormCardRepository) ClearContactRefs(contactID uint64) error {
	return r.db.Model(&models.Card{}).
		Where("contact_id = ?", contactID).
		UpdateColumn("contact_id", nil).Error
}

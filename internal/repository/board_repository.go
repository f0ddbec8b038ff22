package repository

import (
	"github.com/brunofarias/zapboard/internal/models"
	"gorm.io/gorm"
)

// GormBoardRepository is a GORM implementation of BoardRepository
type GormBoardRepository struct {
	db *gorm.DB
}

// NewBoardRepository creates a new BoardRepository
func NewBoardRepository(db *gorm.DB) BoardRepository {
	return &GormBoardRepository{db: db}
}

// CreateWithDefaultColumns creates a board and its starter columns atomically
func (r *GormBoardRepository) CreateWithDefaultColumns(board *models.Board) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(board).Error; err != nil {
			return err
		}

		columns := make([]models.Column, len(models.DefaultColumnTitles))
		for i, title := range models.DefaultColumnTitles {
			columns[i] = models.Column{
				Title:   title,
				Order:   i,
				BoardID: board.ID,
			}
		}

		if err := tx.Create(&columns).Error; err != nil {
			return err
		}

		board.Columns = columns
		return nil
	})
}

// FindByID finds a board by ID with optional preloading
func (r *GormBoardRepository) FindByID(id uint64, preload ...string) (*models.Board, error) {
	var board models.Board
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&board, id).Error; err != nil {
		return nil, err
	}

	return &board, nil
}

// ListByUserID lists a user's boards with ordered columns and cards
func (r *GormBoardRepository) ListByUserID(userID uint64) ([]models.Board, error) {
	var boards []models.Board
	err := r.db.
		Preload("Columns", func(db *gorm.DB) *gorm.DB {
			return db.Order("columns.position ASC")
		}).
		Preload("Columns.Cards", func(db *gorm.DB) *gorm.DB {
			return db.Order("cards.position ASC")
		}).
		Preload("Columns.Cards.Contact").
		Preload("Columns.NotificationTemplate").
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&boards).Error
	if err != nil {
		return nil, err
	}
	return boards, nil
}

// FindWithContents loads a board with ordered columns, cards, contacts
// and templates
func (r *GormBoardRepository) FindWithContents(id uint64) (*models.Board, error) {
	var board models.Board
	err := r.db.
		Preload("Columns", func(db *gorm.DB) *gorm.DB {
			return db.Order("columns.position ASC")
		}).
		Preload("Columns.Cards", func(db *gorm.DB) *gorm.DB {
			return db.Order("cards.position ASC")
		}).
		Preload("Columns.Cards.Contact").
		Preload("Columns.NotificationTemplate").
		First(&board, id).Error
	if err != nil {
		return nil, err
	}
	return &board, nil
}

// Update updates a board
func (r *GormBoardRepository) Update(board *models.Board) error {
	return r.db.Save(board).Error
}

// Delete removes a board and all reachable columns, cards and templates in
// one transaction so no orphans survive.
func (r *GormBoardRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var columnIDs []uint64
		if err := tx.Model(&models.Column{}).
			Where("board_id = ?", id).
			Pluck("id", &columnIDs).Error; err != nil {
			return err
		}

		if len(columnIDs) > 0 {
			if err := tx.Where("column_id IN ?", columnIDs).
				Delete(&models.Card{}).Error; err != nil {
				return err
			}

			if err := tx.Where("column_id IN ?", columnIDs).
				Delete(&models.NotificationTemplate{}).Error; err != nil {
				return err
			}

			if err := tx.Where("board_id = ?", id).
				Delete(&models.Column{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&models.Board{}, id).Error
	})
}

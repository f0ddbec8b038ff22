package services

import (
	"errors"
	"fmt"

	"github.com/brunofarias/zapboard/internal/models"
	"github.com/brunofarias/zapboard/internal/repository"
	"gorm.io/gorm"
)

var ErrColumnNotFound = errors.New("column not found")

// ColumnService handles column business logic, including the dense-order
// invariant across a board's columns.
type ColumnService struct {
	columnRepo repository.ColumnRepository
	boardRepo  repository.BoardRepository
}

// NewColumnService creates a new ColumnService
func NewColumnService(columnRepo repository.ColumnRepository, boardRepo repository.BoardRepository) *ColumnService {
	return &ColumnService{
		columnRepo: columnRepo,
		boardRepo:  boardRepo,
	}
}

// CreateColumnInput represents input for creating a column
type CreateColumnInput struct {
	Title   string
	BoardID uint64
	Order   *int
	UserID  uint64
}

// UpdateColumnInput represents input for updating a column
type UpdateColumnInput struct {
	Title *string
	Order *int
}

// CreateColumn creates a column on a board the user owns. Without an
// explicit order the column is appended; with one, it is clamped into
// the valid range and siblings shift to make room.
func (s *ColumnService) CreateColumn(input CreateColumnInput) (*models.Column, error) {
	if input.Title == "" {
		return nil, ErrTitleRequired
	}

	board, err := s.boardRepo.FindByID(input.BoardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBoardNotFound
		}
		return nil, fmt.Errorf("failed to find board: %w", err)
	}
	if board.UserID != input.UserID {
		return nil, ErrBoardNotFound
	}

	next, err := s.columnRepo.NextOrder(input.BoardID)
	if err != nil {
		return nil, fmt.Errorf("failed to determine column order: %w", err)
	}

	column := &models.Column{
		Title:   input.Title,
		Order:   next,
		BoardID: input.BoardID,
	}

	if err := s.columnRepo.Create(column); err != nil {
		return nil, fmt.Errorf("failed to create column: %w", err)
	}

	if input.Order != nil && *input.Order < next {
		target := *input.Order
		if target < 0 {
			target = 0
		}
		if err := s.columnRepo.Reorder(column, target); err != nil {
			return nil, fmt.Errorf("failed to place column: %w", err)
		}
	}

	return column, nil
}

// UpdateColumn renames and/or reorders a column the user owns
func (s *ColumnService) UpdateColumn(columnID, userID uint64, input UpdateColumnInput) (*models.Column, error) {
	column, err := s.findOwned(columnID, userID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, ErrTitleEmpty
		}
		column.Title = *input.Title
		if err := s.columnRepo.Update(column); err != nil {
			return nil, fmt.Errorf("failed to update column: %w", err)
		}
	}

	if input.Order != nil {
		count, err := s.columnRepo.CountByBoard(column.BoardID)
		if err != nil {
			return nil, fmt.Errorf("failed to count columns: %w", err)
		}

		target := clampOrder(*input.Order, int(count))
		if err := s.columnRepo.Reorder(column, target); err != nil {
			return nil, fmt.Errorf("failed to reorder column: %w", err)
		}
	}

	return column, nil
}

// DeleteColumn removes a column the user owns, cascading to its cards and
// template and closing the order gap among siblings.
func (s *ColumnService) DeleteColumn(columnID, userID uint64) error {
	column, err := s.findOwned(columnID, userID)
	if err != nil {
		return err
	}

	if err := s.columnRepo.Delete(column); err != nil {
		return fmt.Errorf("failed to delete column: %w", err)
	}

	return nil
}

func (s *ColumnService) findOwned(columnID, userID uint64) (*models.Column, error) {
	column, err := s.columnRepo.FindByID(columnID, "Board")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrColumnNotFound
		}
		return nil, fmt.Errorf("failed to find column: %w", err)
	}

	if column.Board.UserID != userID {
		return nil, ErrColumnNotFound
	}

	return column, nil
}

// clampOrder confines a requested order to the dense range of n siblings.
func clampOrder(order, n int) int {
	if order < 0 {
		return 0
	}
	if n > 0 && order > n-1 {
		return n - 1
	}
	return order
}

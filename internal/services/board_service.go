package services

import (
	"errors"
	"fmt"

	"github.com/brunofarias/zapboard/internal/models"
	"github.com/brunofarias/zapboard/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrBoardNotFound = errors.New("board not found")
	ErrTitleRequired = errors.New("title is required")
	ErrTitleEmpty    = errors.New("title cannot be empty")
)

// BoardService handles board business logic
type BoardService struct {
	boardRepo repository.BoardRepository
}

// NewBoardService creates a new BoardService
func NewBoardService(boardRepo repository.BoardRepository) *BoardService {
	return &BoardService{boardRepo: boardRepo}
}

// CreateBoardInput represents input for creating a board
type CreateBoardInput struct {
	Title       string
	Description string
	UserID      uint64
}

// UpdateBoardInput represents input for updating a board
type UpdateBoardInput struct {
	Title       *string
	Description *string
}

// ListBoards returns the user's boards with ordered columns and cards
func (s *BoardService) ListBoards(userID uint64) ([]models.Board, error) {
	boards, err := s.boardRepo.ListByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list boards: %w", err)
	}
	return boards, nil
}

// GetBoard returns a board owned by the user, columns and cards ordered
func (s *BoardService) GetBoard(boardID, userID uint64) (*models.Board, error) {
	board, err := s.boardRepo.FindWithContents(boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBoardNotFound
		}
		return nil, fmt.Errorf("failed to find board: %w", err)
	}

	if board.UserID != userID {
		// Hide the board's existence from non-owners
		return nil, ErrBoardNotFound
	}

	return board, nil
}

// CreateBoard creates a board with the three default columns
func (s *BoardService) CreateBoard(input CreateBoardInput) (*models.Board, error) {
	if input.Title == "" {
		return nil, ErrTitleRequired
	}

	board := &models.Board{
		Title:       input.Title,
		Description: input.Description,
		UserID:      input.UserID,
	}

	if err := s.boardRepo.CreateWithDefaultColumns(board); err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	return board, nil
}

// UpdateBoard updates a board owned by the user
func (s *BoardService) UpdateBoard(boardID, userID uint64, input UpdateBoardInput) (*models.Board, error) {
	board, err := s.findOwned(boardID, userID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, ErrTitleEmpty
		}
		board.Title = *input.Title
	}
	if input.Description != nil {
		board.Description = *input.Description
	}

	if err := s.boardRepo.Update(board); err != nil {
		return nil, fmt.Errorf("failed to update board: %w", err)
	}

	return board, nil
}

// DeleteBoard deletes a board and everything reachable from it
func (s *BoardService) DeleteBoard(boardID, userID uint64) error {
	if _, err := s.findOwned(boardID, userID); err != nil {
		return err
	}

	if err := s.boardRepo.Delete(boardID); err != nil {
		return fmt.Errorf("failed to delete board: %w", err)
	}

	return nil
}

func (s *BoardService) findOwned(boardID, userID uint64) (*models.Board, error) {
	board, err := s.boardRepo.FindByID(boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBoardNotFound
		}
		return nil, fmt.Errorf("failed to find board: %w", err)
	}

	if board.UserID != userID {
		return nil, ErrBoardNotFound
	}

	return board, nil
}

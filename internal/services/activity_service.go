package services

import (
	"errors"
	"fmt"

	"github.com/brunofarias/zapboard/internal/models"
	"github.com/brunofarias/zapboard/internal/repository"
	"gorm.io/gorm"
)

// ActivityService reads the append-only audit trail.
type ActivityService struct {
	activityRepo repository.ActivityRepository
	boardRepo    repository.BoardRepository
	cardRepo     repository.CardRepository
}

// NewActivityService creates a new ActivityService
func NewActivityService(
	activityRepo repository.ActivityRepository,
	boardRepo repository.BoardRepository,
	cardRepo repository.CardRepository,
) *ActivityService {
	return &ActivityService{
		activityRepo: activityRepo,
		boardRepo:    boardRepo,
		cardRepo:     cardRepo,
	}
}

// ListLogs returns activity log entries visible to the user, newest first.
// With a board filter the board must belong to the user; without one the
// user's own entries are returned.
func (s *ActivityService) ListLogs(userID uint64, boardID *uint64, limit int) ([]models.ActivityLog, error) {
	filter := repository.ActivityFilter{Limit: limit}

	if boardID != nil {
		board, err := s.boardRepo.FindByID(*boardID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrBoardNotFound
			}
			return nil, fmt.Errorf("failed to find board: %w", err)
		}
		if board.UserID != userID {
			return nil, ErrBoardNotFound
		}
		filter.BoardID = boardID
	} else {
		filter.UserID = &userID
	}

	logs, err := s.activityRepo.ListLogs(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity logs: %w", err)
	}
	return logs, nil
}

// ListCardActivities returns the transition history of a card the user owns.
func (s *ActivityService) ListCardActivities(cardID, userID uint64) ([]models.CardActivity, error) {
	card, err := s.cardRepo.FindByID(cardID, "Column", "Column.Board")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to find card: %w", err)
	}
	if card.Column.Board.UserID != userID {
		return nil, ErrCardNotFound
	}

	activities, err := s.activityRepo.ListCardActivities(cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list card activities: %w", err)
	}
	return activities, nil
}

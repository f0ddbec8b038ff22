package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/brunofarias/zapboard/internal/logger"
	"github.com/brunofarias/zapboard/internal/models"
	"github.com/brunofarias/zapboard/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrCardNotFound    = errors.New("card not found")
	ErrContentRequired = errors.New("content is required")
	ErrInvalidPriority = errors.New("invalid priority")
	ErrContactNotFound = errors.New("contact not found")
)

// CardService handles card business logic: CRUD, the dense-order invariant
// within a column, and the cross-column move that triggers notifications.
type CardService struct {
	cardRepo     repository.CardRepository
	columnRepo   repository.ColumnRepository
	contactRepo  repository.ContactRepository
	activityRepo repository.ActivityRepository
	notifier     *NotificationService
}

// NewCardService creates a new CardService
func NewCardService(
	cardRepo repository.CardRepository,
	columnRepo repository.ColumnRepository,
	contactRepo repository.ContactRepository,
	activityRepo repository.ActivityRepository,
	notifier *NotificationService,
) *CardService {
	return &CardService{
		cardRepo:     cardRepo,
		columnRepo:   columnRepo,
		contactRepo:  contactRepo,
		activityRepo: activityRepo,
		notifier:     notifier,
	}
}

// CreateCardInput represents input for creating a card
type CreateCardInput struct {
	Content           string
	Description       string
	ColumnID          uint64
	Order             *int
	Priority          models.CardPriority
	StartDate         *time.Time
	DueDate           *time.Time
	CompletedDate     *time.Time
	SendNotifications *bool
	ContactID         *uint64
	UserID            uint64
}

// UpdateCardInput represents input for updating a card. Pointer fields are
// applied only when set; Clear flags null the corresponding column.
type UpdateCardInput struct {
	Content           *string
	Description       *string
	ColumnID          *uint64
	Order             *int
	Priority          *models.CardPriority
	StartDate         *time.Time
	DueDate           *time.Time
	ClearDueDate      bool
	CompletedDate     *time.Time
	SendNotifications *bool
	ContactID         *uint64
	ClearContact      bool
}

// CreateCard creates a card in a column the user owns and logs the
// CARD_CREATED activity.
func (s *CardService) CreateCard(input CreateCardInput) (*models.Card, error) {
	if input.Content == "" {
		return nil, ErrContentRequired
	}

	column, err := s.findOwnedColumn(input.ColumnID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Priority == "" {
		input.Priority = models.PriorityMedium
	}
	if !input.Priority.Valid() {
		return nil, ErrInvalidPriority
	}

	if input.ContactID != nil {
		if _, err := s.contactRepo.FindByIDAndUser(*input.ContactID, input.UserID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrContactNotFound
			}
			return nil, fmt.Errorf("failed to verify contact: %w", err)
		}
	}

	next, err := s.cardRepo.NextOrder(input.ColumnID)
	if err != nil {
		return nil, fmt.Errorf("failed to determine card order: %w", err)
	}

	sendNotifications := true
	if input.SendNotifications != nil {
		sendNotifications = *input.SendNotifications
	}

	card := &models.Card{
		Content:           input.Content,
		Description:       input.Description,
		Order:             next,
		ColumnID:          input.ColumnID,
		Priority:          input.Priority,
		StartDate:         input.StartDate,
		DueDate:           input.DueDate,
		CompletedDate:     input.CompletedDate,
		SendNotifications: sendNotifications,
		ContactID:         input.ContactID,
	}

	if err := s.cardRepo.Create(card); err != nil {
		return nil, fmt.Errorf("failed to create card: %w", err)
	}

	if input.Order != nil && *input.Order < next {
		target := clampOrder(*input.Order, next+1)
		if err := s.cardRepo.Reorder(card, target); err != nil {
			return nil, fmt.Errorf("failed to place card: %w", err)
		}
	}

	boardID := column.BoardID
	userID := input.UserID
	if err := s.activityRepo.CreateLog(&models.ActivityLog{
		Type:        models.ActivityCardCreated,
		Description: fmt.Sprintf("Cartão %q criado na coluna %q", card.Content, column.Title),
		CardID:      &card.ID,
		ColumnID:    &column.ID,
		BoardID:     &boardID,
		UserID:      &userID,
	}); err != nil {
		logger.L().Error("failed to log card creation",
			zap.Uint64("card_id", card.ID), zap.Error(err))
	}

	return s.cardRepo.FindByID(card.ID, "Contact")
}

// GetCard returns a card owned by the user
func (s *CardService) GetCard(cardID, userID uint64) (*models.Card, error) {
	return s.findOwned(cardID, userID)
}

// UpdateCard applies field updates and, when column_id changes, performs
// the cross-column move: both columns are renumbered in one transaction
// and the notification pipeline runs afterwards. Notification failures
// never fail this operation.
func (s *CardService) UpdateCard(ctx context.Context, cardID, userID uint64, input UpdateCardInput) (*models.Card, error) {
	card, err := s.findOwned(cardID, userID)
	if err != nil {
		return nil, err
	}

	if input.Content != nil {
		if *input.Content == "" {
			return nil, ErrContentRequired
		}
		card.Content = *input.Content
	}
	if input.Description != nil {
		card.Description = *input.Description
	}
	if input.Priority != nil {
		if !input.Priority.Valid() {
			return nil, ErrInvalidPriority
		}
		card.Priority = *input.Priority
	}
	if input.StartDate != nil {
		card.StartDate = input.StartDate
	}
	if input.ClearDueDate {
		card.DueDate = nil
	} else if input.DueDate != nil {
		card.DueDate = input.DueDate
	}
	if input.CompletedDate != nil {
		card.CompletedDate = input.CompletedDate
	}
	if input.SendNotifications != nil {
		card.SendNotifications = *input.SendNotifications
	}
	if input.ClearContact {
		card.ContactID = nil
		card.Contact = nil
	} else if input.ContactID != nil {
		if _, err := s.contactRepo.FindByIDAndUser(*input.ContactID, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrContactNotFound
			}
			return nil, fmt.Errorf("failed to verify contact: %w", err)
		}
		card.ContactID = input.ContactID
	}

	if err := s.cardRepo.Update(card); err != nil {
		return nil, fmt.Errorf("failed to update card: %w", err)
	}

	switch {
	case input.ColumnID != nil && *input.ColumnID != card.ColumnID:
		if err := s.moveCard(ctx, card, *input.ColumnID, input.Order, userID); err != nil {
			return nil, err
		}
	case input.Order != nil:
		count, err := s.cardRepo.CountByColumn(card.ColumnID)
		if err != nil {
			return nil, fmt.Errorf("failed to count cards: %w", err)
		}
		if err := s.cardRepo.Reorder(card, clampOrder(*input.Order, int(count))); err != nil {
			return nil, fmt.Errorf("failed to reorder card: %w", err)
		}
	}

	return s.cardRepo.FindByID(card.ID, "Contact")
}

// DeleteCard removes a card the user owns and closes the order gap
func (s *CardService) DeleteCard(cardID, userID uint64) error {
	card, err := s.findOwned(cardID, userID)
	if err != nil {
		return err
	}

	if err := s.cardRepo.Delete(card); err != nil {
		return fmt.Errorf("failed to delete card: %w", err)
	}

	return nil
}

// moveCard relocates a card into another owned column and runs the
// notification pipeline for the transition.
func (s *CardService) moveCard(ctx context.Context, card *models.Card, toColumnID uint64, order *int, userID uint64) error {
	fromColumn, err := s.columnRepo.FindByID(card.ColumnID)
	if err != nil {
		return fmt.Errorf("failed to find source column: %w", err)
	}

	toColumn, err := s.findOwnedColumn(toColumnID, userID)
	if err != nil {
		return err
	}

	next, err := s.cardRepo.NextOrder(toColumnID)
	if err != nil {
		return fmt.Errorf("failed to determine destination order: %w", err)
	}

	target := next
	if order != nil {
		// The insert slot may be one past the last card
		target = clampOrder(*order, next+1)
	}

	if err := s.cardRepo.Move(card, toColumnID, target); err != nil {
		return fmt.Errorf("failed to move card: %w", err)
	}

	moved, err := s.cardRepo.FindByID(card.ID, "Contact")
	if err != nil {
		return fmt.Errorf("failed to reload card: %w", err)
	}
	*card = *moved

	s.notifier.ProcessCardMove(ctx, card, fromColumn, toColumn)
	return nil
}

// NotifyCard runs the notification pipeline on demand for a card the user
// owns, against the given column's template.
func (s *CardService) NotifyCard(ctx context.Context, cardID, columnID uint64, recipientPhone string, userID uint64) (DispatchOutcome, error) {
	card, err := s.findOwned(cardID, userID)
	if err != nil {
		return DispatchOutcome{}, err
	}

	column, err := s.findOwnedColumn(columnID, userID)
	if err != nil {
		return DispatchOutcome{}, err
	}

	return s.notifier.NotifyManual(ctx, card, column, recipientPhone), nil
}

func (s *CardService) findOwned(cardID, userID uint64) (*models.Card, error) {
	card, err := s.cardRepo.FindByID(cardID, "Column", "Column.Board", "Contact")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to find card: %w", err)
	}

	if card.Column.Board.UserID != userID {
		return nil, ErrCardNotFound
	}

	return card, nil
}

func (s *CardService) findOwnedColumn(columnID, userID uint64) (*models.Column, error) {
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

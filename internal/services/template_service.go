package services

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/brunofarias/zapboard/internal/constants"
	"github.com/brunofarias/zapboard/internal/models"
	"github.com/brunofarias/zapboard/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTemplateNotFound = errors.New("notification template not found")
	ErrTemplateExists   = errors.New("notification template already exists for this column")
	ErrTemplateRequired = errors.New("template is required")
	ErrTemplateTooLong  = fmt.Errorf("template exceeds %d characters", constants.MaxTemplateLength)
)

// TemplateService manages the per-column notification templates
type TemplateService struct {
	templateRepo repository.TemplateRepository
	columnRepo   repository.ColumnRepository
	boardRepo    repository.BoardRepository
}

// NewTemplateService creates a new TemplateService
func NewTemplateService(templateRepo repository.TemplateRepository, columnRepo repository.ColumnRepository, boardRepo repository.BoardRepository) *TemplateService {
	return &TemplateService{
		templateRepo: templateRepo,
		columnRepo:   columnRepo,
		boardRepo:    boardRepo,
	}
}

// ColumnTemplate pairs a column with its template state for board-level
// template listings.
type ColumnTemplate struct {
	ColumnID    uint64 `json:"column_id"`
	ColumnTitle string `json:"column_title"`
	Template    string `json:"template"`
	IsActive    bool   `json:"is_active"`
}

// ListForBoard returns the template state of every column on a board the
// user owns, in column order. Columns without a template appear inactive
// with an empty body.
func (s *TemplateService) ListForBoard(boardID, userID uint64) ([]ColumnTemplate, error) {
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

	columns, err := s.columnRepo.ListByBoard(boardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list columns: %w", err)
	}

	result := make([]ColumnTemplate, len(columns))
	for i, column := range columns {
		entry := ColumnTemplate{
			ColumnID:    column.ID,
			ColumnTitle: column.Title,
		}
		if column.NotificationTemplate != nil {
			entry.Template = column.NotificationTemplate.Template
			entry.IsActive = column.NotificationTemplate.IsActive
		}
		result[i] = entry
	}

	return result, nil
}

// TemplateInput represents input for creating or updating a template
type TemplateInput struct {
	Template string
	IsActive bool
}

// GetTemplate returns the template of a column the user owns
func (s *TemplateService) GetTemplate(columnID, userID uint64) (*models.NotificationTemplate, error) {
	if _, err := s.ownedColumn(columnID, userID); err != nil {
		return nil, err
	}

	template, err := s.templateRepo.FindByColumnID(columnID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("failed to find template: %w", err)
	}

	return template, nil
}

// OwnedColumn returns the column when the user owns its board.
func (s *TemplateService) OwnedColumn(columnID, userID uint64) (*models.Column, error) {
	return s.ownedColumn(columnID, userID)
}

// CreateTemplate attaches a template to a column that has none yet
func (s *TemplateService) CreateTemplate(columnID, userID uint64, input TemplateInput) (*models.NotificationTemplate, error) {
	if _, err := s.ownedColumn(columnID, userID); err != nil {
		return nil, err
	}
	if err := validateTemplateInput(input); err != nil {
		return nil, err
	}

	if _, err := s.templateRepo.FindByColumnID(columnID); err == nil {
		return nil, ErrTemplateExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check template: %w", err)
	}

	template := &models.NotificationTemplate{
		ColumnID: columnID,
		Template: input.Template,
		IsActive: input.IsActive,
	}

	if err := s.templateRepo.Create(template); err != nil {
		return nil, fmt.Errorf("failed to create template: %w", err)
	}

	return template, nil
}

// UpsertTemplate creates or replaces the column's template
func (s *TemplateService) UpsertTemplate(columnID, userID uint64, input TemplateInput) (*models.NotificationTemplate, error) {
	if _, err := s.ownedColumn(columnID, userID); err != nil {
		return nil, err
	}
	if err := validateTemplateInput(input); err != nil {
		return nil, err
	}

	template, err := s.templateRepo.Upsert(columnID, input.Template, input.IsActive)
	if err != nil {
		return nil, fmt.Errorf("failed to save template: %w", err)
	}

	return template, nil
}

// DefaultTemplate returns the starter notification template for a column.
func DefaultTemplate(columnTitle string) string {
	return fmt.Sprintf(`Olá! O cartão "{{card_title}}" foi movido para a coluna "%s" no quadro "{{board_title}}".

Detalhes do cartão:
- Descrição: {{card_description}}
- Prioridade: {{card_priority}}
- Data de vencimento: {{card_due_date}}

Data: {{date}}
Hora: {{time}}

Este é um serviço automatizado de notificações.`, columnTitle)
}

func (s *TemplateService) ownedColumn(columnID, userID uint64) (*models.Column, error) {
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

func validateTemplateInput(input TemplateInput) error {
	if input.Template == "" {
		return ErrTemplateRequired
	}
	if utf8.RuneCountInString(input.Template) > constants.MaxTemplateLength {
		return ErrTemplateTooLong
	}
	return nil
}

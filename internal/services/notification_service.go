package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/brunofarias/zapboard/internal/constants"
	"github.com/brunofarias/zapboard/internal/logger"
	"github.com/brunofarias/zapboard/internal/models"
	"github.com/brunofarias/zapboard/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DispatchOutcome describes what the notification pipeline did for one
// card movement. Skipped means no active template existed for the
// destination column, which is a successful no-op.
type DispatchOutcome struct {
	Sent          bool
	Skipped       bool
	Recipient     string
	MessageID     string
	Message       string
	FailureReason string
}

// NotificationService runs the card-move notification pipeline: resolve
// the destination column's template, pick a recipient, build the variable
// map, render and dispatch the message, and record the outcome. Every step
// is best-effort relative to the card move itself.
type NotificationService struct {
	templateRepo repository.TemplateRepository
	activityRepo repository.ActivityRepository
	sender       MessageSender
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(
	templateRepo repository.TemplateRepository,
	activityRepo repository.ActivityRepository,
	sender MessageSender,
) *NotificationService {
	return &NotificationService{
		templateRepo: templateRepo,
		activityRepo: activityRepo,
		sender:       sender,
	}
}

// IsNotificationEnabled reports whether the column has an active template.
func (s *NotificationService) IsNotificationEnabled(columnID uint64) bool {
	template, err := s.templateRepo.FindByColumnID(columnID)
	if err != nil {
		return false
	}
	return template.IsActive
}

// BuildCardVariables assembles the variable map for a card landing in
// toColumn. toColumn must have its Board preloaded; the card's Contact is
// optional.
func (s *NotificationService) BuildCardVariables(card *models.Card, toColumn *models.Column) map[string]any {
	dueDate := "Não definida"
	if card.DueDate != nil {
		dueDate = card.DueDate.Format("02/01/2006")
	}

	description := card.Description
	if description == "" {
		description = "Sem descrição"
	}

	contactName := "Cliente"
	if card.Contact != nil && card.Contact.Name != "" {
		contactName = card.Contact.Name
	}

	now := time.Now()

	return map[string]any{
		"board_title":      toColumn.Board.Title,
		"column_title":     toColumn.Title,
		"card_title":       card.Content,
		"card_description": description,
		"contact_name":     contactName,
		"card_priority":    card.Priority.Label(),
		"card_due_date":    dueDate,
		"date":             now.Format("02/01/2006"),
		"time":             now.Format("15:04"),
	}
}

// Dispatch runs pipeline steps 1-5 for a card that arrived in toColumn.
// recipientPhone, when non-empty, overrides the card contact's number.
// A missing or inactive template short-circuits into a no-op success.
func (s *NotificationService) Dispatch(ctx context.Context, card *models.Card, toColumn *models.Column, recipientPhone string) DispatchOutcome {
	template, err := s.templateRepo.FindByColumnID(toColumn.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DispatchOutcome{Skipped: true}
		}
		return DispatchOutcome{FailureReason: fmt.Sprintf("failed to load template: %v", err)}
	}
	if !template.IsActive {
		return DispatchOutcome{Skipped: true}
	}

	// A card-level opt-out silences automatic notifications; an explicit
	// recipient (manual send) bypasses it.
	if recipientPhone == "" && !card.SendNotifications {
		return DispatchOutcome{Skipped: true}
	}

	phone := recipientPhone
	if phone == "" && card.Contact != nil {
		phone = card.Contact.WhatsAppNumber
	}
	if phone == "" {
		return DispatchOutcome{FailureReason: "no recipient available for notification"}
	}

	variables := s.BuildCardVariables(card, toColumn)
	message := RenderTemplate(template.Template, variables)

	result := s.sender.Send(ctx, phone, message)

	outcome := DispatchOutcome{
		Sent:      result.Success,
		Recipient: phone,
		MessageID: result.MessageID,
		Message:   message,
	}
	if !result.Success {
		outcome.FailureReason = result.Error
	}
	return outcome
}

// ProcessCardMove runs the full pipeline for a cross-column move and
// records the audit trail: always one CardActivity and a CARD_MOVED log,
// plus a NOTIFICATION_SENT or ERROR log when a dispatch was attempted.
// Nothing here ever fails the move; errors are logged and swallowed.
func (s *NotificationService) ProcessCardMove(ctx context.Context, card *models.Card, fromColumn, toColumn *models.Column) DispatchOutcome {
	outcome := s.Dispatch(ctx, card, toColumn, "")

	activity := &models.CardActivity{
		CardID:            card.ID,
		FromColumnID:      fromColumn.ID,
		ToColumnID:        toColumn.ID,
		NotificationSent:  outcome.Sent,
		NotificationError: outcome.FailureReason,
	}
	if err := s.activityRepo.CreateCardActivity(activity); err != nil {
		logger.L().Error("failed to record card activity",
			zap.Uint64("card_id", card.ID), zap.Error(err))
	}

	boardID := toColumn.BoardID
	userID := toColumn.Board.UserID
	moveLog := &models.ActivityLog{
		Type: models.ActivityCardMoved,
		Description: fmt.Sprintf("Cartão %q movido de %q para %q",
			card.Content, fromColumn.Title, toColumn.Title),
		CardID:   &card.ID,
		ColumnID: &toColumn.ID,
		BoardID:  &boardID,
		UserID:   &userID,
		Metadata: models.JSONMap{
			"card_title":  card.Content,
			"from_column": fromColumn.Title,
			"to_column":   toColumn.Title,
			"board_title": toColumn.Board.Title,
			"notification": map[string]any{
				"sent":            outcome.Sent,
				"skipped":         outcome.Skipped,
				"recipient":       outcome.Recipient,
				"message_id":      outcome.MessageID,
				"error":           outcome.FailureReason,
				"message_summary": summarize(outcome.Message),
			},
		},
	}
	if err := s.activityRepo.CreateLog(moveLog); err != nil {
		logger.L().Error("failed to record card move log",
			zap.Uint64("card_id", card.ID), zap.Error(err))
	}

	switch {
	case outcome.Sent:
		s.appendLog(&models.ActivityLog{
			Type:        models.ActivityNotificationSent,
			Description: fmt.Sprintf("Notificação WhatsApp enviada para %s", outcome.Recipient),
			CardID:      &card.ID,
			ColumnID:    &toColumn.ID,
			BoardID:     &boardID,
			UserID:      &userID,
			Metadata: models.JSONMap{
				"message_id":      outcome.MessageID,
				"recipient":       outcome.Recipient,
				"message_summary": summarize(outcome.Message),
			},
		})
	case !outcome.Skipped:
		s.appendLog(&models.ActivityLog{
			Type:        models.ActivityError,
			Description: fmt.Sprintf("Falha ao notificar o cartão %q: %s", card.Content, outcome.FailureReason),
			CardID:      &card.ID,
			ColumnID:    &toColumn.ID,
			BoardID:     &boardID,
			UserID:      &userID,
			Metadata: models.JSONMap{
				"error":     outcome.FailureReason,
				"recipient": outcome.Recipient,
			},
		})
	}

	return outcome
}

// NotifyManual runs the pipeline on demand for a card against a column's
// template, as if the card had just arrived there. The outcome is logged
// but no CardActivity is recorded since no move happened.
func (s *NotificationService) NotifyManual(ctx context.Context, card *models.Card, toColumn *models.Column, recipientPhone string) DispatchOutcome {
	outcome := s.Dispatch(ctx, card, toColumn, recipientPhone)

	boardID := toColumn.BoardID
	userID := toColumn.Board.UserID
	switch {
	case outcome.Sent:
		s.appendLog(&models.ActivityLog{
			Type:        models.ActivityNotificationSent,
			Description: fmt.Sprintf("Notificação WhatsApp enviada para %s", outcome.Recipient),
			CardID:      &card.ID,
			ColumnID:    &toColumn.ID,
			BoardID:     &boardID,
			UserID:      &userID,
			Metadata: models.JSONMap{
				"message_id":      outcome.MessageID,
				"recipient":       outcome.Recipient,
				"message_summary": summarize(outcome.Message),
				"manual":          true,
			},
		})
	case !outcome.Skipped:
		s.appendLog(&models.ActivityLog{
			Type:        models.ActivityError,
			Description: fmt.Sprintf("Falha ao notificar o cartão %q: %s", card.Content, outcome.FailureReason),
			CardID:      &card.ID,
			ColumnID:    &toColumn.ID,
			BoardID:     &boardID,
			UserID:      &userID,
			Metadata: models.JSONMap{
				"error":     outcome.FailureReason,
				"recipient": outcome.Recipient,
				"manual":    true,
			},
		})
	}

	return outcome
}

// SendTest renders a template with caller-provided variables and sends it
// to an explicit phone number, logging the attempt on success.
func (s *NotificationService) SendTest(ctx context.Context, userID uint64, template, phoneNumber string, variables map[string]any) (SendResult, string) {
	message := RenderTemplate(template, variables)
	result := s.sender.Send(ctx, phoneNumber, message)

	if result.Success {
		s.appendLog(&models.ActivityLog{
			Type:        models.ActivityNotificationSent,
			Description: fmt.Sprintf("Enviou mensagem de teste para %s", phoneNumber),
			UserID:      &userID,
			Metadata: models.JSONMap{
				"recipient":       phoneNumber,
				"message_id":      result.MessageID,
				"message_summary": summarize(message),
			},
		})
	}

	return result, message
}

func (s *NotificationService) appendLog(entry *models.ActivityLog) {
	if err := s.activityRepo.CreateLog(entry); err != nil {
		logger.L().Error("failed to append activity log",
			zap.String("type", string(entry.Type)), zap.Error(err))
	}
}

// summarize truncates a message body for audit metadata, cutting on a
// rune boundary so accented text stays valid UTF-8.
func summarize(message string) string {
	runes := []rune(message)
	if len(runes) <= constants.MessageSummaryLength {
		return message
	}
	return string(runes[:constants.MessageSummaryLength]) + "..."
}

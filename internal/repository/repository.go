package repository

import (
	"github.com/brunofarias/zapboard/internal/models"
	"github.com/brunofarias/zapboard/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)
}

// BoardRepository defines the interface for board data access
type BoardRepository interface {
	// CreateWithDefaultColumns creates a board and its starter columns atomically
	CreateWithDefaultColumns(board *models.Board) error

	// FindByID finds a board by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Board, error)

	// ListByUserID lists a user's boards with ordered columns and cards
	ListByUserID(userID uint64) ([]models.Board, error)

	// FindWithContents loads a board with ordered columns, cards,
	// contacts and templates
	FindWithContents(id uint64) (*models.Board, error)

	// Update updates a board
	Update(board *models.Board) error

	// Delete removes a board and cascades to columns, cards and templates
	Delete(id uint64) error
}

// ColumnRepository defines the interface for column data access
type ColumnRepository interface {
	// Create creates a column at the given order
	Create(column *models.Column) error

	// FindByID finds a column by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Column, error)

	// Update persists title changes
	Update(column *models.Column) error

	// Reorder moves a column to a new order, shifting its board siblings
	Reorder(column *models.Column, newOrder int) error

	// Delete removes a column, its cards and template, closing the order gap
	Delete(column *models.Column) error

	// ListByBoard lists a board's columns in order with templates preloaded
	ListByBoard(boardID uint64) ([]models.Column, error)

	// NextOrder returns the order for appending a column to a board
	NextOrder(boardID uint64) (int, error)

	// CountByBoard returns the number of columns on a board
	CountByBoard(boardID uint64) (int64, error)
}

// CardRepository defines the interface for card data access
type CardRepository interface {
	// Create creates a card at the given order
	Create(card *models.Card) error

	// FindByID finds a card by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Card, error)

	// Update persists field changes that do not affect ordering
	Update(card *models.Card) error

	// Reorder moves a card within its column, shifting siblings
	Reorder(card *models.Card, newOrder int) error

	// Move places a card into another column at the given order,
	// renumbering both the source and destination columns
	Move(card *models.Card, toColumnID uint64, toOrder int) error

	// Delete removes a card, closing the order gap in its column
	Delete(card *models.Card) error

	// NextOrder returns the order for appending a card to a column
	NextOrder(columnID uint64) (int, error)

	// CountByColumn returns the number of cards in a column
	CountByColumn(columnID uint64) (int64, error)

	// ClearContactRefs nulls the contact reference on all cards pointing at it
	ClearContactRefs(contactID uint64) error
}

// ContactRepository defines the interface for contact data access
type ContactRepository interface {
	// Create creates a new contact
	Create(contact *models.Contact) error

	// FindByIDAndUser finds a contact owned by the given user
	FindByIDAndUser(id, userID uint64) (*models.Contact, error)

	// ListByUserID lists a page of a user's contacts ordered by name,
	// along with the unpaginated total
	ListByUserID(userID uint64, params utils.PaginationParams) ([]models.Contact, int64, error)

	// Update updates a contact
	Update(contact *models.Contact) error

	// Delete removes a contact
	Delete(id uint64) error
}

// TemplateRepository defines the interface for notification template data access
type TemplateRepository interface {
	// FindByColumnID finds the template attached to a column
	FindByColumnID(columnID uint64) (*models.NotificationTemplate, error)

	// Create creates a template for a column
	Create(template *models.NotificationTemplate) error

	// Upsert creates or replaces the template for a column
	Upsert(columnID uint64, template string, isActive bool) (*models.NotificationTemplate, error)
}

// ActivityRepository defines the interface for the append-only audit trail
type ActivityRepository interface {
	// CreateLog appends an activity log entry
	CreateLog(entry *models.ActivityLog) error

	// CreateCardActivity appends a card transition record
	CreateCardActivity(activity *models.CardActivity) error

	// ListLogs returns log entries, newest first
	ListLogs(filter ActivityFilter) ([]models.ActivityLog, error)

	// ListCardActivities returns a card's transition records, newest first
	ListCardActivities(cardID uint64) ([]models.CardActivity, error)
}

// ActivityFilter holds filtering options for listing activity logs
type ActivityFilter struct {
	BoardID *uint64
	UserID  *uint64
	Limit   int
}

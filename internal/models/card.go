package models

import "time"

type CardPriority string

const (
	PriorityLow    CardPriority = "LOW"
	PriorityMedium CardPriority = "MEDIUM"
	PriorityHigh   CardPriority = "HIGH"
	PriorityUrgent CardPriority = "URGENT"
)

// priorityLabels maps priorities to the pt-BR labels shown in notifications.
var priorityLabels = map[CardPriority]string{
	PriorityLow:    "Baixa",
	PriorityMedium: "Média",
	PriorityHigh:   "Alta",
	PriorityUrgent: "Urgente",
}

// Label returns the display label for the priority, defaulting to Média.
func (p CardPriority) Label() string {
	if label, ok := priorityLabels[p]; ok {
		return label
	}
	return "Média"
}

// Valid reports whether the priority is one of the known values.
func (p CardPriority) Valid() bool {
	_, ok := priorityLabels[p]
	return ok
}

type Card struct {
	ID                uint64       `gorm:"primarykey" json:"id"`
	Content           string       `gorm:"type:varchar(255);not null" json:"content"`
	Description       string       `gorm:"type:text" json:"description"`
	Order             int          `gorm:"column:position;not null" json:"order"`
	ColumnID          uint64       `gorm:"not null;index" json:"column_id"`
	Priority          CardPriority `gorm:"type:varchar(20);not null;default:'MEDIUM'" json:"priority"`
	StartDate         *time.Time   `json:"start_date"`
	DueDate           *time.Time   `json:"due_date"`
	CompletedDate     *time.Time   `json:"completed_date"`
	SendNotifications bool         `gorm:"not null;default:true" json:"send_notifications"`
	ContactID         *uint64      `gorm:"index" json:"contact_id"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`

	// Relations
	Column  Column   `gorm:"foreignKey:ColumnID" json:"-"`
	Contact *Contact `gorm:"foreignKey:ContactID" json:"contact,omitempty"`
}

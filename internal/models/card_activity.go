package models

import "time"

// CardActivity records one column-to-column transition of a card together
// with the notification outcome. Append-only.
type CardActivity struct {
	ID                uint64    `gorm:"primarykey" json:"id"`
	CardID            uint64    `gorm:"not null;index" json:"card_id"`
	FromColumnID      uint64    `gorm:"not null" json:"from_column_id"`
	ToColumnID        uint64    `gorm:"not null" json:"to_column_id"`
	NotificationSent  bool      `gorm:"not null;default:false" json:"notification_sent"`
	NotificationError string    `gorm:"type:text" json:"notification_error,omitempty"`
	CreatedAt         time.Time `json:"created_at"`

	// Relations
	Card Card `gorm:"foreignKey:CardID" json:"-"`
}

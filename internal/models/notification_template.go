package models

import "time"

// NotificationTemplate is the per-column WhatsApp message template. At most
// one exists per column; IsActive gates the notification pipeline.
type NotificationTemplate struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	ColumnID  uint64    `gorm:"uniqueIndex;not null" json:"column_id"`
	Template  string    `gorm:"type:text;not null" json:"template"`
	IsActive  bool      `gorm:"not null;default:false" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Column Column `gorm:"foreignKey:ColumnID" json:"-"`
}

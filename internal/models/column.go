package models

import "time"

type Column struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Order     int       `gorm:"column:position;not null" json:"order"`
	BoardID   uint64    `gorm:"not null;index" json:"board_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Board                Board                 `gorm:"foreignKey:BoardID" json:"-"`
	Cards                []Card                `gorm:"foreignKey:ColumnID" json:"cards,omitempty"`
	NotificationTemplate *NotificationTemplate `gorm:"foreignKey:ColumnID" json:"notification_template,omitempty"`
}

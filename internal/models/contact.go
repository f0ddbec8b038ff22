package models

import "time"

type Contact struct {
	ID             uint64    `gorm:"primarykey" json:"id"`
	Name           string    `gorm:"type:varchar(100);not null" json:"name"`
	WhatsAppNumber string    `gorm:"type:varchar(30);not null" json:"whatsapp_number"`
	UserID         uint64    `gorm:"not null;index" json:"user_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}

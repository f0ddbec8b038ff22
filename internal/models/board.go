package models

import "time"

type Board struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	UserID      uint64    `gorm:"not null;index" json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	User    User     `gorm:"foreignKey:UserID" json:"-"`
	Columns []Column `gorm:"foreignKey:BoardID" json:"columns,omitempty"`
}

// DefaultColumnTitles are the columns every new board starts with.
var DefaultColumnTitles = []string{"A fazer", "Em progresso", "Concluído"}

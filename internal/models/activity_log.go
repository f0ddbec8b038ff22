package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

type ActivityType string

const (
	ActivityCardCreated      ActivityType = "CARD_CREATED"
	ActivityCardMoved        ActivityType = "CARD_MOVED"
	ActivityNotificationSent ActivityType = "NOTIFICATION_SENT"
	ActivityError            ActivityType = "ERROR"
)

// JSONMap stores free-form metadata as a JSON column.
type JSONMap map[string]any

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *JSONMap) Scan(value any) error {
	if value == nil {
		*m = nil
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported type for JSONMap")
	}

	return json.Unmarshal(data, m)
}

// ActivityLog is an append-only audit entry. Rows are never updated.
type ActivityLog struct {
	ID          uint64       `gorm:"primarykey" json:"id"`
	Type        ActivityType `gorm:"type:varchar(30);not null;index" json:"type"`
	Description string       `gorm:"type:text;not null" json:"description"`
	CardID      *uint64      `gorm:"index" json:"card_id"`
	ColumnID    *uint64      `json:"column_id"`
	BoardID     *uint64      `gorm:"index" json:"board_id"`
	UserID      *uint64      `gorm:"index" json:"user_id"`
	Metadata    JSONMap      `gorm:"type:json" json:"metadata,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}

package database

import (
	"fmt"

	"gorm.io/gorm"
)

// AddIndexes adds performance-critical indexes beyond what AutoMigrate tags
// produce. Idempotent.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// Sibling ordering lookups
		{"columns", "idx_columns_board_position", "board_id, position"},
		{"cards", "idx_cards_column_position", "column_id, position"},

		// Activity feed filtering
		{"activity_logs", "idx_activity_logs_board_created", "board_id, created_at"},
		{"card_activities", "idx_card_activities_card_created", "card_id, created_at"},

		// Contact lookups per user
		{"contacts", "idx_contacts_user_name", "user_id, name"},
	}

	for _, idx := range indexes {
		var count int64
		err := db.Raw(`
			SELECT COUNT(*)
			FROM pg_indexes
			WHERE tablename = ? AND indexname = ?
		`, idx.table, idx.name).Scan(&count).Error

		if err != nil {
			return fmt.Errorf("failed to check index %s: %w", idx.name, err)
		}

		if count > 0 {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}

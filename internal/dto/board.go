package dto

import (
	"time"

	"github.com/brunofarias/zapboard/internal/models"
)

// BoardSummaryDTO represents a board in list responses with per-column
// counts instead of the full card payload.
type BoardSummaryDTO struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ColumnCount int       `json:"column_count"`
	CardCount   int       `json:"card_count"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToBoardSummaryDTO converts a board (columns and cards preloaded) to a
// summary DTO.
func ToBoardSummaryDTO(board models.Board) BoardSummaryDTO {
	cards := 0
	for _, column := range board.Columns {
		cards += len(column.Cards)
	}

	return BoardSummaryDTO{
		ID:          board.ID,
		Title:       board.Title,
		Description: board.Description,
		ColumnCount: len(board.Columns),
		CardCount:   cards,
		UpdatedAt:   board.UpdatedAt,
	}
}

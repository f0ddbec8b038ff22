package services

import (
	"testing"

	"github.com/brunofarias/zapboard/internal/models"
	"github.com/stretchr/testify/require"
)

func TestBoardService_CreateBoardSeedsDefaultColumns(t *testing.T) {
	env := setupServiceTestEnv(t)
	svc := NewBoardService(env.boardRepo)

	board, err := svc.CreateBoard(CreateBoardInput{
		Title:  "Novo quadro",
		UserID: env.user.ID,
	})
	require.NoError(t, err)
	require.Len(t, board.Columns, 3)

	for i, column := range board.Columns {
		require.Equal(t, models.DefaultColumnTitles[i], column.Title)
		require.Equal(t, i, column.Order)
	}
}

func TestBoardService_CreateBoardRequiresTitle(t *testing.T) {
	env := setupServiceTestEnv(t)
	svc := NewBoardService(env.boardRepo)

	_, err := svc.CreateBoard(CreateBoardInput{UserID: env.user.ID})
	require.ErrorIs(t, err, ErrTitleRequired)
}

func TestBoardService_GetBoardOrdersContents(t *testing.T) {
	env := setupServiceTestEnv(t)
	svc := NewBoardService(env.boardRepo)
	column := env.board.Columns[0]

	env.createCard(t, column.ID, "Primeiro")
	env.createCard(t, column.ID, "Segundo")

	board, err := svc.GetBoard(env.board.ID, env.user.ID)
	require.NoError(t, err)
	require.Len(t, board.Columns, 3)

	cards := board.Columns[0].Cards
	require.Len(t, cards, 2)
	require.Equal(t, "Primeiro", cards[0].Content)
	require.Equal(t, "Segundo", cards[1].Content)
}

func TestBoardService_GetBoardHidesForeignBoards(t *testing.T) {
	env := setupServiceTestEnv(t)
	svc := NewBoardService(env.boardRepo)

	intruder := models.User{Email: "outra@example.com", PasswordHash: "x"}
	require.NoError(t, env.db.Create(&intruder).Error)

	_, err := svc.GetBoard(env.board.ID, intruder.ID)
	require.ErrorIs(t, err, ErrBoardNotFound)
}

func TestBoardService_DeleteBoardCascades(t *testing.T) {
	env := setupServiceTestEnv(t)
	svc := NewBoardService(env.boardRepo)
	column := env.board.Columns[0]

	env.createCard(t, column.ID, "Condenado")
	_, err := env.templateRepo.Upsert(column.ID, "Olá", true)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteBoard(env.board.ID, env.user.ID))

	var columns, cards, templates int64
	require.NoError(t, env.db.Model(&models.Column{}).Where("board_id = ?", env.board.ID).Count(&columns).Error)
	require.NoError(t, env.db.Model(&models.Card{}).Count(&cards).Error)
	require.NoError(t, env.db.Model(&models.NotificationTemplate{}).Count(&templates).Error)
	require.Zero(t, columns)
	require.Zero(t, cards)
	require.Zero(t, templates)
}

func TestBoardService_UpdateBoardRejectsEmptyTitle(t *testing.T) {
	env := setupServiceTestEnv(t)
	svc := NewBoardService(env.boardRepo)

	empty := ""
	_, err := svc.UpdateBoard(env.board.ID, env.user.ID, UpdateBoardInput{Title: &empty})
	require.ErrorIs(t, err, ErrTitleEmpty)
}

package services

import (
	"strings"
	"testing"

	"github.com/brunofarias/zapboard/internal/constants"
	"github.com/stretchr/testify/require"
)

func setupTemplateService(env *serviceTestEnv) *TemplateService {
	return NewTemplateService(env.templateRepo, env.columnRepo, env.boardRepo)
}

func TestTemplateService_CreateAndGet(t *testing.T) {
	env := setupServiceTestEnv(t)
	svc := setupTemplateService(env)
	column := env.board.Columns[0]

	created, err := svc.CreateTemplate(column.ID, env.user.ID, TemplateInput{
		Template: "Olá {{contact_name}}",
		IsActive: true,
	})
	require.NoError(t, err)
	require.True(t, created.IsActive)

	got, err := svc.GetTemplate(column.ID, env.user.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)
}

func TestTemplateService_CreateRejectsDuplicate(t *testing.T) {
	env := setupServiceTestEnv(t)
	svc := setupTemplateService(env)
	column := env.board.Columns[0]

	_, err := svc.CreateTemplate(column.ID, env.user.ID, TemplateInput{Template: "Um", IsActive: true})
	require.NoError(t, err)

	_, err = svc.CreateTemplate(column.ID, env.user.ID, TemplateInput{Template: "Dois", IsActive: true})
	require.ErrorIs(t, err, ErrTemplateExists)
}

func TestTemplateService_UpsertReplacesExisting(t *testing.T) {
	env := setupServiceTestEnv(t)
	svc := setupTemplateService(env)
	column := env.board.Columns[0]

	first, err := svc.UpsertTemplate(column.ID, env.user.ID, TemplateInput{Template: "Primeiro", IsActive: true})
	require.NoError(t, err)

	second, err := svc.UpsertTemplate(column.ID, env.user.ID, TemplateInput{Template: "Segundo", IsActive: false})
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, "Segundo", second.Template)
	require.False(t, second.IsActive)
}

func TestTemplateService_ValidatesInput(t *testing.T) {
	env := setupServiceTestEnv(t)
	svc := setupTemplateService(env)
	column := env.board.Columns[0]

	_, err := svc.UpsertTemplate(column.ID, env.user.ID, TemplateInput{})
	require.ErrorIs(t, err, ErrTemplateRequired)

	_, err = svc.UpsertTemplate(column.ID, env.user.ID, TemplateInput{
		Template: strings.Repeat("a", constants.MaxTemplateLength+1),
	})
	require.ErrorIs(t, err, ErrTemplateTooLong)

	// Limit counts characters, so accented text at the limit is accepted
	// even though it is twice as many bytes.
	_, err = svc.UpsertTemplate(column.ID, env.user.ID, TemplateInput{
		Template: strings.Repeat("ã", constants.MaxTemplateLength),
	})
	require.NoError(t, err)
}

func TestTemplateService_ListForBoard(t *testing.T) {
	env := setupServiceTestEnv(t)
	svc := setupTemplateService(env)

	_, err := svc.UpsertTemplate(env.board.Columns[1].ID, env.user.ID, TemplateInput{
		Template: "Em progresso!",
		IsActive: true,
	})
	require.NoError(t, err)

	templates, err := svc.ListForBoard(env.board.ID, env.user.ID)
	require.NoError(t, err)
	require.Len(t, templates, 3)

	require.Empty(t, templates[0].Template)
	require.False(t, templates[0].IsActive)
	require.Equal(t, "Em progresso!", templates[1].Template)
	require.True(t, templates[1].IsActive)
}

func TestTemplateService_OwnershipHidesForeignColumns(t *testing.T) {
	env := setupServiceTestEnv(t)
	svc := setupTemplateService(env)

	_, err := svc.GetTemplate(env.board.Columns[0].ID, env.user.ID+999)
	require.ErrorIs(t, err, ErrColumnNotFound)
}

func TestDefaultTemplate(t *testing.T) {
	template := DefaultTemplate("Concluído")
	require.Contains(t, template, "Concluído")
	require.Contains(t, template, "{{card_title}}")
	require.Contains(t, template, "{{board_title}}")
}

package services

import (
	"strings"
	"testing"

	"github.com/brunofarias/zapboard/internal/constants"
	"github.com/brunofarias/zapboard/internal/models"
	"github.com/brunofarias/zapboard/internal/utils"
	"github.com/stretchr/testify/require"
)

func setupContactService(env *serviceTestEnv) *ContactService {
	return NewContactService(env.contactRepo, env.cardRepo)
}

func TestContactService_CreateNormalizesNumber(t *testing.T) {
	env := setupServiceTestEnv(t)
	svc := setupContactService(env)

	contact, err := svc.CreateContact(env.user.ID, ContactInput{
		Name:           "Maria Silva",
		WhatsAppNumber: "+55 (11) 99999-8888",
	})
	require.NoError(t, err)
	require.Equal(t, "+5511999998888", contact.WhatsAppNumber)
}

func TestContactService_CreateValidation(t *testing.T) {
	env := setupServiceTestEnv(t)
	svc := setupContactService(env)

	tests := []struct {
		name    string
		input   ContactInput
		wantErr error
	}{
		{"missing name", ContactInput{WhatsAppNumber: "+5511999998888"}, ErrContactNameRequired},
		{"missing country code", ContactInput{Name: "Maria", WhatsAppNumber: "11999998888"}, utils.ErrPhoneMissingCountryCode},
		{"too short", ContactInput{Name: "Maria", WhatsAppNumber: "+551199"}, utils.ErrPhoneTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateContact(env.user.ID, tt.input)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestContactService_ListIsPaginatedAndOrdered(t *testing.T) {
	env := setupServiceTestEnv(t)
	svc := setupContactService(env)

	for _, name := range []string{"Carla", "Ana", "Bruno"} {
		_, err := svc.CreateContact(env.user.ID, ContactInput{
			Name:           name,
			WhatsAppNumber: "+5511999998888",
		})
		require.NoError(t, err)
	}

	contacts, total, err := svc.ListContacts(env.user.ID, utils.PaginationParams{
		Page: 1, Limit: 2, Offset: 0,
	})
	require.NoError(t, err)
	require.EqualValues(t, 3, total)
	require.Len(t, contacts, 2)
	require.Equal(t, "Ana", contacts[0].Name)
	require.Equal(t, "Bruno", contacts[1].Name)
}

func TestContactService_DeleteClearsCardReferences(t *testing.T) {
	env := setupServiceTestEnv(t)
	svc := setupContactService(env)
	column := env.board.Columns[0]

	contact, err := svc.CreateContact(env.user.ID, ContactInput{
		Name:           "Maria",
		WhatsAppNumber: "+5511999998888",
	})
	require.NoError(t, err)

	card, err := env.cards.CreateCard(CreateCardInput{
		Content:   "Com contato",
		ColumnID:  column.ID,
		ContactID: &contact.ID,
		UserID:    env.user.ID,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteContact(contact.ID, env.user.ID))

	var reloaded models.Card
	require.NoError(t, env.db.First(&reloaded, card.ID).Error)
	require.Nil(t, reloaded.ContactID)
}

func TestContactService_OwnershipHidesForeignContacts(t *testing.T) {
	env := setupServiceTestEnv(t)
	svc := setupContactService(env)

	contact, err := svc.CreateContact(env.user.ID, ContactInput{
		Name:           "Maria",
		WhatsAppNumber: "+5511999998888",
	})
	require.NoError(t, err)

	intruder := models.User{Email: "outra@example.com", PasswordHash: "x"}
	require.NoError(t, env.db.Create(&intruder).Error)

	_, err = svc.GetContact(contact.ID, intruder.ID)
	require.ErrorIs(t, err, ErrContactNotFound)
}

func TestContactService_NameLengthLimit(t *testing.T) {
	env := setupServiceTestEnv(t)
	svc := setupContactService(env)

	long := make([]byte, constants.MaxContactNameLength+1)
	for i := range long {
		long[i] = 'a'
	}

	_, err := svc.CreateContact(env.user.ID, ContactInput{
		Name:           string(long),
		WhatsAppNumber: "+5511999998888",
	})
	require.ErrorIs(t, err, ErrContactNameTooLong)

	accented := strings.Repeat("ã", constants.MaxContactNameLength)
	contact, err := svc.CreateContact(env.user.ID, ContactInput{
		Name:           accented,
		WhatsAppNumber: "+5511999997777",
	})
	require.NoError(t, err)
	require.Equal(t, accented, contact.Name)
}

package services

import (
	"testing"

	"github.com/brunofarias/zapboard/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestAuthService_SignupAndLogin(t *testing.T) {
	env := setupServiceTestEnv(t)
	svc := NewAuthService(repository.NewUserRepository(env.db))

	user, err := svc.Signup(SignupInput{
		Email:    "  Bruno@Example.COM ",
		Name:     "Bruno",
		Password: "supersecret",
	})
	require.NoError(t, err)
	require.Equal(t, "bruno@example.com", user.Email)
	require.NotEqual(t, "supersecret", user.PasswordHash)

	logged, err := svc.Login(LoginInput{
		Email:    "bruno@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	require.Equal(t, user.ID, logged.ID)
}

func TestAuthService_SignupRejectsShortPassword(t *testing.T) {
	env := setupServiceTestEnv(t)
	svc := NewAuthService(repository.NewUserRepository(env.db))

	_, err := svc.Signup(SignupInput{
		Email:    "curta@example.com",
		Password: "curta",
	})
	require.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestAuthService_SignupRejectsDuplicateEmail(t *testing.T) {
	env := setupServiceTestEnv(t)
	svc := NewAuthService(repository.NewUserRepository(env.db))

	_, err := svc.Signup(SignupInput{Email: "dupe@example.com", Password: "supersecret"})
	require.NoError(t, err)

	_, err = svc.Signup(SignupInput{Email: "DUPE@example.com", Password: "supersecret"})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthService_LoginRejectsWrongPassword(t *testing.T) {
	env := setupServiceTestEnv(t)
	svc := NewAuthService(repository.NewUserRepository(env.db))

	_, err := svc.Signup(SignupInput{Email: "maria@example.com", Password: "supersecret"})
	require.NoError(t, err)

	_, err = svc.Login(LoginInput{Email: "maria@example.com", Password: "errada123"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(LoginInput{Email: "ninguem@example.com", Password: "supersecret"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

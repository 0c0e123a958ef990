package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/joineazy-go-api/internal/dto"
	"github.com/noah-isme/joineazy-go-api/internal/models"
)

func TestAuthRegisterAndAuthenticateRoundTrip(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewAuthService(f.users, f.sessions, f.validate, f.logger)

	registered, err := svc.Register(ctx, dto.RegisterRequest{
		Name:     "Ada",
		Email:    "ada@uni.edu",
		Password: "lovelace",
		Role:     models.RoleStudent,
	})
	require.NoError(t, err)
	require.NotEmpty(t, registered.Token)
	require.Equal(t, "ada@uni.edu", registered.User.Email)
	require.Positive(t, registered.User.Exp)

	current, ok, err := svc.Current(ctx)
	require.NoError(t, err)
	require.True(t, ok, "registration must establish a session")
	require.Equal(t, "ada@uni.edu", current.Email)

	authenticated, err := svc.Authenticate(ctx, dto.LoginRequest{Email: "ada@uni.edu", Password: "lovelace"})
	require.NoError(t, err)
	require.NotEmpty(t, authenticated.Token)
	require.Equal(t, models.RoleStudent, authenticated.User.Role)
}

func TestAuthRegisterRejectsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewAuthService(f.users, f.sessions, f.validate, f.logger)

	req := dto.RegisterRequest{Name: "Ada", Email: "ada@uni.edu", Password: "lovelace", Role: models.RoleStudent}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	req.Name = "Imposter"
	_, err = svc.Register(ctx, req)
	require.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestAuthRegisterValidatesPayload(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewAuthService(f.users, f.sessions, f.validate, f.logger)

	cases := []dto.RegisterRequest{
		{Name: "Ada", Email: "not-an-email", Password: "lovelace", Role: models.RoleStudent},
		{Name: "Ada", Email: "ada@uni.edu", Password: "short", Role: models.RoleStudent},
		{Name: "Ada", Email: "ada@uni.edu", Password: "lovelace", Role: "admin"},
		{Email: "ada@uni.edu", Password: "lovelace", Role: models.RoleStudent},
	}
	for _, req := range cases {
		_, err := svc.Register(ctx, req)
		require.Error(t, err)
	}
}

func TestAuthAuthenticateRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewAuthService(f.users, f.sessions, f.validate, f.logger)

	_, err := svc.Register(ctx, dto.RegisterRequest{Name: "Ada", Email: "ada@uni.edu", Password: "lovelace", Role: models.RoleStudent})
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, dto.LoginRequest{Email: "ada@uni.edu", Password: "wrong"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, dto.LoginRequest{Email: "nobody@uni.edu", Password: "lovelace"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	// Email matching is exact, so a case variant is an unknown account.
	_, err = svc.Authenticate(ctx, dto.LoginRequest{Email: "Ada@uni.edu", Password: "lovelace"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthLogoutClearsSession(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewAuthService(f.users, f.sessions, f.validate, f.logger)

	_, err := svc.Register(ctx, dto.RegisterRequest{Name: "Ada", Email: "ada@uni.edu", Password: "lovelace", Role: models.RoleStudent})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx))

	_, ok, err := svc.Current(ctx)
	require.NoError(t, err)
	require.False(t, ok)
}

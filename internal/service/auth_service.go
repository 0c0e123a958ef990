package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/noah-isme/joineazy-go-api/internal/dto"
	"github.com/noah-isme/joineazy-go-api/internal/models"
	"github.com/noah-isme/joineazy-go-api/internal/repository"
	"github.com/noah-isme/joineazy-go-api/internal/session"
)

// sessionLifetime is carried on the user record as exp. It is recorded but
// never enforced, matching the deployed behaviour.
const sessionLifetime = 24 * time.Hour

// AuthService exposes registration and login use cases.
type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (dto.AuthResponse, error)
	Authenticate(ctx context.Context, req dto.LoginRequest) (dto.AuthResponse, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (models.User, bool, error)
}

type authService struct {
	users     repository.UserRepository
	sessions  *session.Manager
	validator *validator.Validate
	logger    zerolog.Logger
	now       func() time.Time
}

// NewAuthService builds a new auth service.
func NewAuthService(users repository.UserRepository, sessions *session.Manager, validate *validator.Validate, logger zerolog.Logger) AuthService {
	return &authService{
		users:     users,
		sessions:  sessions,
		validator: validate,
		logger:    logger.With().Str("component", "auth_service").Logger(),
		now:       time.Now,
	}
}

// Register creates the account and establishes a session for it. Emails are
// unique with case-sensitive exact matching.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (dto.AuthResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.AuthResponse{}, err
	}

	user := models.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		Exp:      s.now().Add(sessionLifetime).UnixMilli(),
	}

	if err := s.users.Append(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return dto.AuthResponse{}, ErrDuplicateEmail
		}
		return dto.AuthResponse{}, err
	}

	token, err := s.sessions.Create(ctx, user)
	if err != nil {
		return dto.AuthResponse{}, err
	}

	s.logger.Info().Str("email", user.Email).Str("role", user.Role).Msg("user registered")

	return dto.AuthResponse{Token: token, User: dto.NewUserResponse(user)}, nil
}

// Authenticate matches email and password exactly and establishes a session.
func (s *authService) Authenticate(ctx context.Context, req dto.LoginRequest) (dto.AuthResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.AuthResponse{}, err
	}

	user, ok, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return dto.AuthResponse{}, err
	}
	if !ok || user.Password != req.Password {
		return dto.AuthResponse{}, ErrInvalidCredentials
	}

	token, err := s.sessions.Create(ctx, user)
	if err != nil {
		return dto.AuthResponse{}, err
	}

	s.logger.Info().Str("email", user.Email).Msg("user authenticated")

	return dto.AuthResponse{Token: token, User: dto.NewUserResponse(user)}, nil
}

// Logout clears the current session.
func (s *authService) Logout(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

// Current returns the session user, if any.
func (s *authService) Current(ctx context.Context) (models.User, bool, error) {
	return s.sessions.Read(ctx)
}

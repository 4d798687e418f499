package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/hongminglow/devcamper-be/internal/apperr"
	"github.com/hongminglow/devcamper-be/internal/auth"
	"github.com/hongminglow/devcamper-be/internal/models"
	"github.com/hongminglow/devcamper-be/internal/models/dto"
	"github.com/hongminglow/devcamper-be/internal/storage"
)

// AuthService registers users, verifies credentials and resolves tokens to identities.
type AuthService struct {
	users            storage.UserStore
	tokens           *auth.TokenManager
	allowAdminSignup bool
	validate         *validator.Validate
	logger           *zap.Logger

	// dummyHash is compared against when the email is unknown.
	dummyHash string
}

// NewAuthService constructs the service. It hashes a throwaway password up
// front so the first unknown-email login costs the same as any other.
func NewAuthService(users storage.UserStore, tokens *auth.TokenManager, allowAdminSignup bool, logger *zap.Logger) *AuthService {
	dummy, err := auth.HashPassword(dummyPassword)
	if err != nil {
		logger.Warn("build dummy password hash", zap.Error(err))
	}
	return &AuthService{
		users:            users,
		tokens:           tokens,
		allowAdminSignup: allowAdminSignup,
		validate:         newValidator(),
		logger:           logger,
		dummyHash:        dummy,
	}
}

const dummyPassword = "devcamper-timing-equalizer"

// Register creates a user and returns it with a freshly issued token.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (models.User, string, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := check(s.validate, req); err != nil {
		return models.User{}, "", err
	}
	role, ok := models.ParseRole(req.Role)
	if !ok {
		return models.User{}, "", apperr.Validation("role must be one of: user, admin")
	}
	if role == models.RoleAdmin && !s.allowAdminSignup {
		return models.User{}, "", apperr.Validation("The admin role can not be self-assigned")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return models.User{}, "", apperr.Internal("hash password", err)
	}

	created, err := s.users.CreateUser(ctx, models.User{
		Name:         req.Name,
		Email:        req.Email,
		Role:         role,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return models.User{}, "", apperr.Validation("Duplicate field value entered")
		}
		return models.User{}, "", apperr.Internal("create user", err)
	}
	created.PasswordHash = ""

	token, err := s.tokens.Generate(created)
	if err != nil {
		return models.User{}, "", apperr.Internal("generate token", err)
	}
	s.logger.Info("user registered", zap.Int64("user_id", created.ID), zap.String("role", string(created.Role)))
	return created, token, nil
}

// Login verifies an email and password pair. Unknown emails and wrong
// passwords both yield apperr.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return models.User{}, "", apperr.Validation("Please provide an email and password")
	}

	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			return models.User{}, "", apperr.Internal("find user", err)
		}
		// Burn a comparison so unknown emails cost the same as wrong passwords.
		auth.ComparePassword(s.dummyHash, password)
		return models.User{}, "", apperr.ErrInvalidCredentials
	}
	if !auth.ComparePassword(user.PasswordHash, password) {
		return models.User{}, "", apperr.ErrInvalidCredentials
	}
	user.PasswordHash = ""

	token, err := s.tokens.Generate(user)
	if err != nil {
		return models.User{}, "", apperr.Internal("generate token", err)
	}
	s.logger.Info("user logged in", zap.Int64("user_id", user.ID))
	return user, token, nil
}

// Authenticate resolves a bearer token to the user it was issued for.
func (s *AuthService) Authenticate(ctx context.Context, token string) (models.User, error) {
	id, err := s.tokens.Parse(token)
	if err != nil {
		s.logger.Debug("token rejected", zap.Error(err))
		return models.User{}, apperr.ErrUnauthorized
	}
	user, err := s.users.FindUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.User{}, apperr.ErrUnauthorized
		}
		return models.User{}, apperr.Internal("resolve token subject", err)
	}
	return user, nil
}

// Me returns the current state of the user's record.
func (s *AuthService) Me(ctx context.Context, id int64) (models.User, error) {
	user, err := s.users.FindUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.User{}, apperr.NotFound("No user with the id of %d", id)
		}
		return models.User{}, apperr.Internal("find user", err)
	}
	return user, nil
}

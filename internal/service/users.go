package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/hongminglow/devcamper-be/internal/apperr"
	"github.com/hongminglow/devcamper-be/internal/models"
	"github.com/hongminglow/devcamper-be/internal/storage"
)

// UserService backs the admin user-management routes.
type UserService struct {
	users  storage.UserStore
	logger *zap.Logger
}

func NewUserService(users storage.UserStore, logger *zap.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	out, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, apperr.Internal("list users", err)
	}
	return out, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (models.User, error) {
	u, err := s.users.FindUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.User{}, apperr.NotFound("No user with the id of %d", id)
		}
		return models.User{}, apperr.Internal("find user", err)
	}
	return u, nil
}

// Delete removes a user. Tokens issued to them stop resolving immediately.
func (s *UserService) Delete(ctx context.Context, actor models.User, id int64) error {
	if err := s.users.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperr.NotFound("No user with the id of %d", id)
		}
		return apperr.Internal("delete user", err)
	}
	s.logger.Info("user deleted", zap.Int64("user_id", id), zap.Int64("by", actor.ID))
	return nil
}

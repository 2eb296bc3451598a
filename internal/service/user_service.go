package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	apperrors "matchtrack/internal/errors"
	"matchtrack/internal/model"
	"matchtrack/internal/repository"
)

// UserService exposes user management operations.
type UserService interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	ResetPassword(ctx context.Context, id uint, password string) error
	DeleteUser(ctx context.Context, callerID, id uint) error
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService builds a UserService.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

// ResetPassword replaces the stored digest; the only mutation a user record
// ever receives after creation.
func (s *userService) ResetPassword(ctx context.Context, id uint, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.repo.UpdatePassword(ctx, id, string(hash))
}

// DeleteUser removes a user. Self-deletion is forbidden regardless of role.
func (s *userService) DeleteUser(ctx context.Context, callerID, id uint) error {
	if callerID == id {
		return apperrors.ErrSelfDelete
	}
	return s.repo.Delete(ctx, id)
}

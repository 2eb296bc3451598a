package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	apperrors "matchtrack/internal/errors"
)

func TestUserService_DeleteUser_SelfForbidden(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := NewUserService(mockRepo)

	// Self-deletion is rejected before the store is touched, admin or not.
	err := svc.DeleteUser(context.Background(), 3, 3)

	assert.ErrorIs(t, err, apperrors.ErrSelfDelete)
	mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestUserService_DeleteUser_Other(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("Delete", mock.Anything, uint(7)).Return(nil)
	svc := NewUserService(mockRepo)

	assert.NoError(t, svc.DeleteUser(context.Background(), 3, 7))
	mockRepo.AssertExpectations(t)
}

func TestUserService_ResetPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	var storedHash string
	mockRepo.On("UpdatePassword", mock.Anything, uint(5), mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) {
			storedHash = args.String(2)
		}).Return(nil)
	svc := NewUserService(mockRepo)

	err := svc.ResetPassword(context.Background(), 5, "newpassword")

	assert.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte("newpassword")))
	mockRepo.AssertExpectations(t)
}

package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"matchtrack/internal/model"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id uint, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPlayerRepository is a mock implementation of repository.PlayerRepository.
type MockPlayerRepository struct {
	mock.Mock
}

func (m *MockPlayerRepository) Create(ctx context.Context, player *model.Player) error {
	args := m.Called(ctx, player)
	return args.Error(0)
}

func (m *MockPlayerRepository) FindByName(ctx context.Context, name string) (*model.Player, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Player), args.Error(1)
}

func (m *MockPlayerRepository) List(ctx context.Context) ([]model.Player, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Player), args.Error(1)
}

// WithTransaction runs fn with a nil tx handle so service logic can be
// exercised without a database.
func (m *MockPlayerRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, tx interface{}) error) error {
	args := m.Called(ctx, fn)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx, nil)
}

func (m *MockPlayerRepository) FindByNameTx(ctx context.Context, tx interface{}, name string) (*model.Player, error) {
	args := m.Called(ctx, tx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Player), args.Error(1)
}

func (m *MockPlayerRepository) UpsertTotalsTx(ctx context.Context, tx interface{}, name string, line model.StatLine, cleanSheets int) error {
	args := m.Called(ctx, tx, name, line, cleanSheets)
	return args.Error(0)
}

func (m *MockPlayerRepository) ReverseTotalsTx(ctx context.Context, tx interface{}, playerID uint, line model.StatLine, cleanSheets int) error {
	args := m.Called(ctx, tx, playerID, line, cleanSheets)
	return args.Error(0)
}

func (m *MockPlayerRepository) DeleteTx(ctx context.Context, tx interface{}, id uint) error {
	args := m.Called(ctx, tx, id)
	return args.Error(0)
}

// MockMatchRepository is a mock implementation of repository.MatchRepository.
type MockMatchRepository struct {
	mock.Mock
}

func (m *MockMatchRepository) List(ctx context.Context) ([]model.Match, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Match), args.Error(1)
}

func (m *MockMatchRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, tx interface{}) error) error {
	args := m.Called(ctx, fn)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx, nil)
}

func (m *MockMatchRepository) CreateTx(ctx context.Context, tx interface{}, match *model.Match) error {
	args := m.Called(ctx, tx, match)
	return args.Error(0)
}

func (m *MockMatchRepository) DeleteTx(ctx context.Context, tx interface{}, id uint) error {
	args := m.Called(ctx, tx, id)
	return args.Error(0)
}

// MockPerformanceRepository is a mock implementation of repository.PerformanceRepository.
type MockPerformanceRepository struct {
	mock.Mock
}

func (m *MockPerformanceRepository) HistoryByPlayer(ctx context.Context, playerID uint) ([]model.PerformanceHistory, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PerformanceHistory), args.Error(1)
}

func (m *MockPerformanceRepository) CreateTx(ctx context.Context, tx interface{}, perf *model.MatchPerformance) error {
	args := m.Called(ctx, tx, perf)
	return args.Error(0)
}

func (m *MockPerformanceRepository) ListByMatchTx(ctx context.Context, tx interface{}, matchID uint) ([]model.MatchPerformance, error) {
	args := m.Called(ctx, tx, matchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MatchPerformance), args.Error(1)
}

func (m *MockPerformanceRepository) DeleteByMatchTx(ctx context.Context, tx interface{}, matchID uint) error {
	args := m.Called(ctx, tx, matchID)
	return args.Error(0)
}

func (m *MockPerformanceRepository) DeleteByPlayerTx(ctx context.Context, tx interface{}, playerID uint) error {
	args := m.Called(ctx, tx, playerID)
	return args.Error(0)
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "matchtrack/internal/errors"
	"matchtrack/internal/model"
)

func TestPlayerService_CreatePlayer(t *testing.T) {
	tests := []struct {
		name             string
		playerName       string
		position         string
		createErr        error
		expectedError    error
		expectedPosition string
	}{
		{
			name:             "explicit position",
			playerName:       "Bruno",
			position:         "Goalkeeper",
			expectedPosition: "Goalkeeper",
		},
		{
			name:             "position defaults to Forward",
			playerName:       "Alice",
			position:         "",
			expectedPosition: model.DefaultPosition,
		},
		{
			name:          "duplicate name is a conflict",
			playerName:    "Alice",
			createErr:     gorm.ErrDuplicatedKey,
			expectedError: apperrors.ErrPlayerExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockPlayerRepository)
			var created *model.Player
			mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Player")).
				Run(func(args mock.Arguments) {
					created = args.Get(1).(*model.Player)
					created.ID = 11
				}).Return(tt.createErr)

			svc := NewPlayerService(mockRepo, new(MockPerformanceRepository), nil)
			id, err := svc.CreatePlayer(context.Background(), tt.playerName, tt.position)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, uint(11), id)
				assert.Equal(t, tt.playerName, created.Name)
				assert.Equal(t, tt.expectedPosition, created.Position)
				// Counters start at zero for explicit creation.
				assert.Zero(t, created.TotalGoals)
				assert.Zero(t, created.MatchesPlayed)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestPlayerService_DeletePlayer_CascadesPerformancesFirst(t *testing.T) {
	mockRepo := new(MockPlayerRepository)
	mockPerf := new(MockPerformanceRepository)

	var sequence []string
	mockRepo.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
	mockPerf.On("DeleteByPlayerTx", mock.Anything, mock.Anything, uint(4)).
		Run(func(mock.Arguments) { sequence = append(sequence, "delete-perfs") }).Return(nil)
	mockRepo.On("DeleteTx", mock.Anything, mock.Anything, uint(4)).
		Run(func(mock.Arguments) { sequence = append(sequence, "delete-player") }).Return(nil)

	svc := NewPlayerService(mockRepo, mockPerf, nil)

	assert.NoError(t, svc.DeletePlayer(context.Background(), 4))
	assert.Equal(t, []string{"delete-perfs", "delete-player"}, sequence)
	mockRepo.AssertExpectations(t)
	mockPerf.AssertExpectations(t)
}

func TestPlayerService_ListPlayers_HistorySoftFail(t *testing.T) {
	mockRepo := new(MockPlayerRepository)
	mockPerf := new(MockPerformanceRepository)

	players := []model.Player{
		{ID: 1, Name: "Alice", TotalGoals: 5, TotalSaves: 3, TotalShotsFaced: 4},
		{ID: 2, Name: "Bruno", TotalGoals: 2},
	}
	history := []model.PerformanceHistory{{Date: "2024-01-01", Goals: 5}}

	mockRepo.On("List", mock.Anything).Return(players, nil)
	mockPerf.On("HistoryByPlayer", mock.Anything, uint(1)).Return(history, nil)
	// A failed lookup degrades to an empty history, not an error.
	mockPerf.On("HistoryByPlayer", mock.Anything, uint(2)).Return(nil, errors.New("join failed"))

	svc := NewPlayerService(mockRepo, mockPerf, nil)
	summaries, err := svc.ListPlayers(context.Background())

	assert.NoError(t, err)
	assert.Len(t, summaries, 2)
	assert.Equal(t, history, summaries[0].History)
	assert.Empty(t, summaries[1].History)
	assert.Equal(t, "75", summaries[0].SavePercentage)
	assert.Equal(t, "0", summaries[1].SavePercentage)
}

func TestSavePercentage(t *testing.T) {
	assert.Equal(t, "0", savePercentage(3, 0))
	assert.Equal(t, "75", savePercentage(3, 4))
	assert.Equal(t, "33.3", savePercentage(1, 3))
	assert.Equal(t, "100", savePercentage(6, 6))
}

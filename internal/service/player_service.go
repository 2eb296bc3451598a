package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"matchtrack/internal/cache"
	apperrors "matchtrack/internal/errors"
	"matchtrack/internal/model"
	"matchtrack/internal/repository"
)

const (
	playersCacheKey = "players:all"
	playersCacheTTL = 5 * time.Minute
)

// PlayerSummary is a player with embedded match history and derived stats.
type PlayerSummary struct {
	model.Player
	SavePercentage string                     `json:"save_percentage"`
	History        []model.PerformanceHistory `json:"history"`
}

// PlayerService exposes player operations.
type PlayerService interface {
	ListPlayers(ctx context.Context) ([]PlayerSummary, error)
	CreatePlayer(ctx context.Context, name, position string) (uint, error)
	DeletePlayer(ctx context.Context, id uint) error
}

type playerService struct {
	repo     repository.PlayerRepository
	perfRepo repository.PerformanceRepository
	cache    *cache.Client
}

// NewPlayerService creates a new player service.
func NewPlayerService(repo repository.PlayerRepository, perfRepo repository.PerformanceRepository, cache *cache.Client) PlayerService {
	return &playerService{repo: repo, perfRepo: perfRepo, cache: cache}
}

// ListPlayers returns all players, best scorers first, each with match
// history. A failed history lookup degrades to an empty list rather than
// failing the whole listing, but the cause is logged.
func (s *playerService) ListPlayers(ctx context.Context) ([]PlayerSummary, error) {
	var cached []PlayerSummary
	if s.cache.GetJSON(ctx, playersCacheKey, &cached) {
		return cached, nil
	}

	players, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	summaries := make([]PlayerSummary, 0, len(players))
	for _, p := range players {
		history, err := s.perfRepo.HistoryByPlayer(ctx, p.ID)
		if err != nil {
			log.Printf("player %d history lookup failed: %v", p.ID, err)
			history = []model.PerformanceHistory{}
		}
		summaries = append(summaries, PlayerSummary{
			Player:         p,
			SavePercentage: savePercentage(p.TotalSaves, p.TotalShotsFaced),
			History:        history,
		})
	}

	s.cache.SetJSON(ctx, playersCacheKey, summaries, playersCacheTTL)
	return summaries, nil
}

// savePercentage is saves/shots_faced as a percentage with one decimal
// place, "0" when no shots were faced.
func savePercentage(saves, shotsFaced int) string {
	if shotsFaced == 0 {
		return "0"
	}
	return decimal.NewFromInt(int64(saves)).
		Div(decimal.NewFromInt(int64(shotsFaced))).
		Mul(decimal.NewFromInt(100)).
		Round(1).String()
}

// CreatePlayer creates a player explicitly with zeroed counters.
func (s *playerService) CreatePlayer(ctx context.Context, name, position string) (uint, error) {
	if position == "" {
		position = model.DefaultPosition
	}
	player := &model.Player{Name: name, Position: position}
	if err := s.repo.Create(ctx, player); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, apperrors.ErrPlayerExists
		}
		return 0, fmt.Errorf("create player: %w", err)
	}

	_ = s.cache.Delete(ctx, playersCacheKey)
	return player.ID, nil
}

// DeletePlayer removes the player and exactly that player's performance
// rows, leaving other matches' performances untouched. Match rows carry no
// aggregates, so nothing else needs correcting.
func (s *playerService) DeletePlayer(ctx context.Context, id uint) error {
	err := s.repo.WithTransaction(ctx, func(ctx context.Context, tx interface{}) error {
		if err := s.perfRepo.DeleteByPlayerTx(ctx, tx, id); err != nil {
			return fmt.Errorf("delete performances: %w", err)
		}
		if err := s.repo.DeleteTx(ctx, tx, id); err != nil {
			return fmt.Errorf("delete player: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	_ = s.cache.Delete(ctx, playersCacheKey)
	return nil
}

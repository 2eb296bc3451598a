package service

import (
	"context"
	"fmt"

	"matchtrack/internal/cache"
	"matchtrack/internal/model"
	"matchtrack/internal/repository"
)

// PerformanceInput is one player's stat line in a match submission. Absent
// numeric fields default to zero on bind.
type PerformanceInput struct {
	Name string `json:"name" validate:"required"`
	model.StatLine
}

// MatchService records and removes matches while keeping player aggregate
// counters consistent with the performance rows.
type MatchService interface {
	ListMatches(ctx context.Context) ([]model.Match, error)
	CreateMatch(ctx context.Context, date string, inputs []PerformanceInput) (uint, error)
	DeleteMatch(ctx context.Context, matchID uint) error
}

type matchService struct {
	matchRepo  repository.MatchRepository
	perfRepo   repository.PerformanceRepository
	playerRepo repository.PlayerRepository
	cache      *cache.Client
}

// NewMatchService creates a new match service.
func NewMatchService(
	matchRepo repository.MatchRepository,
	perfRepo repository.PerformanceRepository,
	playerRepo repository.PlayerRepository,
	cache *cache.Client,
) MatchService {
	return &matchService{
		matchRepo:  matchRepo,
		perfRepo:   perfRepo,
		playerRepo: playerRepo,
		cache:      cache,
	}
}

func (s *matchService) ListMatches(ctx context.Context) ([]model.Match, error) {
	return s.matchRepo.List(ctx)
}

// cleanSheetValue is 1 when the performance conceded no goals. The same
// value is added on apply and subtracted on reverse.
func cleanSheetValue(line model.StatLine) int {
	if line.GoalsConceded == 0 {
		return 1
	}
	return 0
}

// CreateMatch inserts the match, applies every performance to its player's
// cumulative counters (creating players on first appearance, seeded from
// that performance), and records the performance rows. Everything runs in
// one transaction so a failure leaves no partial writes. Inputs are applied
// in order; a name appearing twice is applied twice.
func (s *matchService) CreateMatch(ctx context.Context, date string, inputs []PerformanceInput) (uint, error) {
	var matchID uint
	err := s.matchRepo.WithTransaction(ctx, func(ctx context.Context, tx interface{}) error {
		match := &model.Match{MatchDate: date}
		if err := s.matchRepo.CreateTx(ctx, tx, match); err != nil {
			return fmt.Errorf("create match: %w", err)
		}
		matchID = match.ID

		for _, in := range inputs {
			if err := s.playerRepo.UpsertTotalsTx(ctx, tx, in.Name, in.StatLine, cleanSheetValue(in.StatLine)); err != nil {
				return fmt.Errorf("apply totals for %q: %w", in.Name, err)
			}
			player, err := s.playerRepo.FindByNameTx(ctx, tx, in.Name)
			if err != nil {
				return fmt.Errorf("resolve player %q: %w", in.Name, err)
			}
			perf := &model.MatchPerformance{
				MatchID:  match.ID,
				PlayerID: player.ID,
				StatLine: in.StatLine,
			}
			if err := s.perfRepo.CreateTx(ctx, tx, perf); err != nil {
				return fmt.Errorf("record performance for %q: %w", in.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	_ = s.cache.Delete(ctx, playersCacheKey)
	return matchID, nil
}

// DeleteMatch reverses every performance of the match against its player's
// counters using the stored row values, then removes the performance rows
// and the match, all in one transaction. Reversal is the exact inverse of
// apply, including the clean-sheet conditional.
func (s *matchService) DeleteMatch(ctx context.Context, matchID uint) error {
	err := s.matchRepo.WithTransaction(ctx, func(ctx context.Context, tx interface{}) error {
		perfs, err := s.perfRepo.ListByMatchTx(ctx, tx, matchID)
		if err != nil {
			return fmt.Errorf("load performances: %w", err)
		}
		for _, perf := range perfs {
			if err := s.playerRepo.ReverseTotalsTx(ctx, tx, perf.PlayerID, perf.StatLine, cleanSheetValue(perf.StatLine)); err != nil {
				return fmt.Errorf("reverse totals for player %d: %w", perf.PlayerID, err)
			}
		}
		if err := s.perfRepo.DeleteByMatchTx(ctx, tx, matchID); err != nil {
			return fmt.Errorf("delete performances: %w", err)
		}
		if err := s.matchRepo.DeleteTx(ctx, tx, matchID); err != nil {
			return fmt.Errorf("delete match: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	_ = s.cache.Delete(ctx, playersCacheKey)
	return nil
}

package repository

import (
	"context"

	"gorm.io/gorm"

	"matchtrack/internal/model"
)

// MatchRepository defines match persistence operations.
type MatchRepository interface {
	List(ctx context.Context) ([]model.Match, error)
	// Transaction methods
	WithTransaction(ctx context.Context, fn func(ctx context.Context, tx interface{}) error) error
	CreateTx(ctx context.Context, tx interface{}, match *model.Match) error
	DeleteTx(ctx context.Context, tx interface{}, id uint) error
}

type matchRepository struct {
	db *gorm.DB
}

// NewMatchRepository creates a new match repository.
func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &matchRepository{db: db}
}

// List returns all matches, most recent first.
func (r *matchRepository) List(ctx context.Context) ([]model.Match, error) {
	var matches []model.Match
	if err := r.db.WithContext(ctx).Order("match_date DESC").Find(&matches).Error; err != nil {
		return nil, err
	}
	return matches, nil
}

// WithTransaction executes fn within a database transaction.
func (r *matchRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, tx interface{}) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, tx)
	})
}

// CreateTx inserts a match within a transaction; the generated ID is set on match.
func (r *matchRepository) CreateTx(ctx context.Context, tx interface{}, match *model.Match) error {
	txDB := tx.(*gorm.DB)
	return txDB.WithContext(ctx).Create(match).Error
}

// DeleteTx removes a match row within a transaction.
func (r *matchRepository) DeleteTx(ctx context.Context, tx interface{}, id uint) error {
	txDB := tx.(*gorm.DB)
	return txDB.WithContext(ctx).Delete(&model.Match{}, id).Error
}

// PerformanceRepository defines match-performance persistence operations.
type PerformanceRepository interface {
	HistoryByPlayer(ctx context.Context, playerID uint) ([]model.PerformanceHistory, error)
	// Transaction methods
	CreateTx(ctx context.Context, tx interface{}, perf *model.MatchPerformance) error
	ListByMatchTx(ctx context.Context, tx interface{}, matchID uint) ([]model.MatchPerformance, error)
	DeleteByMatchTx(ctx context.Context, tx interface{}, matchID uint) error
	DeleteByPlayerTx(ctx context.Context, tx interface{}, playerID uint) error
}

type performanceRepository struct {
	db *gorm.DB
}

// NewPerformanceRepository creates a new performance repository.
func NewPerformanceRepository(db *gorm.DB) PerformanceRepository {
	return &performanceRepository{db: db}
}

// HistoryByPlayer returns a player's performances joined with match dates,
// most recent match first.
func (r *performanceRepository) HistoryByPlayer(ctx context.Context, playerID uint) ([]model.PerformanceHistory, error) {
	var rows []model.PerformanceHistory
	err := r.db.WithContext(ctx).
		Table("match_performances").
		Select("matches.match_date AS date, match_performances.goals, match_performances.saves, match_performances.assists, match_performances.shots_faced, match_performances.goals_conceded, match_performances.penalties_saved, match_performances.yellow_cards, match_performances.red_cards").
		Joins("JOIN matches ON matches.id = match_performances.match_id").
		Where("match_performances.player_id = ?", playerID).
		Order("matches.match_date DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *performanceRepository) CreateTx(ctx context.Context, tx interface{}, perf *model.MatchPerformance) error {
	txDB := tx.(*gorm.DB)
	return txDB.WithContext(ctx).Create(perf).Error
}

func (r *performanceRepository) ListByMatchTx(ctx context.Context, tx interface{}, matchID uint) ([]model.MatchPerformance, error) {
	txDB := tx.(*gorm.DB)
	var perfs []model.MatchPerformance
	if err := txDB.WithContext(ctx).Where("match_id = ?", matchID).Find(&perfs).Error; err != nil {
		return nil, err
	}
	return perfs, nil
}

func (r *performanceRepository) DeleteByMatchTx(ctx context.Context, tx interface{}, matchID uint) error {
	txDB := tx.(*gorm.DB)
	return txDB.WithContext(ctx).Where("match_id = ?", matchID).Delete(&model.MatchPerformance{}).Error
}

func (r *performanceRepository) DeleteByPlayerTx(ctx context.Context, tx interface{}, playerID uint) error {
	txDB := tx.(*gorm.DB)
	return txDB.WithContext(ctx).Where("player_id = ?", playerID).Delete(&model.MatchPerformance{}).Error
}

package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"matchtrack/internal/model"
)

// PlayerRepository defines player persistence operations, including the
// aggregate-counter maintenance used during match creation and deletion.
type PlayerRepository interface {
	Create(ctx context.Context, player *model.Player) error
	FindByName(ctx context.Context, name string) (*model.Player, error)
	List(ctx context.Context) ([]model.Player, error)
	// Transaction methods
	WithTransaction(ctx context.Context, fn func(ctx context.Context, tx interface{}) error) error
	FindByNameTx(ctx context.Context, tx interface{}, name string) (*model.Player, error)
	UpsertTotalsTx(ctx context.Context, tx interface{}, name string, line model.StatLine, cleanSheets int) error
	ReverseTotalsTx(ctx context.Context, tx interface{}, playerID uint, line model.StatLine, cleanSheets int) error
	DeleteTx(ctx context.Context, tx interface{}, id uint) error
}

type playerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new player repository.
func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &playerRepository{db: db}
}

func (r *playerRepository) Create(ctx context.Context, player *model.Player) error {
	return r.db.WithContext(ctx).Create(player).Error
}

func (r *playerRepository) FindByName(ctx context.Context, name string) (*model.Player, error) {
	var player model.Player
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&player).Error; err != nil {
		return nil, err
	}
	return &player, nil
}

// List returns all players ordered by total goals, best scorers first.
func (r *playerRepository) List(ctx context.Context) ([]model.Player, error) {
	var players []model.Player
	if err := r.db.WithContext(ctx).Order("total_goals DESC").Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}

// WithTransaction executes fn within a database transaction.
func (r *playerRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, tx interface{}) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, tx)
	})
}

// FindByNameTx finds a player by exact name within a transaction.
func (r *playerRepository) FindByNameTx(ctx context.Context, tx interface{}, name string) (*model.Player, error) {
	txDB := tx.(*gorm.DB)
	var player model.Player
	if err := txDB.WithContext(ctx).Where("name = ?", name).First(&player).Error; err != nil {
		return nil, err
	}
	return &player, nil
}

// UpsertTotalsTx applies one performance to a player as a single
// insert-or-increment statement keyed by name. A new player is seeded
// directly from the performance (matches_played 1, clean_sheets per the
// caller); an existing player has every counter incremented. Doing this in
// one statement serializes concurrent submissions for the same name.
func (r *playerRepository) UpsertTotalsTx(ctx context.Context, tx interface{}, name string, line model.StatLine, cleanSheets int) error {
	txDB := tx.(*gorm.DB)
	seed := model.Player{
		Name:                name,
		Position:            model.DefaultPosition,
		TotalGoals:          line.Goals,
		TotalSaves:          line.Saves,
		TotalAssists:        line.Assists,
		MatchesPlayed:       1,
		TotalShotsFaced:     line.ShotsFaced,
		TotalGoalsConceded:  line.GoalsConceded,
		CleanSheets:         cleanSheets,
		TotalPenaltiesFaced: line.PenaltiesFaced,
		TotalPenaltiesSaved: line.PenaltiesSaved,
		TotalYellowCards:    line.YellowCards,
		TotalRedCards:       line.RedCards,
	}
	return txDB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "name"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"total_goals":           gorm.Expr("total_goals + ?", line.Goals),
			"total_saves":           gorm.Expr("total_saves + ?", line.Saves),
			"total_assists":         gorm.Expr("total_assists + ?", line.Assists),
			"matches_played":        gorm.Expr("matches_played + 1"),
			"total_shots_faced":     gorm.Expr("total_shots_faced + ?", line.ShotsFaced),
			"total_goals_conceded":  gorm.Expr("total_goals_conceded + ?", line.GoalsConceded),
			"clean_sheets":          gorm.Expr("clean_sheets + ?", cleanSheets),
			"total_penalties_faced": gorm.Expr("total_penalties_faced + ?", line.PenaltiesFaced),
			"total_penalties_saved": gorm.Expr("total_penalties_saved + ?", line.PenaltiesSaved),
			"total_yellow_cards":    gorm.Expr("total_yellow_cards + ?", line.YellowCards),
			"total_red_cards":       gorm.Expr("total_red_cards + ?", line.RedCards),
		}),
	}).Create(&seed).Error
}

// ReverseTotalsTx subtracts one stored performance from a player's counters.
// The cleanSheets value must come from the stored row so reversal mirrors
// the apply-time conditional exactly.
func (r *playerRepository) ReverseTotalsTx(ctx context.Context, tx interface{}, playerID uint, line model.StatLine, cleanSheets int) error {
	txDB := tx.(*gorm.DB)
	return txDB.WithContext(ctx).Model(&model.Player{}).
		Where("id = ?", playerID).
		Updates(map[string]interface{}{
			"total_goals":           gorm.Expr("total_goals - ?", line.Goals),
			"total_saves":           gorm.Expr("total_saves - ?", line.Saves),
			"total_assists":         gorm.Expr("total_assists - ?", line.Assists),
			"matches_played":        gorm.Expr("matches_played - 1"),
			"total_shots_faced":     gorm.Expr("total_shots_faced - ?", line.ShotsFaced),
			"total_goals_conceded":  gorm.Expr("total_goals_conceded - ?", line.GoalsConceded),
			"clean_sheets":          gorm.Expr("clean_sheets - ?", cleanSheets),
			"total_penalties_faced": gorm.Expr("total_penalties_faced - ?", line.PenaltiesFaced),
			"total_penalties_saved": gorm.Expr("total_penalties_saved - ?", line.PenaltiesSaved),
			"total_yellow_cards":    gorm.Expr("total_yellow_cards - ?", line.YellowCards),
			"total_red_cards":       gorm.Expr("total_red_cards - ?", line.RedCards),
		}).Error
}

// DeleteTx removes a player row within a transaction.
func (r *playerRepository) DeleteTx(ctx context.Context, tx interface{}, id uint) error {
	txDB := tx.(*gorm.DB)
	return txDB.WithContext(ctx).Delete(&model.Player{}, id).Error
}

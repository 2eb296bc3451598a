package model

import "time"

// DefaultPosition is assigned when a player is created without one,
// including lazy creation from a match submission.
const DefaultPosition = "Forward"

// Player is the aggregate entity: every Total*/CleanSheets/MatchesPlayed
// counter equals the sum (or count) of the corresponding field across all
// MatchPerformance rows referencing this player.
type Player struct {
	ID                  uint      `json:"id" gorm:"primaryKey"`
	Name                string    `json:"name" gorm:"uniqueIndex;size:255;not null"`
	Position            string    `json:"position" gorm:"size:100;default:'Forward'"`
	TotalGoals          int       `json:"total_goals" gorm:"default:0"`
	TotalSaves          int       `json:"total_saves" gorm:"default:0"`
	TotalAssists        int       `json:"total_assists" gorm:"default:0"`
	MatchesPlayed       int       `json:"matches_played" gorm:"default:0"`
	TotalShotsFaced     int       `json:"total_shots_faced" gorm:"default:0"`
	TotalGoalsConceded  int       `json:"total_goals_conceded" gorm:"default:0"`
	CleanSheets         int       `json:"clean_sheets" gorm:"default:0"`
	TotalPenaltiesFaced int       `json:"total_penalties_faced" gorm:"default:0"`
	TotalPenaltiesSaved int       `json:"total_penalties_saved" gorm:"default:0"`
	TotalYellowCards    int       `json:"total_yellow_cards" gorm:"default:0"`
	TotalRedCards       int       `json:"total_red_cards" gorm:"default:0"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

package model

import "time"

// Match is one recorded match. It owns its MatchPerformance rows:
// deleting a match cascades to them and reverses their aggregate effect.
type Match struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	MatchDate string    `json:"match_date" gorm:"size:32;not null;index"`
	CreatedAt time.Time `json:"created_at"`
}

// StatLine holds one player's raw per-match event values.
type StatLine struct {
	Goals          int `json:"goals" gorm:"default:0"`
	Saves          int `json:"saves" gorm:"default:0"`
	Assists        int `json:"assists" gorm:"default:0"`
	ShotsFaced     int `json:"shots_faced" gorm:"default:0"`
	GoalsConceded  int `json:"goals_conceded" gorm:"default:0"`
	PenaltiesFaced int `json:"penalties_faced" gorm:"default:0"`
	PenaltiesSaved int `json:"penalties_saved" gorm:"default:0"`
	YellowCards    int `json:"yellow_cards" gorm:"default:0"`
	RedCards       int `json:"red_cards" gorm:"default:0"`
}

// MatchPerformance records one player's contribution to one match.
// Rows are append-only: they are only ever removed by cascade when the
// match or the player is deleted.
type MatchPerformance struct {
	ID       uint `json:"id" gorm:"primaryKey"`
	MatchID  uint `json:"match_id" gorm:"not null;index"`
	PlayerID uint `json:"player_id" gorm:"not null;index"`
	StatLine `gorm:"embedded"`
}

// PerformanceHistory is one row of a player's match history, joined with
// the match date. Not a table; scanned from the performances/matches join.
type PerformanceHistory struct {
	Date           string `json:"date"`
	Goals          int    `json:"goals"`
	Saves          int    `json:"saves"`
	Assists        int    `json:"assists"`
	ShotsFaced     int    `json:"shots_faced"`
	GoalsConceded  int    `json:"goals_conceded"`
	PenaltiesSaved int    `json:"penalties_saved"`
	YellowCards    int    `json:"yellow_cards"`
	RedCards       int    `json:"red_cards"`
}

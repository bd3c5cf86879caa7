package types

import "time"

// Setting is a runtime configuration row; mirrors the settings table the
// config loader reads at startup.
type Setting struct {
	ID     uint8  `gorm:"primaryKey"`
	Name   string `gorm:"size:64;not null"`
	Value  string `gorm:"type:text;not null"`
	Active uint8  `gorm:"not null"`
}

// VerificationRecord persists the outcome of one verification run.
type VerificationRecord struct {
	ID            string    `gorm:"primaryKey;size:36"`
	Claim         string    `gorm:"column:claim;type:text;not null"`
	Verdict       string    `gorm:"column:verdict;size:16;index:idx_runs_verdict"`
	Confidence    float64   `gorm:"column:confidence"`
	Explanation   string    `gorm:"column:explanation;type:text"`
	Declined      bool      `gorm:"column:declined"`
	DeclineReason string    `gorm:"column:decline_reason;size:255"`
	QueryUsed     string    `gorm:"column:query_used;type:text"`
	EntitiesJSON  string    `gorm:"column:entities_json;type:text"`
	SourcesJSON   string    `gorm:"column:sources_json;type:text"`
	Degraded      string    `gorm:"column:degraded;size:64"`
	Retries       uint8     `gorm:"column:retries"`
	CreatedAt     time.Time `gorm:"index:idx_runs_created"`
	UpdatedAt     time.Time
}

// TableName implements gorm's tabler interface.
func (VerificationRecord) TableName() string {
	return "verification_runs"
}

// Team is one franchise in the authoritative dataset.
type Team struct {
	ID     uint32 `gorm:"primaryKey;autoIncrement"`
	Name   string `gorm:"size:64;unique;not null"`
	Abbrev string `gorm:"size:8;not null"`
}

// Player is one player in the authoritative dataset.
type Player struct {
	ID     uint32 `gorm:"primaryKey;autoIncrement"`
	Name   string `gorm:"size:128;uniqueIndex;not null"`
	TeamID uint32 `gorm:"index"`
}

// PlayerSeasonStat holds per-season totals for a player.
type PlayerSeasonStat struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement"`
	PlayerID    uint32 `gorm:"index:idx_season_player"`
	Season      string `gorm:"size:16;index:idx_season_player"`
	GamesPlayed int
	Points      int
	Rebounds    int
	Assists     int
	Steals      int
	Blocks      int
	Turnovers   int
}

// GameResult is one game in the authoritative dataset. GameNumber is the
// series game number for playoff games (e.g. 7 for a game seven), 0 otherwise.
type GameResult struct {
	ID         uint64 `gorm:"primaryKey;autoIncrement"`
	Season     string `gorm:"size:16;index"`
	PlayedAt   time.Time
	HomeTeamID uint32 `gorm:"index"`
	AwayTeamID uint32 `gorm:"index"`
	HomeScore  int
	AwayScore  int
	GameNumber int
	Playoff    bool
}

// PlayerGameLine holds one player's line for one game.
type PlayerGameLine struct {
	ID       uint64 `gorm:"primaryKey;autoIncrement"`
	PlayerID uint32 `gorm:"index:idx_line_player_game"`
	GameID   uint64 `gorm:"index:idx_line_player_game"`
	Points   int
	Rebounds int
	Assists  int
}

// Championship records the title winner for a season.
type Championship struct {
	ID     uint32 `gorm:"primaryKey;autoIncrement"`
	Season string `gorm:"size:16;uniqueIndex"`
	TeamID uint32 `gorm:"index"`
}

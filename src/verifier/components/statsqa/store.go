package statsqa

import (
	"context"
	"time"
)

// PlayerSeason is one season of totals for a player, newest first when listed.
type PlayerSeason struct {
	Player      string
	Season      string
	GamesPlayed int
	Points      int
	Rebounds    int
	Assists     int
}

// GameLine is one player's line in one game.
type GameLine struct {
	Player     string
	Season     string
	GameNumber int
	Playoff    bool
	Points     int
	Rebounds   int
	Assists    int
	PlayedAt   time.Time
}

// TeamGame is one game from a team's perspective.
type TeamGame struct {
	Team     string
	Opponent string
	Score    int
	OppScore int
	Season   string
	PlayedAt time.Time
}

// Store is the authoritative-dataset boundary the QA source reads from.
// Lookups return zero values, not errors, when the dataset has no match.
type Store interface {
	SeasonStats(ctx context.Context, player string) ([]PlayerSeason, error)
	GameLines(ctx context.Context, player string, gameNumber int) ([]GameLine, error)
	LastGame(ctx context.Context, team string) (*TeamGame, error)
	Champion(ctx context.Context, season string) (string, error)
}

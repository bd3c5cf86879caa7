package data

import (
	"context"
	"errors"
	"strings"

	"github.com/courtcheck/courtcheck/src/verifier/components/statsqa"
	"github.com/courtcheck/courtcheck/src/verifier/types"
	"gorm.io/gorm"
)

// GormStore serves the statistics dataset out of MySQL. Lookups that find
// nothing return zero values, matching the store contract.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) player(ctx context.Context, name string) (*types.Player, error) {
	var p types.Player
	err := s.db.WithContext(ctx).Where("LOWER(name) = ?", strings.ToLower(name)).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *GormStore) team(ctx context.Context, name string) (*types.Team, error) {
	var t types.Team
	err := s.db.WithContext(ctx).Where("LOWER(name) = ?", strings.ToLower(name)).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *GormStore) SeasonStats(ctx context.Context, player string) ([]statsqa.PlayerSeason, error) {
	p, err := s.player(ctx, player)
	if err != nil || p == nil {
		return nil, err
	}

	var rows []types.PlayerSeasonStat
	if err := s.db.WithContext(ctx).
		Where("player_id = ?", p.ID).
		Order("season DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	seasons := make([]statsqa.PlayerSeason, 0, len(rows))
	for _, r := range rows {
		seasons = append(seasons, statsqa.PlayerSeason{
			Player:      p.Name,
			Season:      r.Season,
			GamesPlayed: r.GamesPlayed,
			Points:      r.Points,
			Rebounds:    r.Rebounds,
			Assists:     r.Assists,
		})
	}
	return seasons, nil
}

func (s *GormStore) GameLines(ctx context.Context, player string, gameNumber int) ([]statsqa.GameLine, error) {
	p, err := s.player(ctx, player)
	if err != nil || p == nil {
		return nil, err
	}

	var lines []types.PlayerGameLine
	if err := s.db.WithContext(ctx).Where("player_id = ?", p.ID).Find(&lines).Error; err != nil {
		return nil, err
	}

	var out []statsqa.GameLine
	for _, line := range lines {
		var g types.GameResult
		err := s.db.WithContext(ctx).First(&g, line.GameID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if gameNumber > 0 && g.GameNumber != gameNumber {
			continue
		}
		out = append(out, statsqa.GameLine{
			Player:     p.Name,
			Season:     g.Season,
			GameNumber: g.GameNumber,
			Playoff:    g.Playoff,
			Points:     line.Points,
			Rebounds:   line.Rebounds,
			Assists:    line.Assists,
			PlayedAt:   g.PlayedAt,
		})
	}
	return out, nil
}

func (s *GormStore) LastGame(ctx context.Context, team string) (*statsqa.TeamGame, error) {
	t, err := s.team(ctx, team)
	if err != nil || t == nil {
		return nil, err
	}

	var g types.GameResult
	err = s.db.WithContext(ctx).
		Where("home_team_id = ? OR away_team_id = ?", t.ID, t.ID).
		Order("played_at DESC").
		First(&g).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	oppID := g.AwayTeamID
	score, oppScore := g.HomeScore, g.AwayScore
	if g.AwayTeamID == t.ID {
		oppID = g.HomeTeamID
		score, oppScore = g.AwayScore, g.HomeScore
	}

	var opp types.Team
	opponent := ""
	if err := s.db.WithContext(ctx).First(&opp, oppID).Error; err == nil {
		opponent = opp.Name
	}

	return &statsqa.TeamGame{
		Team:     t.Name,
		Opponent: opponent,
		Score:    score,
		OppScore: oppScore,
		Season:   g.Season,
		PlayedAt: g.PlayedAt,
	}, nil
}

func (s *GormStore) Champion(ctx context.Context, season string) (string, error) {
	var c types.Championship
	err := s.db.WithContext(ctx).Where("season = ?", season).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	var t types.Team
	if err := s.db.WithContext(ctx).First(&t, c.TeamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return t.Name, nil
}

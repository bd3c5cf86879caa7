package statsqa

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryStore is an in-memory Store used by tests and the smoketest CLI.
type MemoryStore struct {
	mu        sync.RWMutex
	seasons   map[string][]PlayerSeason
	lines     map[string][]GameLine
	lastGames map[string]TeamGame
	champions map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		seasons:   make(map[string][]PlayerSeason),
		lines:     make(map[string][]GameLine),
		lastGames: make(map[string]TeamGame),
		champions: make(map[string]string),
	}
}

func (m *MemoryStore) AddSeason(s PlayerSeason) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := strings.ToLower(s.Player)
	m.seasons[key] = append(m.seasons[key], s)
	sort.Slice(m.seasons[key], func(i, j int) bool {
		return m.seasons[key][i].Season > m.seasons[key][j].Season
	})
}

func (m *MemoryStore) AddGameLine(l GameLine) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := strings.ToLower(l.Player)
	m.lines[key] = append(m.lines[key], l)
}

func (m *MemoryStore) SetLastGame(g TeamGame) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastGames[strings.ToLower(g.Team)] = g
}

func (m *MemoryStore) SetChampion(season, team string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.champions[season] = team
}

func (m *MemoryStore) SeasonStats(_ context.Context, player string) ([]PlayerSeason, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.seasons[strings.ToLower(player)], nil
}

func (m *MemoryStore) GameLines(_ context.Context, player string, gameNumber int) ([]GameLine, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []GameLine
	for _, l := range m.lines[strings.ToLower(player)] {
		if gameNumber == 0 || l.GameNumber == gameNumber {
			out = append(out, l)
		}
	}
	return out, nil
}

func (m *MemoryStore) LastGame(_ context.Context, team string) (*TeamGame, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if g, ok := m.lastGames[strings.ToLower(team)]; ok {
		return &g, nil
	}
	return nil, nil
}

func (m *MemoryStore) Champion(_ context.Context, season string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.champions[season], nil
}

// DemoStore seeds a small dataset so the smoketest CLI works without MySQL.
func DemoStore() *MemoryStore {
	m := NewMemoryStore()
	m.SetChampion("2023", "Denver Nuggets")
	m.SetChampion("2024", "Boston Celtics")
	m.AddSeason(PlayerSeason{Player: "Stephen Curry", Season: "2023-24", GamesPlayed: 74, Points: 1956, Rebounds: 328, Assists: 380})
	m.AddSeason(PlayerSeason{Player: "Stephen Curry", Season: "2022-23", GamesPlayed: 56, Points: 1648, Rebounds: 343, Assists: 352})
	m.AddGameLine(GameLine{Player: "Jamal Murray", Season: "2023", GameNumber: 7, Playoff: true, Points: 22, Rebounds: 6, Assists: 7,
		PlayedAt: time.Date(2023, 5, 14, 0, 0, 0, 0, time.UTC)})
	m.SetLastGame(TeamGame{Team: "Denver Nuggets", Opponent: "Miami Heat", Score: 94, OppScore: 89, Season: "2023",
		PlayedAt: time.Date(2023, 6, 12, 0, 0, 0, 0, time.UTC)})
	return m
}

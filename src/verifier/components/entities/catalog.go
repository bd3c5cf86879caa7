package entities

import (
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/courtcheck/courtcheck/src/verifier/types"
)

var (
	seasonRe = regexp.MustCompile(`\b(19|20)\d{2}(-\d{2})?\b`)
	gameRe   = regexp.MustCompile(`\bgame\s+(\d)\b`)
)

// Catalog is the deterministic domain-entity recognizer. It holds the known
// player, team, and stat vocabulary and extracts matches from claim text.
// Safe for concurrent use; AddPlayers may be called while extracting.
type Catalog struct {
	mu      sync.RWMutex
	players map[string]string // lowercase full name -> canonical
	byLast  map[string]string // lowercase last name -> canonical (ambiguous dropped)
}

func New() *Catalog {
	c := &Catalog{
		players: make(map[string]string),
		byLast:  make(map[string]string),
	}
	c.AddPlayers(seedPlayers)
	return c
}

// AddPlayers extends the player vocabulary, e.g. from the stats dataset.
// Last names shared by several players are dropped from last-name matching
// to avoid ambiguity; full names always match.
func (c *Catalog) AddPlayers(names []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, name := range names {
		lower := strings.ToLower(name)
		if _, ok := c.players[lower]; ok {
			continue
		}
		c.players[lower] = name
		parts := strings.Fields(lower)
		if len(parts) < 2 {
			continue
		}
		last := parts[len(parts)-1]
		if existing, ok := c.byLast[last]; ok && existing != name {
			c.byLast[last] = "" // ambiguous
		} else {
			c.byLast[last] = name
		}
	}
}

// Extract recognizes domain entities in the claim and scores the extraction.
func (c *Catalog) Extract(claim string) types.EntityMatches {
	text := strings.ToLower(claim)

	m := types.EntityMatches{
		Players:      c.extractPlayers(text),
		Teams:        extractTeams(text),
		Stats:        extractStats(text),
		Seasons:      seasonRe.FindAllString(text, -1),
		Temporal:     extractTemporal(text),
		Championship: containsAny(text, championshipKeywords),
	}
	if g := gameRe.FindStringSubmatch(text); g != nil {
		m.GameNumber = int(g[1][0] - '0')
	}
	m.Score = scoreMatches(m)
	return m
}

// extractPlayers prefers full-name matches; only when none exist does it
// fall back to unambiguous last names on word boundaries.
func (c *Catalog) extractPlayers(text string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var full []string
	for lower, canonical := range c.players {
		if strings.Contains(text, lower) {
			full = append(full, canonical)
		}
	}
	if len(full) > 0 {
		sort.Strings(full)
		return full
	}

	var last []string
	seen := make(map[string]bool)
	for lastName, canonical := range c.byLast {
		if canonical == "" || seen[canonical] {
			continue
		}
		if wordMatch(text, lastName) {
			last = append(last, canonical)
			seen[canonical] = true
		}
	}
	sort.Strings(last)
	return last
}

func extractTeams(text string) []string {
	var found []string
	seen := make(map[string]bool)

	appendTeam := func(name string) {
		if !seen[name] {
			found = append(found, name)
			seen[name] = true
		}
	}

	// Full franchise names first; aliases and abbreviations as fallback.
	for _, name := range teamAliases {
		if wordMatch(text, strings.ToLower(name)) {
			appendTeam(name)
		}
	}
	for alias, name := range teamAliases {
		if wordMatch(text, alias) {
			appendTeam(name)
		}
	}
	for abbrev, name := range teamAbbrevs {
		if wordMatch(text, abbrev) {
			appendTeam(name)
		}
	}
	sort.Strings(found)
	return found
}

func extractStats(text string) []string {
	var found []string
	for stat, keywords := range statKeywords {
		if containsAny(text, keywords) {
			found = append(found, stat)
		}
	}
	sort.Strings(found)
	return found
}

func extractTemporal(text string) []string {
	var found []string
	for bucket, keywords := range temporalKeywords {
		if containsAny(text, keywords) {
			found = append(found, bucket)
		}
	}
	sort.Strings(found)
	return found
}

// scoreMatches weights the extraction confidence: players 0.3, teams 0.2,
// stats 0.2, temporal 0.2, game ref 0.1, capped at 1.0.
func scoreMatches(m types.EntityMatches) float64 {
	score := 0.0
	if len(m.Players) > 0 {
		score += 0.3
	}
	if len(m.Teams) > 0 {
		score += 0.2
	}
	if len(m.Stats) > 0 {
		score += 0.2
	}
	if len(m.Temporal) > 0 || len(m.Seasons) > 0 {
		score += 0.2
	}
	if m.GameNumber > 0 {
		score += 0.1
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func wordMatch(text, word string) bool {
	idx := 0
	for {
		i := strings.Index(text[idx:], word)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(word)
		before := start == 0 || !isWordChar(text[start-1])
		after := end == len(text) || !isWordChar(text[end])
		if before && after {
			return true
		}
		idx = start + 1
	}
}

func isWordChar(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' || b == '_'
}

package credibility

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/courtcheck/courtcheck/src/verifier/types"
)

func TestTierResolution(t *testing.T) {
	s := NewScorer(Config{})

	assert.Equal(t, types.TierOfficial, s.Tier("nba.com"))
	assert.Equal(t, types.TierOfficial, s.Tier("stats.nba.com"))
	assert.Equal(t, types.TierVerifiedMedia, s.Tier("espn.com"))
	assert.Equal(t, types.TierVerifiedMedia, s.Tier("www.espn.com"))
	assert.Equal(t, types.TierGeneral, s.Tier("randomblog.net"))
	// Lookalike domains must not inherit the official tier.
	assert.Equal(t, types.TierGeneral, s.Tier("fakenba.com"))
}

func TestScoreDefaults(t *testing.T) {
	s := NewScorer(Config{})

	assert.Equal(t, 0.9, s.Score(types.Source{Domain: "nba.com"}))
	assert.Equal(t, 0.6, s.Score(types.Source{Domain: "theathletic.com"}))
	assert.Equal(t, 0.3, s.Score(types.Source{Domain: "myfanblog.com"}))
}

func TestScoreOverrides(t *testing.T) {
	s := NewScorer(Config{
		OfficialDomains: []string{"example.org"},
		OfficialScore:   0.95,
	})
	assert.Equal(t, 0.95, s.Score(types.Source{Domain: "example.org"}))
	// Default domain lists are replaced, not merged.
	assert.Equal(t, 0.3, s.Score(types.Source{Domain: "nba.com"}))
}

func TestApplyScoresCopies(t *testing.T) {
	s := NewScorer(Config{})
	sources := []types.Source{
		{ID: "web:a", Domain: "nba.com"},
		{ID: "web:b", Domain: "somewhere.io"},
	}
	evidence := []types.Evidence{
		{SourceID: "web:a", Snippet: "official"},
		{SourceID: "web:b", Snippet: "general"},
		{SourceID: "web:unknown", Snippet: "orphan"},
	}

	scoredEv, scoredSrc := s.Apply(evidence, sources)

	assert.Equal(t, 0.9, scoredEv[0].Credibility)
	assert.Equal(t, 0.3, scoredEv[1].Credibility)
	assert.Equal(t, 0.3, scoredEv[2].Credibility)
	assert.Equal(t, types.TierOfficial, scoredSrc[0].Tier)
	assert.Equal(t, types.TierGeneral, scoredSrc[1].Tier)

	// Inputs stay untouched.
	assert.Zero(t, evidence[0].Credibility)
	assert.Empty(t, sources[0].Tier)
}

func TestApplyDeterministic(t *testing.T) {
	s := NewScorer(Config{})
	src := []types.Source{{ID: "web:a", Domain: "espn.com"}}
	ev := []types.Evidence{{SourceID: "web:a"}}

	first, _ := s.Apply(ev, src)
	second, _ := s.Apply(ev, src)
	assert.Equal(t, first, second)
}

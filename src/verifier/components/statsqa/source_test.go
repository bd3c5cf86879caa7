package statsqa

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtcheck/courtcheck/src/verifier/types"
)

func TestRetrieveGameLine(t *testing.T) {
	s := NewSource(DemoStore())
	q := types.Query{
		Text: "Jamal Murray game 7 points",
		Entities: types.EntityMatches{
			Players:    []string{"Jamal Murray"},
			Stats:      []string{"points"},
			GameNumber: 7,
		},
	}

	evidence, sources, err := s.Retrieve(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, evidence, 1)
	require.Len(t, sources, 1)

	assert.Contains(t, evidence[0].Snippet, "Jamal Murray recorded 22 points")
	assert.Equal(t, types.KindStructured, evidence[0].Kind)
	assert.Equal(t, 0.95, evidence[0].Relevance)
	assert.Equal(t, SourceDomain, sources[0].Domain)
	assert.Equal(t, evidence[0].SourceID, sources[0].ID)
}

func TestRetrieveCareerStats(t *testing.T) {
	s := NewSource(DemoStore())
	q := types.Query{
		Entities: types.EntityMatches{
			Players: []string{"Stephen Curry"},
			Stats:   []string{"points", "average"},
		},
	}

	evidence, _, err := s.Retrieve(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, evidence, 1)
	assert.Contains(t, evidence[0].Snippet, "Stephen Curry has played 2 seasons")
	assert.Equal(t, 0.9, evidence[0].Relevance)
}

func TestRetrieveChampion(t *testing.T) {
	s := NewSource(DemoStore())
	q := types.Query{
		Entities: types.EntityMatches{
			Championship: true,
			Seasons:      []string{"2023"},
		},
	}

	evidence, _, err := s.Retrieve(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, evidence, 1)
	assert.Equal(t, "The Denver Nuggets won the 2023 NBA championship.", evidence[0].Snippet)
}

func TestRetrieveLastGame(t *testing.T) {
	s := NewSource(DemoStore())
	q := types.Query{
		Entities: types.EntityMatches{
			Teams:    []string{"Denver Nuggets"},
			Temporal: []string{"last"},
		},
	}

	evidence, _, err := s.Retrieve(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, evidence, 1)
	assert.Contains(t, evidence[0].Snippet, "won 94-89")
	assert.Contains(t, evidence[0].Snippet, "Miami Heat")
}

func TestRetrieveChampionTakesPrecedence(t *testing.T) {
	s := NewSource(DemoStore())
	q := types.Query{
		Entities: types.EntityMatches{
			Players:      []string{"Jamal Murray"},
			GameNumber:   7,
			Championship: true,
			Seasons:      []string{"2023"},
		},
	}

	evidence, _, err := s.Retrieve(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, evidence, 1)
	assert.Contains(t, evidence[0].Snippet, "championship")
}

func TestRetrieveNoMatchIsAbsence(t *testing.T) {
	s := NewSource(DemoStore())

	cases := []types.EntityMatches{
		{Players: []string{"Unknown Player"}, GameNumber: 7},
		{Players: []string{"Unknown Player"}, Stats: []string{"points"}},
		{Teams: []string{"Utah Jazz"}, Temporal: []string{"last"}},
		{Championship: true, Seasons: []string{"1950"}},
		{},
	}
	for _, m := range cases {
		evidence, sources, err := s.Retrieve(context.Background(), types.Query{Entities: m})
		require.NoError(t, err)
		assert.Empty(t, evidence)
		assert.Empty(t, sources)
	}
}

func TestMemoryStoreFiltersGameNumber(t *testing.T) {
	m := NewMemoryStore()
	m.AddGameLine(GameLine{Player: "Test Player", GameNumber: 5, Points: 10})
	m.AddGameLine(GameLine{Player: "Test Player", GameNumber: 7, Points: 30})

	lines, err := m.GameLines(context.Background(), "test player", 7)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 30, lines[0].Points)

	all, err := m.GameLines(context.Background(), "Test Player", 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

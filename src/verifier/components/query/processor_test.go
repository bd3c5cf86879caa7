package query

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtcheck/courtcheck/src/shared/ai"
	"github.com/courtcheck/courtcheck/src/verifier/components/entities"
	"github.com/courtcheck/courtcheck/src/verifier/types"
)

type stubAI struct {
	answer string
	err    error
	calls  int
}

func (s *stubAI) AnswerQuestion(_ context.Context, _, _ string, _ ai.Options) (string, error) {
	s.calls++
	return s.answer, s.err
}

func (s *stubAI) Respond(_ context.Context, _ string, _ []ai.Tool, _ ai.Options) (*ai.Response, error) {
	return nil, errors.New("not used")
}

func TestValidateEntityClaimSkipsModel(t *testing.T) {
	stub := &stubAI{err: errors.New("should not be called")}
	p := NewProcessor(entities.New(), stub)

	decision, matches := p.Validate(context.Background(), "Jamal Murray scored 22 points in game 7")
	assert.True(t, decision.Valid)
	assert.False(t, matches.Empty())
	assert.Zero(t, stub.calls)
}

func TestValidateFallsBackToModel(t *testing.T) {
	stub := &stubAI{answer: "Yes"}
	p := NewProcessor(entities.New(), stub)

	decision, matches := p.Validate(context.Background(), "A rookie broke the franchise record in his debut")
	assert.True(t, decision.Valid)
	assert.True(t, matches.Empty())
	assert.Equal(t, 1, stub.calls)
}

func TestValidateRejectsOffTopic(t *testing.T) {
	stub := &stubAI{answer: "No."}
	p := NewProcessor(entities.New(), stub)

	decision, _ := p.Validate(context.Background(), "The moon is made of cheese")
	require.False(t, decision.Valid)
	assert.Equal(t, "the claim is not about NBA basketball", decision.Reason)
}

func TestValidateModelFailureDeclines(t *testing.T) {
	stub := &stubAI{err: errors.New("rate limited")}
	p := NewProcessor(entities.New(), stub)

	decision, _ := p.Validate(context.Background(), "Someone dunked from the free throw line")
	require.False(t, decision.Valid)
	assert.Contains(t, decision.Reason, "could not confirm")
}

func TestValidateUnparseableAnswerDeclines(t *testing.T) {
	stub := &stubAI{answer: "It depends on the context"}
	p := NewProcessor(entities.New(), stub)

	decision, _ := p.Validate(context.Background(), "Someone dunked from the free throw line")
	assert.False(t, decision.Valid)
}

func TestEnhanceUsesModelQuery(t *testing.T) {
	stub := &stubAI{answer: `Here is the query: {"query": "Jamal Murray game 7 2023 points"}`}
	p := NewProcessor(entities.New(), stub)

	q := p.Enhance(context.Background(), "Jamal Murray scored 22 points in game 7", types.EntityMatches{Players: []string{"Jamal Murray"}})
	assert.Equal(t, "Jamal Murray game 7 2023 points", q.Text)
	assert.False(t, q.Broadened)
}

func TestEnhanceFallsBackToClaim(t *testing.T) {
	claim := "Jamal Murray scored 22 points in game 7"

	p := NewProcessor(entities.New(), &stubAI{err: errors.New("timeout")})
	q := p.Enhance(context.Background(), claim, types.EntityMatches{})
	assert.Equal(t, claim, q.Text)

	p = NewProcessor(entities.New(), &stubAI{answer: "no json here"})
	q = p.Enhance(context.Background(), claim, types.EntityMatches{})
	assert.Equal(t, claim, q.Text)
}

func TestBroaden(t *testing.T) {
	m := types.EntityMatches{
		Players: []string{"Jamal Murray"},
		Teams:   []string{"Denver Nuggets"},
		Seasons: []string{"2023"},
	}
	q := Broaden("Jamal Murray dropped 22 in game 7", m)
	assert.Equal(t, "Jamal Murray Denver Nuggets 2023", q.Text)
	assert.True(t, q.Broadened)

	q = Broaden("some claim", types.EntityMatches{})
	assert.Equal(t, "some claim", q.Text)
	assert.True(t, q.Broadened)
}

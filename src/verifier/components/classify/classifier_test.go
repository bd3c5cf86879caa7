package classify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtcheck/courtcheck/src/shared/ai"
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

func TestDecide(t *testing.T) {
	cases := []struct {
		name      string
		aggregate float64
		stance    Stance
		want      types.Verdict
	}{
		{"high support", 0.9, StanceSupports, types.VerdictReal},
		{"high contradiction", 0.9, StanceContradicts, types.VerdictFake},
		{"high but insufficient", 0.9, StanceInsufficient, types.VerdictDoubtful},
		{"middle band support", 0.6, StanceSupports, types.VerdictDoubtful},
		{"middle band contradiction", 0.6, StanceContradicts, types.VerdictDoubtful},
		{"low support", 0.3, StanceSupports, types.VerdictDoubtful},
		{"low contradiction", 0.3, StanceContradicts, types.VerdictFake},
		{"low insufficient", 0.3, StanceInsufficient, types.VerdictFake},
		{"conflict is doubtful regardless", 0.95, StanceConflicting, types.VerdictDoubtful},
		{"exactly high threshold stays middle", 0.8, StanceSupports, types.VerdictDoubtful},
		{"exactly low threshold stays middle", 0.4, StanceContradicts, types.VerdictDoubtful},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Decide(tc.aggregate, tc.stance))
		})
	}
}

func TestClassifyEmptyEvidenceSkipsModel(t *testing.T) {
	stub := &stubAI{err: errors.New("should not be called")}
	c := NewClassifier(stub)

	res := c.Classify(context.Background(), "some claim", nil, nil, 0.5)
	assert.Equal(t, types.VerdictDoubtful, res.Verdict)
	assert.Equal(t, 0.0, res.Confidence)
	assert.Zero(t, stub.calls)
}

func TestClassifySupportedClaim(t *testing.T) {
	stub := &stubAI{answer: `{"stance": "supports", "rationale": "Both sources report 22 points in game 7."}`}
	c := NewClassifier(stub)

	evidence := []types.Evidence{{Snippet: "22 points", SourceID: "stats:x", Kind: types.KindStructured, Credibility: 0.9}}
	sources := []types.Source{{ID: "stats:x", Title: "NBA Stats", Domain: "stats.nba.com", URL: "https://stats.nba.com"}}

	res := c.Classify(context.Background(), "Jamal Murray scored 22 points in game 7", evidence, sources, 0.9)
	assert.Equal(t, types.VerdictReal, res.Verdict)
	assert.Equal(t, 0.9, res.Confidence)
	assert.Contains(t, res.Rationale, "22 points")
	assert.Contains(t, res.Rationale, "Sources:")
	assert.Contains(t, res.Rationale, "stats.nba.com")
}

func TestClassifyMalformedOutputForcedDoubtful(t *testing.T) {
	evidence := []types.Evidence{{Snippet: "some fact", SourceID: "web:x", Kind: types.KindWeb, Credibility: 0.9}}

	for _, answer := range []string{"I think the claim is probably true", `{"stance": "definitely", "rationale": "x"}`} {
		c := NewClassifier(&stubAI{answer: answer})
		res := c.Classify(context.Background(), "claim", evidence, nil, 0.9)
		require.Equal(t, types.VerdictDoubtful, res.Verdict, "answer %q", answer)
		assert.Equal(t, 0.9, res.Confidence)
	}
}

func TestClassifyModelFailureForcedDoubtful(t *testing.T) {
	c := NewClassifier(&stubAI{err: errors.New("timeout")})
	evidence := []types.Evidence{{Snippet: "some fact", SourceID: "web:x", Kind: types.KindWeb, Credibility: 0.6}}

	res := c.Classify(context.Background(), "claim", evidence, nil, 0.6)
	assert.Equal(t, types.VerdictDoubtful, res.Verdict)
	assert.Equal(t, 0.6, res.Confidence)
	assert.NotEmpty(t, res.Rationale)
}

func TestClassifyGenuineInsufficientFollowsPolicy(t *testing.T) {
	stub := &stubAI{answer: `{"stance": "insufficient", "rationale": "The evidence does not mention the claim."}`}
	c := NewClassifier(stub)
	evidence := []types.Evidence{{Snippet: "unrelated fact", SourceID: "web:x", Kind: types.KindWeb, Credibility: 0.3}}

	// Weak evidence that fails to support the claim lands on FAKE.
	res := c.Classify(context.Background(), "claim", evidence, nil, 0.3)
	assert.Equal(t, types.VerdictFake, res.Verdict)
}

package classify

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/courtcheck/courtcheck/src/shared/ai"
	"github.com/courtcheck/courtcheck/src/verifier/types"
)

// Stance is the model's reading of how the evidence bears on the claim.
type Stance string

const (
	StanceSupports     Stance = "supports"
	StanceContradicts  Stance = "contradicts"
	StanceConflicting  Stance = "conflicting"
	StanceInsufficient Stance = "insufficient"
)

// Confidence thresholds for the verdict policy.
const (
	HighConfidence = 0.8
	LowConfidence  = 0.4
)

const systemPrompt = "You evaluate whether evidence supports or contradicts a factual claim about NBA basketball. Output valid JSON only."

// Classifier produces the final verdict. The model judges the stance of the
// evidence; the verdict itself comes from the deterministic threshold policy
// so a malformed model answer can never escape the enum.
type Classifier struct {
	client ai.Client
}

func NewClassifier(client ai.Client) *Classifier {
	return &Classifier{client: client}
}

// Classify evaluates the fused evidence against the claim. An empty
// evidence set resolves to DOUBTFUL at confidence 0.0 without a model call.
func (c *Classifier) Classify(ctx context.Context, claim string, evidence []types.Evidence, sources []types.Source, aggregate float64) types.ClassificationResult {
	if len(evidence) == 0 {
		return types.ClassificationResult{
			Verdict:    types.VerdictDoubtful,
			Confidence: 0.0,
			Rationale:  "No evidence was found for this claim in trusted web sources or the statistics dataset.",
		}
	}

	stance, rationale, ok := c.judge(ctx, claim, evidence)
	if !ok {
		// Malformed or unavailable model output is forced to DOUBTFUL;
		// a classification outside the enum never propagates.
		return types.ClassificationResult{
			Verdict:    types.VerdictDoubtful,
			Confidence: aggregate,
			Rationale:  withCitations(rationale, evidence, sources),
		}
	}
	verdict := Decide(aggregate, stance)

	return types.ClassificationResult{
		Verdict:    verdict,
		Confidence: aggregate,
		Rationale:  withCitations(rationale, evidence, sources),
	}
}

// Decide applies the confidence threshold policy:
// high confidence with supporting evidence is REAL, high confidence with
// contradicting evidence is FAKE, the middle band or conflicting sources
// are DOUBTFUL, and low confidence without support is FAKE.
func Decide(aggregate float64, stance Stance) types.Verdict {
	if stance == StanceConflicting {
		return types.VerdictDoubtful
	}
	switch {
	case aggregate > HighConfidence:
		switch stance {
		case StanceSupports:
			return types.VerdictReal
		case StanceContradicts:
			return types.VerdictFake
		default:
			return types.VerdictDoubtful
		}
	case aggregate >= LowConfidence:
		return types.VerdictDoubtful
	default:
		if stance == StanceSupports {
			return types.VerdictDoubtful
		}
		return types.VerdictFake
	}
}

// judge asks the model for a stance and rationale. The third return is
// false when the call failed or the output fell outside the stance enum.
func (c *Classifier) judge(ctx context.Context, claim string, evidence []types.Evidence) (Stance, string, bool) {
	var sb strings.Builder
	for i, ev := range evidence {
		fmt.Fprintf(&sb, "%d. [%s, credibility %.1f] %s\n", i+1, ev.Kind, ev.Credibility, ev.Snippet)
	}

	prompt := fmt.Sprintf(`Claim: %q

Evidence (each item is tagged with its source kind and credibility):
%s
Does the evidence support or contradict the claim? If web and structured evidence disagree with each other, the stance is "conflicting".

Respond with JSON:
{"stance": "supports|contradicts|conflicting|insufficient", "rationale": "one or two sentences referencing the evidence"}`, claim, sb.String())

	answer, err := c.client.AnswerQuestion(ctx, systemPrompt, prompt, ai.Options{MaxCompletionTokens: 500})
	if err != nil {
		log.Printf("classification call failed: %v", err)
		return StanceInsufficient, "The evidence could not be evaluated because the classification model was unavailable.", false
	}

	var parsed struct {
		Stance    string `json:"stance"`
		Rationale string `json:"rationale"`
	}
	if err := unmarshalLoose(answer, &parsed); err != nil {
		log.Printf("classification output unparseable: %v", err)
		return StanceInsufficient, "The classification model returned inconclusive output, so the claim could not be resolved.", false
	}

	stance := Stance(strings.ToLower(strings.TrimSpace(parsed.Stance)))
	switch stance {
	case StanceSupports, StanceContradicts, StanceConflicting, StanceInsufficient:
		rationale := strings.TrimSpace(parsed.Rationale)
		if rationale == "" {
			rationale = "The model did not explain its reading of the evidence."
		}
		return stance, rationale, true
	default:
		log.Printf("classification stance outside enum: %q", parsed.Stance)
		return StanceInsufficient, "The classification model returned inconclusive output, so the claim could not be resolved.", false
	}
}

// withCitations appends one citation per evidence kind used, so the
// explanation always names its sources.
func withCitations(rationale string, evidence []types.Evidence, sources []types.Source) string {
	byID := make(map[string]types.Source, len(sources))
	for _, s := range sources {
		byID[s.ID] = s
	}

	cited := make(map[types.SourceKind]bool)
	var cites []string
	for _, ev := range evidence {
		if cited[ev.Kind] {
			continue
		}
		src, ok := byID[ev.SourceID]
		if !ok {
			continue
		}
		label := src.Title
		if label == "" {
			label = src.Domain
		}
		if src.URL != "" {
			label = fmt.Sprintf("%s (%s)", label, src.URL)
		}
		cites = append(cites, fmt.Sprintf("%s: %s", ev.Kind, label))
		cited[ev.Kind] = true
	}
	if len(cites) == 0 {
		return rationale
	}
	return rationale + " Sources: " + strings.Join(cites, "; ") + "."
}

func unmarshalLoose(content string, v interface{}) error {
	if err := json.Unmarshal([]byte(content), v); err == nil {
		return nil
	}
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		return json.Unmarshal([]byte(content[start:end+1]), v)
	}
	return fmt.Errorf("no JSON object found")
}

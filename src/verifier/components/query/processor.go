package query

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/courtcheck/courtcheck/src/shared/ai"
	"github.com/courtcheck/courtcheck/src/verifier/components/entities"
	"github.com/courtcheck/courtcheck/src/verifier/types"
)

const relevanceSystemPrompt = "You judge whether a claim is about NBA basketball. Answer with a single word: yes or no."

// Processor validates domain relevance and rewrites claims into
// retrieval-optimized queries. The entity recognizer decides when it finds
// anything; the LLM is only a fallback for entity-free claims, and any LLM
// failure counts as could-not-confirm, never as valid.
type Processor struct {
	catalog *entities.Catalog
	client  ai.Client
}

func NewProcessor(catalog *entities.Catalog, client ai.Client) *Processor {
	return &Processor{catalog: catalog, client: client}
}

// Validate returns the domain-relevance decision for a claim.
func (p *Processor) Validate(ctx context.Context, claim string) (types.Decision, types.EntityMatches) {
	matches := p.catalog.Extract(claim)
	if !matches.Empty() {
		return types.Decision{Valid: true}, matches
	}

	answer, err := p.client.AnswerQuestion(ctx, relevanceSystemPrompt,
		fmt.Sprintf("Claim: %q", claim), ai.Options{MaxCompletionTokens: 10})
	if err != nil {
		log.Printf("relevance check failed: %v", err)
		return types.Decision{Valid: false, Reason: "could not confirm the claim is about NBA basketball"}, matches
	}

	switch strings.ToLower(strings.TrimSpace(strings.Trim(answer, ".!"))) {
	case "yes":
		return types.Decision{Valid: true}, matches
	case "no":
		return types.Decision{Valid: false, Reason: "the claim is not about NBA basketball"}, matches
	default:
		return types.Decision{Valid: false, Reason: "could not confirm the claim is about NBA basketball"}, matches
	}
}

// Enhance rewrites the claim into a search-optimized query. Failures fall
// back to the raw claim so the pipeline never blocks on enhancement.
func (p *Processor) Enhance(ctx context.Context, claim string, matches types.EntityMatches) types.Query {
	prompt := fmt.Sprintf(`Rewrite this claim as a short web search query that would surface evidence confirming or refuting it. Keep player and team names verbatim.

Respond with JSON: {"query": "..."}

Claim: %s`, claim)

	q := types.Query{Text: claim, Entities: matches}

	answer, err := p.client.AnswerQuestion(ctx, "You rewrite claims into search queries. Output valid JSON only.", prompt, ai.Options{MaxCompletionTokens: 200})
	if err != nil {
		log.Printf("query enhancement failed, using raw claim: %v", err)
		return q
	}

	var parsed struct {
		Query string `json:"query"`
	}
	if err := unmarshalLoose(answer, &parsed); err != nil || strings.TrimSpace(parsed.Query) == "" {
		log.Printf("query enhancement returned unusable output, using raw claim")
		return q
	}
	q.Text = strings.TrimSpace(parsed.Query)
	return q
}

// Broaden builds the entity-only retry query used when the first retrieval
// pass found nothing.
func Broaden(claim string, matches types.EntityMatches) types.Query {
	parts := append([]string{}, matches.Players...)
	parts = append(parts, matches.Teams...)
	parts = append(parts, matches.Seasons...)
	text := strings.Join(parts, " ")
	if text == "" {
		text = claim
	}
	return types.Query{Text: text, Entities: matches, Broadened: true}
}

// unmarshalLoose tolerates JSON embedded in surrounding prose.
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

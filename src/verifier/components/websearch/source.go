package websearch

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/courtcheck/courtcheck/src/shared/ai"
	"github.com/courtcheck/courtcheck/src/verifier/types"
)

// DefaultTopK is how many ranked results become evidence.
const DefaultTopK = 3

// Provider is the free-text search capability boundary.
type Provider interface {
	Search(ctx context.Context, query string, allowedDomains []string) ([]types.SearchResult, error)
}

// Source collects web evidence through a search provider restricted to an
// allow-list of trusted domains.
type Source struct {
	provider Provider
	allowed  []string
	topK     int
}

func NewSource(provider Provider, allowedDomains []string, topK int) *Source {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &Source{provider: provider, allowed: allowedDomains, topK: topK}
}

func (s *Source) Name() string { return "web" }

// Retrieve runs the restricted search and converts the top-K hits into
// evidence. An empty result list is evidence-of-absence, not an error.
func (s *Source) Retrieve(ctx context.Context, q types.Query) ([]types.Evidence, []types.Source, error) {
	results, err := s.provider.Search(ctx, q.Text, s.allowed)
	if err != nil {
		return nil, nil, fmt.Errorf("web search: %w", err)
	}

	var evidence []types.Evidence
	var sources []types.Source
	now := time.Now()
	for _, r := range results {
		if r.Rank > s.topK {
			continue
		}
		src := types.Source{
			ID:     "web:" + r.URL,
			URL:    r.URL,
			Title:  r.Title,
			Domain: r.Domain,
		}
		snippet := r.Snippet
		if snippet == "" {
			snippet = r.Title
		}
		evidence = append(evidence, types.Evidence{
			Snippet:   snippet,
			SourceID:  src.ID,
			Kind:      types.KindWeb,
			Relevance: rankRelevance(r.Rank),
			Retrieved: now,
		})
		sources = append(sources, src)
	}
	return evidence, sources, nil
}

// rankRelevance decays linearly with search rank.
func rankRelevance(rank int) float64 {
	if rank < 1 {
		rank = 1
	}
	rel := 1.0 - 0.2*float64(rank-1)
	if rel < 0.2 {
		rel = 0.2
	}
	return rel
}

// AIProvider implements Provider over the Responses API web_search tool,
// using URL citations as the ranked result list.
type AIProvider struct {
	client ai.Client
}

func NewAIProvider(client ai.Client) *AIProvider {
	return &AIProvider{client: client}
}

func (p *AIProvider) Search(ctx context.Context, query string, allowedDomains []string) ([]types.SearchResult, error) {
	prompt := fmt.Sprintf(`Search the web for evidence about: %s

Only use these sites: %s. Summarize what each source says in one sentence per source.`,
		query, strings.Join(allowedDomains, ", "))

	resp, err := p.client.Respond(ctx, prompt, []ai.Tool{{Type: "web_search"}}, ai.Options{})
	if err != nil {
		return nil, err
	}

	var results []types.SearchResult
	rank := 0
	for _, c := range resp.Citations {
		domain := hostOf(c.URL)
		if len(allowedDomains) > 0 && !domainAllowed(domain, allowedDomains) {
			log.Printf("dropping citation from unlisted domain %s", domain)
			continue
		}
		rank++
		results = append(results, types.SearchResult{
			Title:   c.Title,
			URL:     c.URL,
			Domain:  domain,
			Snippet: snippetFor(resp.Text, c.Title),
			Rank:    rank,
		})
	}
	return results, nil
}

func hostOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	return strings.TrimPrefix(strings.ToLower(u.Host), "www.")
}

func domainAllowed(domain string, allowed []string) bool {
	for _, a := range allowed {
		a = strings.ToLower(a)
		if domain == a || strings.HasSuffix(domain, "."+a) {
			return true
		}
	}
	return false
}

// snippetFor pulls the response line mentioning the source title, falling
// back to the first non-empty line.
func snippetFor(text, title string) string {
	lines := strings.Split(text, "\n")
	var fallback string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if fallback == "" {
			fallback = line
		}
		if title != "" && strings.Contains(strings.ToLower(line), strings.ToLower(title)) {
			return line
		}
	}
	return fallback
}

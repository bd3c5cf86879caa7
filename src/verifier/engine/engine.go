package engine

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/courtcheck/courtcheck/src/logging"
	"github.com/courtcheck/courtcheck/src/verifier/components/fusion"
	"github.com/courtcheck/courtcheck/src/verifier/types"
)

// QueryProcessor validates domain relevance and shapes retrieval queries.
type QueryProcessor interface {
	Validate(ctx context.Context, claim string) (types.Decision, types.EntityMatches)
	Enhance(ctx context.Context, claim string, matches types.EntityMatches) types.Query
}

// EvidenceSource is one independent evidence collector. Retrieve returns
// empty slices for evidence-of-absence; errors mean the source was
// unavailable, which degrades the run rather than aborting it.
type EvidenceSource interface {
	Name() string
	Retrieve(ctx context.Context, q types.Query) ([]types.Evidence, []types.Source, error)
}

// Scorer assigns credibility to retrieved evidence before fusion.
type Scorer interface {
	Apply(evidence []types.Evidence, sources []types.Source) ([]types.Evidence, []types.Source)
}

// Classifier resolves the fused evidence into the terminal verdict.
type Classifier interface {
	Classify(ctx context.Context, claim string, evidence []types.Evidence, sources []types.Source, aggregate float64) types.ClassificationResult
}

// Broadener builds the entity-only query for the retry pass.
type Broadener func(claim string, matches types.EntityMatches) types.Query

// Config bounds the run. Zero fields take defaults.
type Config struct {
	ValidateTimeout time.Duration
	EnhanceTimeout  time.Duration
	SourceTimeout   time.Duration
	ClassifyTimeout time.Duration
	MaxRetries      int
}

func (c Config) withDefaults() Config {
	if c.ValidateTimeout <= 0 {
		c.ValidateTimeout = 20 * time.Second
	}
	if c.EnhanceTimeout <= 0 {
		c.EnhanceTimeout = 20 * time.Second
	}
	if c.SourceTimeout <= 0 {
		c.SourceTimeout = 45 * time.Second
	}
	if c.ClassifyTimeout <= 0 {
		c.ClassifyTimeout = 45 * time.Second
	}
	if c.MaxRetries < 0 {
		c.MaxRetries = 0
	}
	if c.MaxRetries > 1 {
		c.MaxRetries = 1
	}
	return c
}

// Outcome is what a verification run hands back to the caller. Declined
// runs carry only the reason; completed runs always carry a verdict,
// confidence, and explanation, possibly noting degraded inputs.
type Outcome struct {
	Claim       string              `json:"claim"`
	Declined    bool                `json:"declined,omitempty"`
	Reason      string              `json:"reason,omitempty"`
	Verdict     types.Verdict       `json:"classification,omitempty"`
	Confidence  float64             `json:"confidence"`
	Explanation string              `json:"explanation,omitempty"`
	Sources     []types.Source      `json:"sources,omitempty"`
	QueryUsed   string              `json:"query_used,omitempty"`
	Entities    types.EntityMatches `json:"entities"`
	Degraded    []string            `json:"degraded,omitempty"`
	Retries     int                 `json:"retries"`
}

// Engine owns the verification state machine. A single Engine serves many
// concurrent runs; all per-run state lives in the run itself, and the only
// shared data is read-only configuration.
type Engine struct {
	processor  QueryProcessor
	sources    []EvidenceSource
	scorer     Scorer
	classifier Classifier
	broaden    Broadener
	cfg        Config
}

func New(processor QueryProcessor, sources []EvidenceSource, scorer Scorer, classifier Classifier, broaden Broadener, cfg Config) *Engine {
	return &Engine{
		processor:  processor,
		sources:    sources,
		scorer:     scorer,
		classifier: classifier,
		broaden:    broaden,
		cfg:        cfg.withDefaults(),
	}
}

type sourceResult struct {
	name     string
	evidence []types.Evidence
	sources  []types.Source
	err      error
}

// Verify runs the claim through the workflow. The returned error is
// non-nil only for caller cancellation or an internal invariant violation;
// every external failure resolves to a degraded but valid outcome.
func (e *Engine) Verify(ctx context.Context, claim string) (*Outcome, error) {
	run := types.NewVerificationState(claim)
	var q types.Query
	var matches types.EntityMatches
	var degraded []string
	var declineReason string

	st := Next(StateStart, OutcomeAdvance)
	for !st.Terminal() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		switch st {
		case StateValidating:
			vctx, cancel := context.WithTimeout(ctx, e.cfg.ValidateTimeout)
			decision, m := e.processor.Validate(vctx, claim)
			cancel()
			matches = m
			if !decision.Valid {
				if err := run.SetValidity(types.ValidityInvalid); err != nil {
					return nil, err
				}
				log.Printf("claim declined: %s", decision.Reason)
				declineReason = decision.Reason
				st = Next(st, OutcomeInvalid)
				continue
			}
			if err := run.SetValidity(types.ValidityValid); err != nil {
				return nil, err
			}
			st = Next(st, OutcomeAdvance)

		case StateEnhancing:
			ectx, cancel := context.WithTimeout(ctx, e.cfg.EnhanceTimeout)
			q = e.processor.Enhance(ectx, claim, matches)
			cancel()
			if err := run.SetEnhancedQuery(q.Text); err != nil {
				return nil, err
			}
			st = Next(st, OutcomeAdvance)

		case StateRetrieving:
			degraded = degraded[:0]
			evidence, sources, unavailable := e.retrieve(ctx, q)
			degraded = append(degraded, unavailable...)
			evidence, sources = e.scorer.Apply(evidence, sources)
			if err := run.AppendEvidence(evidence...); err != nil {
				return nil, err
			}
			run.AddSources(sources...)
			st = Next(st, OutcomeAdvance)

		case StateFusing:
			fused, aggregate := fusion.Fuse(run.Evidence)
			if err := run.SealFused(fused, aggregate); err != nil {
				return nil, err
			}
			st = Next(st, OutcomeAdvance)

		case StateClassifying:
			cctx, cancel := context.WithTimeout(ctx, e.cfg.ClassifyTimeout)
			result := e.classifier.Classify(cctx, claim, run.Evidence, run.Sources, run.Confidence)
			cancel()

			if result.Verdict == types.VerdictDoubtful && len(run.Evidence) == 0 && run.Retries < e.cfg.MaxRetries {
				run.Retries++
				run.Reopen()
				q = e.broaden(claim, matches)
				log.Printf("no evidence found, retrying with broadened query %q", q.Text)
				st = Next(st, OutcomeRetry)
				continue
			}

			if err := run.SetClassification(result); err != nil {
				return nil, err
			}
			st = Next(st, OutcomeAdvance)

		default:
			return nil, fmt.Errorf("workflow reached unexpected state %s", st)
		}
	}

	if st == StateDeclined {
		return &Outcome{
			Claim:    claim,
			Declined: true,
			Reason:   declineReason,
			Entities: matches,
		}, nil
	}

	out := &Outcome{
		Claim:       claim,
		Verdict:     run.Verdict,
		Confidence:  run.Confidence,
		Explanation: run.Explanation,
		Sources:     run.Sources,
		QueryUsed:   q.Text,
		Entities:    matches,
		Degraded:    append([]string(nil), degraded...),
		Retries:     run.Retries,
	}
	if len(degraded) > 0 {
		sort.Strings(out.Degraded)
		out.Explanation += fmt.Sprintf(" Note: the following evidence sources were unavailable during this run: %v.", out.Degraded)
	}
	return out, nil
}

// retrieve fans out to all evidence sources concurrently and joins before
// returning. A failing source is reported in the third return and its
// evidence treated as absent; the channel is buffered so late results from
// a cancelled run are dropped, never leaked into another run.
func (e *Engine) retrieve(ctx context.Context, q types.Query) ([]types.Evidence, []types.Source, []string) {
	results := make(chan sourceResult, len(e.sources))
	for _, src := range e.sources {
		go func(s EvidenceSource) {
			sctx, cancel := context.WithTimeout(ctx, e.cfg.SourceTimeout)
			defer cancel()
			ev, srcs, err := s.Retrieve(sctx, q)
			results <- sourceResult{name: s.Name(), evidence: ev, sources: srcs, err: err}
		}(src)
	}

	var evidence []types.Evidence
	var sources []types.Source
	var unavailable []string
	for range e.sources {
		select {
		case r := <-results:
			if r.err != nil {
				switch {
				case logging.IsTimeout(r.err):
					log.Printf("evidence source %s timed out: %v", r.name, r.err)
				case logging.IsRateLimit(r.err):
					log.Printf("evidence source %s rate limited: %v", r.name, r.err)
				default:
					log.Printf("evidence source %s unavailable: %v", r.name, r.err)
				}
				unavailable = append(unavailable, r.name)
				continue
			}
			evidence = append(evidence, r.evidence...)
			sources = append(sources, r.sources...)
		case <-ctx.Done():
			return evidence, sources, append(unavailable, "cancelled")
		}
	}
	return evidence, sources, unavailable
}

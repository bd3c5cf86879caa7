package types

import (
	"fmt"
	"time"
)

// Verdict is the tri-state classification of a claim.
type Verdict string

const (
	VerdictUnset    Verdict = ""
	VerdictReal     Verdict = "REAL"
	VerdictFake     Verdict = "FAKE"
	VerdictDoubtful Verdict = "DOUBTFUL"
)

// ParseVerdict maps model output onto the verdict enum. Anything outside
// the enum is rejected so a malformed classification never propagates.
func ParseVerdict(s string) (Verdict, bool) {
	switch Verdict(s) {
	case VerdictReal, VerdictFake, VerdictDoubtful:
		return Verdict(s), true
	}
	return VerdictUnset, false
}

// Validity is the domain-relevance decision for a claim.
type Validity int

const (
	ValidityUnknown Validity = iota
	ValidityValid
	ValidityInvalid
)

// SourceKind tags evidence provenance.
type SourceKind string

const (
	KindWeb        SourceKind = "web"
	KindStructured SourceKind = "structured-api"
)

// Tier is the credibility tier of an evidence source.
type Tier string

const (
	TierOfficial      Tier = "official"
	TierVerifiedMedia Tier = "verified-media"
	TierGeneral       Tier = "general"
)

// Source is citation metadata backing one or more evidence items.
type Source struct {
	ID     string `json:"id"`
	URL    string `json:"url"`
	Title  string `json:"title"`
	Domain string `json:"domain"`
	Tier   Tier   `json:"tier"`
}

// Evidence is a single retrieved fact fragment. Immutable after creation;
// the credibility scorer produces scored copies rather than mutating.
type Evidence struct {
	Snippet     string     `json:"snippet"`
	SourceID    string     `json:"source_id"`
	Kind        SourceKind `json:"kind"`
	Relevance   float64    `json:"relevance"`
	Credibility float64    `json:"credibility"`
	Retrieved   time.Time  `json:"retrieved,omitempty"`
}

// ClassificationResult is the terminal verdict for a run.
type ClassificationResult struct {
	Verdict    Verdict `json:"verdict"`
	Confidence float64 `json:"confidence"`
	Rationale  string  `json:"rationale"`
}

// EntityMatches holds the domain entities recognized in a claim.
type EntityMatches struct {
	Players      []string `json:"players,omitempty"`
	Teams        []string `json:"teams,omitempty"`
	Stats        []string `json:"stats,omitempty"`
	Seasons      []string `json:"seasons,omitempty"`
	Temporal     []string `json:"temporal,omitempty"`
	GameNumber   int      `json:"game_number,omitempty"`
	Championship bool     `json:"championship,omitempty"`
	Score        float64  `json:"score"`
}

// Empty reports whether no entity of any kind was recognized.
func (m EntityMatches) Empty() bool {
	return len(m.Players) == 0 && len(m.Teams) == 0 && len(m.Stats) == 0 &&
		len(m.Seasons) == 0 && m.GameNumber == 0 && !m.Championship
}

// Query is the retrieval input produced by the query processor.
type Query struct {
	Text      string        `json:"text"`
	Entities  EntityMatches `json:"entities"`
	Broadened bool          `json:"broadened"`
}

// Decision is the outcome of the domain-relevance check.
type Decision struct {
	Valid  bool
	Reason string
}

// SearchResult is one hit from the free-text search capability.
type SearchResult struct {
	Title   string
	URL     string
	Domain  string
	Snippet string
	Rank    int
}

// StructuredAnswer is the response of the structured QA capability.
type StructuredAnswer struct {
	Text         string
	Confidence   float64
	SourceDomain string
	Found        bool
}

// VerificationState is the single record threaded through a run. Mutation
// goes through the setters, which refuse to overwrite a field already set
// with a conflicting value.
type VerificationState struct {
	Claim         string
	Validity      Validity
	EnhancedQuery string
	Evidence      []Evidence
	Sources       []Source
	Confidence    float64
	Verdict       Verdict
	Explanation   string
	Retries       int

	fused bool
}

func NewVerificationState(claim string) *VerificationState {
	return &VerificationState{Claim: claim}
}

func (s *VerificationState) SetValidity(v Validity) error {
	if s.Validity != ValidityUnknown && s.Validity != v {
		return fmt.Errorf("validity already set to %d", s.Validity)
	}
	s.Validity = v
	return nil
}

func (s *VerificationState) SetEnhancedQuery(q string) error {
	if s.EnhancedQuery != "" && s.EnhancedQuery != q {
		return fmt.Errorf("enhanced query already set")
	}
	s.EnhancedQuery = q
	return nil
}

// AppendEvidence grows the evidence set; appends are rejected once fusion
// has sealed it.
func (s *VerificationState) AppendEvidence(items ...Evidence) error {
	if s.fused {
		return fmt.Errorf("evidence set sealed by fusion")
	}
	s.Evidence = append(s.Evidence, items...)
	return nil
}

func (s *VerificationState) AddSources(srcs ...Source) {
	for _, src := range srcs {
		exists := false
		for _, have := range s.Sources {
			if have.ID == src.ID {
				exists = true
				break
			}
		}
		if !exists {
			s.Sources = append(s.Sources, src)
		}
	}
}

// SealFused replaces the raw evidence with the fused set exactly once.
func (s *VerificationState) SealFused(ev []Evidence, confidence float64) error {
	if s.fused {
		return fmt.Errorf("fusion already applied")
	}
	if confidence < 0 || confidence > 1 {
		return fmt.Errorf("confidence %f out of range", confidence)
	}
	s.Evidence = ev
	s.Confidence = confidence
	s.fused = true
	return nil
}

// Reopen clears the fusion seal for a retry pass. The retry counter is the
// only field that carries across passes.
func (s *VerificationState) Reopen() {
	s.Evidence = nil
	s.Sources = nil
	s.Confidence = 0
	s.fused = false
}

func (s *VerificationState) SetClassification(r ClassificationResult) error {
	if s.Verdict != VerdictUnset && s.Verdict != r.Verdict {
		return fmt.Errorf("classification already set to %s", s.Verdict)
	}
	if len(s.Evidence) == 0 && r.Verdict != VerdictDoubtful {
		return fmt.Errorf("classification %s requires evidence", r.Verdict)
	}
	s.Verdict = r.Verdict
	s.Explanation = r.Rationale
	s.Confidence = r.Confidence
	return nil
}

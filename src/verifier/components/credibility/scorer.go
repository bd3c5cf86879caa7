package credibility

import (
	"strings"

	"github.com/courtcheck/courtcheck/src/verifier/types"
)

// Default tier weights.
const (
	DefaultOfficialScore = 0.9
	DefaultMediaScore    = 0.6
	DefaultGeneralScore  = 0.3
)

// DefaultOfficialDomains and DefaultMediaDomains seed the tier table when
// no configuration overrides them.
var (
	DefaultOfficialDomains = []string{"nba.com", "stats.nba.com"}
	DefaultMediaDomains    = []string{"espn.com", "theathletic.com", "bleacherreport.com", "sports.yahoo.com"}
)

// Config overrides the tier table; zero fields keep defaults.
type Config struct {
	OfficialDomains []string
	MediaDomains    []string
	OfficialScore   float64
	MediaScore      float64
	GeneralScore    float64
}

// Scorer assigns trust weights by source domain. It is a pure lookup:
// deterministic, no external calls, total over the domain space (unknown
// domains land in the general tier, never an error).
type Scorer struct {
	official []string
	media    []string
	scores   map[types.Tier]float64
}

func NewScorer(cfg Config) *Scorer {
	s := &Scorer{
		official: cfg.OfficialDomains,
		media:    cfg.MediaDomains,
		scores: map[types.Tier]float64{
			types.TierOfficial:      orScore(cfg.OfficialScore, DefaultOfficialScore),
			types.TierVerifiedMedia: orScore(cfg.MediaScore, DefaultMediaScore),
			types.TierGeneral:       orScore(cfg.GeneralScore, DefaultGeneralScore),
		},
	}
	if len(s.official) == 0 {
		s.official = DefaultOfficialDomains
	}
	if len(s.media) == 0 {
		s.media = DefaultMediaDomains
	}
	return s
}

// Tier resolves a domain to its credibility tier.
func (s *Scorer) Tier(domain string) types.Tier {
	domain = strings.ToLower(domain)
	if matchesDomain(domain, s.official) {
		return types.TierOfficial
	}
	if matchesDomain(domain, s.media) {
		return types.TierVerifiedMedia
	}
	return types.TierGeneral
}

// Score returns the trust weight for a source.
func (s *Scorer) Score(src types.Source) float64 {
	return s.scores[s.Tier(src.Domain)]
}

// Apply returns scored copies of the evidence and sources; inputs are not
// mutated since evidence is immutable after creation.
func (s *Scorer) Apply(evidence []types.Evidence, sources []types.Source) ([]types.Evidence, []types.Source) {
	tierByID := make(map[string]types.Tier, len(sources))
	scoreByID := make(map[string]float64, len(sources))

	scoredSources := make([]types.Source, len(sources))
	for i, src := range sources {
		src.Tier = s.Tier(src.Domain)
		scoredSources[i] = src
		tierByID[src.ID] = src.Tier
		scoreByID[src.ID] = s.scores[src.Tier]
	}

	scoredEvidence := make([]types.Evidence, len(evidence))
	for i, ev := range evidence {
		if score, ok := scoreByID[ev.SourceID]; ok {
			ev.Credibility = score
		} else {
			ev.Credibility = s.scores[types.TierGeneral]
		}
		scoredEvidence[i] = ev
	}
	return scoredEvidence, scoredSources
}

func matchesDomain(domain string, list []string) bool {
	for _, d := range list {
		d = strings.ToLower(d)
		if domain == d || strings.HasSuffix(domain, "."+d) {
			return true
		}
	}
	return false
}

func orScore(v, d float64) float64 {
	if v > 0 {
		return v
	}
	return d
}

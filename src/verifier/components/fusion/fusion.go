package fusion

import (
	"strings"

	"github.com/courtcheck/courtcheck/src/verifier/types"
)

// Fuse merges evidence from all adapters into one ordered set, dropping
// near-duplicate snippets from the same source and keeping the
// higher-relevance instance. The aggregate confidence is the arithmetic
// mean of credibility over the retained set, 0.0 when empty. Fusion makes
// no classification judgment; corroboration and conflict are the
// classifier's concern.
func Fuse(evidence []types.Evidence) ([]types.Evidence, float64) {
	var retained []types.Evidence
	for _, ev := range evidence {
		replaced := false
		dup := false
		for i, have := range retained {
			if have.SourceID != ev.SourceID || !overlapping(have.Snippet, ev.Snippet) {
				continue
			}
			dup = true
			if ev.Relevance > have.Relevance {
				retained[i] = ev
				replaced = true
			}
			break
		}
		if !dup && !replaced {
			retained = append(retained, ev)
		}
	}
	return retained, aggregate(retained)
}

func aggregate(evidence []types.Evidence) float64 {
	if len(evidence) == 0 {
		return 0.0
	}
	sum := 0.0
	for _, ev := range evidence {
		sum += ev.Credibility
	}
	return sum / float64(len(evidence))
}

// overlapping treats snippets as near-identical when one normalized text
// contains the other or their token overlap is dominant.
func overlapping(a, b string) bool {
	na, nb := normalize(a), normalize(b)
	if na == "" || nb == "" {
		return na == nb
	}
	if strings.Contains(na, nb) || strings.Contains(nb, na) {
		return true
	}
	ta := strings.Fields(na)
	tb := strings.Fields(nb)
	set := make(map[string]bool, len(ta))
	for _, t := range ta {
		set[t] = true
	}
	common := 0
	for _, t := range tb {
		if set[t] {
			common++
		}
	}
	smaller := len(ta)
	if len(tb) < smaller {
		smaller = len(tb)
	}
	return smaller > 0 && float64(common)/float64(smaller) >= 0.8
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Join(strings.Fields(s), " ")
}

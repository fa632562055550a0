package advisor

import (
	"strings"

	"github.com/ai4life/career-advisor-go/internal/constants"
)

// keywordConfidence is the scoring contract shared by every matching
// pass: matched-weight ratio, plus a phrase bonus for verbatim
// multi-word hits, a diminishing multi-match boost, and a context
// relevance boost, clamped to [0,1].
func (e *Engine) keywordConfidence(message string, keywords []string, weights map[string]float64) float64 {
	if len(keywords) == 0 || message == "" {
		return 0
	}

	var raw float64
	matched := 0
	for _, kw := range keywords {
		if strings.Contains(message, kw) {
			matched++
			w := 1.0
			if v, ok := weights[kw]; ok {
				w = v
			}
			raw += w
		}
	}
	if matched == 0 {
		return 0
	}

	confidence := raw / float64(len(keywords))

	for _, kw := range keywords {
		if strings.Contains(kw, " ") && strings.Contains(message, kw) {
			confidence += constants.AdvisorThresholds.PhraseBonus
		}
	}

	if matched >= 2 {
		confidence += constants.AdvisorThresholds.MultiMatchBonus * float64(matched-1)
	}

	if e.hasContextRelevance(message, keywords) {
		confidence += constants.AdvisorThresholds.ContextBoost
	}

	return clamp01(confidence)
}

// hasContextRelevance reports whether the message carries at least one
// guidance intent word alongside at least one group keyword.
func (e *Engine) hasContextRelevance(message string, keywords []string) bool {
	hasIntent := false
	for _, w := range e.catalog.ContextWords {
		if strings.Contains(message, w) {
			hasIntent = true
			break
		}
	}
	if !hasIntent {
		return false
	}
	for _, kw := range keywords {
		if strings.Contains(message, kw) {
			return true
		}
	}
	return false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

package advisor

import (
	"sort"

	"github.com/ai4life/career-advisor-go/internal/constants"
)

// candidate is one contextual match before priority resolution.
type candidate struct {
	result   Result
	raw      float64
	catIndex int
}

// analyzeContextual scores every keyword-bearing group and keeps the
// best group per category, dropping categories below the relevance
// floor.
func (e *Engine) analyzeContextual(msg string) []candidate {
	var out []candidate
	for ci, cat := range e.catalog.Categories {
		var bestScore float64
		var bestPool []string
		for i := range cat.Groups {
			g := &cat.Groups[i]
			if len(g.Keywords) == 0 {
				continue
			}
			score := e.keywordConfidence(msg, g.Keywords, g.Weights)
			if score > bestScore {
				bestScore = score
				bestPool = g.Responses
			}
		}
		if bestScore <= constants.AdvisorThresholds.ContextualFloor || len(bestPool) == 0 {
			continue
		}
		out = append(out, candidate{
			result: Result{
				Response:   e.pickResponse(bestPool),
				Confidence: bestScore,
				Category:   cat.ID,
			},
			raw:      bestScore,
			catIndex: ci,
		})
	}
	return out
}

// resolvePriority re-weights candidates by their category multiplier
// and returns the winner. Ties break on raw confidence, then on
// category declaration order.
func (e *Engine) resolvePriority(candidates []candidate) *Result {
	if len(candidates) == 0 {
		return nil
	}
	for i := range candidates {
		priority := e.catalog.Categories[candidates[i].catIndex].Priority
		candidates[i].result.Confidence = clamp01(candidates[i].raw * priority)
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.result.Confidence != b.result.Confidence {
			return a.result.Confidence > b.result.Confidence
		}
		if a.raw != b.raw {
			return a.raw > b.raw
		}
		return a.catIndex < b.catIndex
	})
	top := candidates[0].result
	return &top
}

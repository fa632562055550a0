package advisor

import (
	"regexp"
	"strings"

	"github.com/ai4life/career-advisor-go/internal/constants"
)

var slotPlaceholderRegex = regexp.MustCompile(`\{[^}]+\}`)

// matchTemplates resolves the message against every pattern-bearing
// group in the catalog and returns the single best candidate, or nil
// when nothing matched at all.
func (e *Engine) matchTemplates(msg string) *Result {
	var best *Result
	for _, cat := range e.catalog.Categories {
		for i := range cat.Groups {
			g := &cat.Groups[i]
			if len(g.Patterns) == 0 {
				continue
			}
			var m *Result
			if g.Slot != nil {
				m = e.matchSlotGroup(msg, g)
			} else {
				m = e.matchLiteralGroup(msg, g)
			}
			if m == nil {
				continue
			}
			m.Category = cat.ID
			if best == nil || m.Confidence > best.Confidence {
				best = m
			}
		}
	}
	return best
}

// matchLiteralGroup scores each slot-free pattern. A verbatim pattern
// hit short-circuits weighted scoring with the exact-match confidence.
func (e *Engine) matchLiteralGroup(msg string, g *PatternGroup) *Result {
	var bestScore float64
	for _, pattern := range g.Patterns {
		score := e.scorePattern(msg, pattern)
		if score > bestScore {
			bestScore = score
		}
	}
	if bestScore == 0 {
		return nil
	}
	return &Result{
		Response:   e.pickResponse(g.Responses),
		Confidence: bestScore,
	}
}

// matchSlotGroup substitutes every slot value present in the message
// into each pattern template; the best-scoring filled pattern selects
// its value-specific response pool, falling back to the group default.
func (e *Engine) matchSlotGroup(msg string, g *PatternGroup) *Result {
	placeholder := "{" + g.Slot.Name + "}"
	var bestScore float64
	var bestValue string
	for _, value := range g.Slot.Values {
		if !strings.Contains(msg, value) {
			continue
		}
		for _, pattern := range g.Patterns {
			filled := strings.ReplaceAll(pattern, placeholder, value)
			score := e.scorePattern(msg, filled)
			if score > bestScore {
				bestScore = score
				bestValue = value
			}
		}
	}
	if bestScore == 0 {
		return nil
	}
	pool := g.Responses
	if p, ok := g.SlotResponses[bestValue]; ok {
		pool = p
	}
	if len(pool) == 0 {
		return nil
	}
	return &Result{
		Response:   e.pickResponse(pool),
		Confidence: bestScore,
	}
}

// scorePattern rates one literal pattern against the message. Remaining
// slot placeholders are stripped first so partially variable patterns
// still score on their fixed words.
func (e *Engine) scorePattern(msg, pattern string) float64 {
	clean := strings.TrimSpace(slotPlaceholderRegex.ReplaceAllString(pattern, ""))
	clean = strings.Join(strings.Fields(clean), " ")
	if clean == "" {
		return 0
	}
	if strings.Contains(msg, clean) {
		return constants.AdvisorThresholds.ExactPatternScore
	}
	words := significantWords(clean)
	if len(words) == 0 {
		return 0
	}
	return e.keywordConfidence(msg, words, nil)
}

// significantWords drops particles too short to be meaningful triggers.
func significantWords(pattern string) []string {
	fields := strings.Fields(pattern)
	words := make([]string, 0, len(fields))
	for _, w := range fields {
		if len([]rune(w)) > 2 {
			words = append(words, w)
		}
	}
	return words
}

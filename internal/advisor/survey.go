package advisor

import (
	"sort"
	"strings"

	"github.com/ai4life/career-advisor-go/internal/constants"
	"github.com/ai4life/career-advisor-go/internal/domain"
	"github.com/ai4life/career-advisor-go/internal/util"
)

// SurveyCondition is one declarative check against a submitted survey.
// Exactly one selector field is set per condition.
type SurveyCondition struct {
	Interest        string
	Skill           string
	Subject         string
	MinScore        float64
	GoalKeyword     string
	LearningStyle   string
	WorkEnvironment string
}

func (c SurveyCondition) matches(s *domain.Survey) bool {
	switch {
	case c.Interest != "":
		return util.ContainsFold(s.Interests, c.Interest)
	case c.Skill != "":
		return util.ContainsFold(s.Skills, c.Skill)
	case c.Subject != "":
		return s.AcademicScores[c.Subject] >= c.MinScore
	case c.GoalKeyword != "":
		return strings.Contains(strings.ToLower(s.CareerGoals), c.GoalKeyword)
	case c.LearningStyle != "":
		return s.LearningStyle == c.LearningStyle
	case c.WorkEnvironment != "":
		return s.WorkEnvironmentPreference == c.WorkEnvironment
	}
	return false
}

// SurveyBonus adds fixed points when its condition holds.
type SurveyBonus struct {
	Points int
	When   SurveyCondition
}

// ReasonRule surfaces a human-readable reason when its condition holds.
type ReasonRule struct {
	When SurveyCondition
	Text string
}

// FieldRule is the complete scoring recipe for one candidate field of
// study. Ceilings differ per field on purpose: they encode a calibrated
// realistic maximum per domain.
type FieldRule struct {
	ID      string
	Code    string
	Name    string
	Base    int
	Ceiling int
	Bonuses []SurveyBonus
	Reasons []ReasonRule
}

// RankFields scores every candidate field against the survey and
// returns the top recommendations, descending, with synthesized
// reasons. Ties keep rule declaration order.
func (e *Engine) RankFields(s *domain.Survey) []domain.Recommendation {
	type scored struct {
		rule  *FieldRule
		score int
	}
	results := make([]scored, 0, len(fieldRules))
	for i := range fieldRules {
		rule := &fieldRules[i]
		score := rule.Base
		for _, b := range rule.Bonuses {
			if b.When.matches(s) {
				score += b.Points
			}
		}
		if score > rule.Ceiling {
			score = rule.Ceiling
		}
		results = append(results, scored{rule: rule, score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})
	if len(results) > constants.SurveyConfig.TopRecommendations {
		results = results[:constants.SurveyConfig.TopRecommendations]
	}

	out := make([]domain.Recommendation, 0, len(results))
	for _, r := range results {
		out = append(out, domain.Recommendation{
			FieldID:    r.rule.ID,
			FieldName:  r.rule.Name,
			FieldCode:  r.rule.Code,
			MatchScore: r.score,
			Reasons:    synthesizeReasons(r.rule, s),
		})
	}
	return out
}

// synthesizeReasons collects the specific reasons whose conditions
// fired, then pads with generic fillers up to the configured maximum.
func synthesizeReasons(rule *FieldRule, s *domain.Survey) []string {
	max := constants.SurveyConfig.MaxReasonsPerField
	reasons := make([]string, 0, max)
	for _, rr := range rule.Reasons {
		if len(reasons) == max {
			return reasons
		}
		if rr.When.matches(s) {
			reasons = append(reasons, rr.Text)
		}
	}
	for _, filler := range genericReasonFillers {
		if len(reasons) == max {
			break
		}
		reasons = append(reasons, filler)
	}
	return reasons
}

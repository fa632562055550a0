package advisor

import "strings"

// profileConfidence is reported for synthesized replies. Tag extraction
// is membership testing, not scoring, so the value is a fixed policy
// constant rather than a computed match strength.
const profileConfidence = 0.4

// Profile holds the per-request tag sets derived from one message.
// Never persisted; recomputed for every message.
type Profile struct {
	Concerns     []string
	Interests    []string
	Personality  []string
	Demographics []string
}

func (p Profile) Empty() bool {
	return len(p.Concerns) == 0 && len(p.Interests) == 0 &&
		len(p.Personality) == 0 && len(p.Demographics) == 0
}

func (p Profile) has(family []string, tag string) bool {
	for _, t := range family {
		if t == tag {
			return true
		}
	}
	return false
}

func (p Profile) primaryTag() string {
	for _, family := range [][]string{p.Concerns, p.Interests, p.Personality, p.Demographics} {
		if len(family) > 0 {
			return family[0]
		}
	}
	return ""
}

// extractProfile runs plain keyword membership tests over the four tag
// families.
func extractProfile(msg string) Profile {
	var p Profile
	for _, rule := range profileTagRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(msg, kw) {
				switch rule.Family {
				case tagFamilyConcern:
					p.Concerns = append(p.Concerns, rule.Tag)
				case tagFamilyInterest:
					p.Interests = append(p.Interests, rule.Tag)
				case tagFamilyPersonality:
					p.Personality = append(p.Personality, rule.Tag)
				case tagFamilyDemographic:
					p.Demographics = append(p.Demographics, rule.Tag)
				}
				break
			}
		}
	}
	return p
}

// synthesizeAdvice composes a reply from the profile by a fixed
// priority ladder. Only the first matching rule fires.
func (e *Engine) synthesizeAdvice(p Profile) string {
	if p.has(p.Concerns, tagAcademicWeakness) {
		if p.has(p.Interests, tagTechnology) {
			return profileAdvice.AcademicSupportIT
		}
		if p.has(p.Interests, tagDesign) {
			return profileAdvice.AcademicSupportDesign
		}
	}
	if p.has(p.Concerns, tagFinancial) {
		return profileAdvice.FinancialSupport
	}
	if p.has(p.Concerns, tagAge) {
		return profileAdvice.AgeAdvice
	}
	if p.has(p.Demographics, tagFemale) && p.has(p.Interests, tagTechnology) {
		return profileAdvice.WomenInTech
	}
	if p.has(p.Interests, tagTechnology) {
		return profileAdvice.TechCareer
	}
	if p.has(p.Interests, tagDesign) {
		return profileAdvice.DesignCareer
	}
	if p.has(p.Interests, tagBusiness) {
		return profileAdvice.BusinessCareer
	}
	if p.has(p.Personality, tagCreative) {
		return profileAdvice.CreativeCareer
	}
	if p.has(p.Personality, tagAnalytical) {
		return profileAdvice.AnalyticalCareer
	}
	if p.has(p.Personality, tagSocial) {
		return profileAdvice.SocialCareer
	}
	return profileAdvice.GeneralEncouragement
}

package advisor

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/ai4life/career-advisor-go/internal/constants"
)

var (
	controlCharsRegex = regexp.MustCompile("[\x00-\x08\x0b\x0c\x0e-\x1f\x7f]")
	whitespaceRegex   = regexp.MustCompile(`\s+`)
)

// Normalize lower-cases and NFC-normalizes raw input. Vietnamese text
// arrives in mixed composed and decomposed forms, so every match runs
// against the composed representation.
func Normalize(message string) string {
	return strings.ToLower(norm.NFC.String(message))
}

// Sanitize strips control characters, collapses whitespace, and bounds
// the message length before normalization.
func Sanitize(message string) string {
	s := controlCharsRegex.ReplaceAllString(message, "")
	s = whitespaceRegex.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	if len(s) > constants.AIInputLimits.MaxMessageLength {
		s = truncateRunes(s, constants.AIInputLimits.MaxMessageLength)
	}
	return s
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

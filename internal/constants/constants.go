package constants

import "time"

// AdvisorThresholds holds the tunable decision points of the fallback
// engine. The relative ordering (template > contextual acceptance,
// contextual floor below both) is contractual; the exact numbers are
// calibration values.
var AdvisorThresholds = struct {
	TemplateAccept    float64
	ContextualAccept  float64
	ContextualFloor   float64
	ExactPatternScore float64
	PhraseBonus       float64
	MultiMatchBonus   float64
	ContextBoost      float64
}{
	TemplateAccept:    0.5,
	ContextualAccept:  0.7,
	ContextualFloor:   0.3,
	ExactPatternScore: 0.95,
	PhraseBonus:       0.2,
	MultiMatchBonus:   0.1,
	ContextBoost:      0.15,
}

// CategoryPriority maps category identifiers to confidence multipliers.
// More personal, more urgent concerns outrank informational chatter.
var CategoryPriority = map[string]float64{
	"specific_concerns": 1.2,
	"academic_support":  1.15,
	"career_guidance":   1.1,
	"major_information": 1.05,
	"general_questions": 1.0,
	"greetings":         0.9,
	"encouragement":     0.8,
}

var CacheTTL = struct {
	ChatSession      time.Duration
	AdvisorResponse  time.Duration
	MajorInfo        time.Duration
	ModelStatus      time.Duration
	ScrapedPrograms  time.Duration
}{
	ChatSession:     30 * time.Minute,
	AdvisorResponse: 10 * time.Minute,
	MajorInfo:       60 * time.Minute,
	ModelStatus:     1 * time.Minute,
	ScrapedPrograms: 30 * time.Minute,
}

var AIInputLimits = struct {
	MaxMessageLength int
	MaxHistoryTurns  int
}{
	MaxMessageLength: 500,
	MaxHistoryTurns:  5,
}

var CircuitBreakerConfig = struct {
	FailureThreshold    int
	ResetTimeout        time.Duration
	RateLimitTimeout    time.Duration
	HealthCheckInterval time.Duration
	HealthCheckTimeout  time.Duration
}{
	FailureThreshold:    3,
	ResetTimeout:        30 * time.Second,
	RateLimitTimeout:    1 * time.Hour,
	HealthCheckInterval: 10 * time.Minute,
	HealthCheckTimeout:  10 * time.Second,
}

var RetryConfig = struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Jitter      time.Duration
}{
	MaxAttempts: 3,
	BaseDelay:   500 * time.Millisecond,
	Jitter:      250 * time.Millisecond,
}

var SurveyConfig = struct {
	TopRecommendations int
	MaxReasonsPerField int
	SubjectScoreMax    float64
}{
	TopRecommendations: 3,
	MaxReasonsPerField: 3,
	SubjectScoreMax:    10,
}

var ScraperConfig = struct {
	Timeout     time.Duration
	Concurrency int
}{
	Timeout:     15 * time.Second,
	Concurrency: 4,
}

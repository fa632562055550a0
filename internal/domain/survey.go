package domain

import "time"

// Survey holds one student's submitted questionnaire.
type Survey struct {
	ID                        string             `json:"id"`
	UserID                    string             `json:"userId,omitempty"`
	Name                      string             `json:"name"`
	Age                       int                `json:"age"`
	CurrentGrade              string             `json:"currentGrade"`
	Gender                    string             `json:"gender,omitempty"`
	Interests                 []string           `json:"interests"`
	Skills                    []string           `json:"skills"`
	AcademicScores            map[string]float64 `json:"academicScores"`
	CareerGoals               string             `json:"careerGoals"`
	LearningStyle             string             `json:"learningStyle,omitempty"`
	WorkEnvironmentPreference string             `json:"workEnvironmentPreference,omitempty"`
	CreatedAt                 time.Time          `json:"createdAt"`
}

// Recommendation is one ranked field of study with its match score.
type Recommendation struct {
	FieldID    string   `json:"fieldId"`
	FieldName  string   `json:"fieldName"`
	FieldCode  string   `json:"fieldCode,omitempty"`
	MatchScore int      `json:"matchScore"`
	Reasons    []string `json:"reasons"`
}

// AnalysisResult is the full advisory output stored for a survey.
type AnalysisResult struct {
	ID                string           `json:"id"`
	SurveyID          string           `json:"surveyId"`
	RecommendedFields []Recommendation `json:"recommendedFields"`
	AnalysisSummary   string           `json:"analysisSummary"`
	Strengths         []string         `json:"strengths"`
	Advice            []string         `json:"advice"`
	ConfidenceScore   float64          `json:"confidenceScore"`
	Provider          string           `json:"provider"`
	UsedFallback      bool             `json:"usedFallback"`
	CreatedAt         time.Time        `json:"createdAt"`
}

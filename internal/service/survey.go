package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ai4life/career-advisor-go/internal/domain"
	"github.com/ai4life/career-advisor-go/internal/prompt"
	"github.com/ai4life/career-advisor-go/internal/service/ai"
	"github.com/ai4life/career-advisor-go/pkg/errors"
)

// JSONGenerator produces structured model output for survey analysis.
type JSONGenerator interface {
	Enabled() bool
	GenerateJSON(ctx context.Context, prompt string, preset ai.ModelPreset, dest any, opts *ai.GenerateOptions) (*ai.GenerateMetadata, error)
}

// FieldRanker is the local scoring engine used when no model answers.
type FieldRanker interface {
	RankFields(s *domain.Survey) []domain.Recommendation
}

type SurveyStore interface {
	Save(ctx context.Context, s *domain.Survey) error
	FindByID(ctx context.Context, id string) (*domain.Survey, error)
}

type ResultStore interface {
	Save(ctx context.Context, result *domain.AnalysisResult) error
	FindBySurveyID(ctx context.Context, surveyID string) (*domain.AnalysisResult, error)
	FindByID(ctx context.Context, id string) (*domain.AnalysisResult, error)
	ListRecent(ctx context.Context, limit int) ([]domain.AnalysisResult, error)
}

type MajorStore interface {
	List(ctx context.Context) ([]domain.Major, error)
}

type SurveyService struct {
	models  JSONGenerator
	engine  FieldRanker
	surveys SurveyStore
	results ResultStore
	majors  MajorStore
	logger  *zap.Logger
}

func NewSurveyService(models JSONGenerator, engine FieldRanker, surveys SurveyStore, results ResultStore, majors MajorStore, logger *zap.Logger) *SurveyService {
	return &SurveyService{
		models:  models,
		engine:  engine,
		surveys: surveys,
		results: results,
		majors:  majors,
		logger:  logger,
	}
}

// aiAnalysis mirrors the JSON object the analysis prompt requests.
type aiAnalysis struct {
	RecommendedFields []domain.Recommendation `json:"recommendedFields"`
	AnalysisSummary   string                  `json:"analysisSummary"`
	Strengths         []string                `json:"strengths"`
	Advice            []string                `json:"advice"`
	ConfidenceScore   float64                 `json:"confidenceScore"`
}

// Analyze persists the survey and produces a ranked recommendation set,
// from the live model when available and from local scoring otherwise.
func (s *SurveyService) Analyze(ctx context.Context, survey *domain.Survey) (*domain.AnalysisResult, error) {
	if err := validateSurvey(survey); err != nil {
		return nil, err
	}

	if survey.ID == "" {
		survey.ID = uuid.NewString()
	}
	survey.CreatedAt = time.Now()

	if s.surveys != nil {
		if err := s.surveys.Save(ctx, survey); err != nil {
			return nil, err
		}
	}

	result := s.analyzeWithModel(ctx, survey)
	if result == nil {
		result = s.analyzeLocally(survey)
	}

	result.ID = uuid.NewString()
	result.SurveyID = survey.ID
	result.CreatedAt = time.Now()

	if s.results != nil {
		if err := s.results.Save(ctx, result); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (s *SurveyService) analyzeWithModel(ctx context.Context, survey *domain.Survey) *domain.AnalysisResult {
	if s.models == nil || !s.models.Enabled() {
		return nil
	}

	var majors []domain.Major
	if s.majors != nil {
		list, err := s.majors.List(ctx)
		if err != nil {
			s.logger.Warn("failed to load majors for analysis prompt", zap.Error(err))
		} else {
			majors = list
		}
	}

	var parsed aiAnalysis
	metadata, err := s.models.GenerateJSON(ctx,
		prompt.BuildSurveyAnalysisPrompt(survey, majors), ai.PresetPrecise, &parsed, nil)
	if err != nil {
		s.logger.Warn("model analysis failed, using local scoring",
			zap.String("survey_id", survey.ID), zap.Error(err))
		return nil
	}
	if len(parsed.RecommendedFields) == 0 {
		s.logger.Warn("model analysis returned no recommendations, using local scoring",
			zap.String("survey_id", survey.ID))
		return nil
	}

	return &domain.AnalysisResult{
		RecommendedFields: parsed.RecommendedFields,
		AnalysisSummary:   parsed.AnalysisSummary,
		Strengths:         parsed.Strengths,
		Advice:            parsed.Advice,
		ConfidenceScore:   parsed.ConfidenceScore,
		Provider:          metadata.Provider,
		UsedFallback:      metadata.UsedFallback,
	}
}

func (s *SurveyService) analyzeLocally(survey *domain.Survey) *domain.AnalysisResult {
	recommendations := s.engine.RankFields(survey)

	strengths := make([]string, 0, len(survey.Skills))
	strengths = append(strengths, survey.Skills...)
	if len(strengths) == 0 {
		strengths = append(strengths, "Tinh thần học hỏi")
	}

	return &domain.AnalysisResult{
		RecommendedFields: recommendations,
		AnalysisSummary: "Dựa trên sở thích, kỹ năng và kết quả học tập của bạn, " +
			"hệ thống đã xác định các ngành học phù hợp nhất dưới đây.",
		Strengths: strengths,
		Advice: []string{
			"Tìm hiểu kỹ chương trình đào tạo của ngành được đề xuất",
			"Tham gia các hoạt động trải nghiệm thực tế liên quan đến ngành",
			"Trau dồi thêm tiếng Anh và kỹ năng mềm",
		},
		ConfidenceScore: 0.8,
		Provider:        "rule-engine",
		UsedFallback:    true,
	}
}

func (s *SurveyService) GetSurvey(ctx context.Context, id string) (*domain.Survey, error) {
	if id == "" {
		return nil, errors.NewValidationError("survey id must not be empty", "id", id)
	}
	return s.surveys.FindByID(ctx, id)
}

func (s *SurveyService) GetResult(ctx context.Context, id string) (*domain.AnalysisResult, error) {
	if id == "" {
		return nil, errors.NewValidationError("result id must not be empty", "id", id)
	}
	return s.results.FindByID(ctx, id)
}

func (s *SurveyService) GetResultBySurvey(ctx context.Context, surveyID string) (*domain.AnalysisResult, error) {
	if surveyID == "" {
		return nil, errors.NewValidationError("survey id must not be empty", "surveyId", surveyID)
	}
	return s.results.FindBySurveyID(ctx, surveyID)
}

func (s *SurveyService) ListResults(ctx context.Context, limit int) ([]domain.AnalysisResult, error) {
	return s.results.ListRecent(ctx, limit)
}

func validateSurvey(s *domain.Survey) error {
	if s == nil {
		return errors.NewValidationError("survey must not be nil", "survey", nil)
	}
	if s.Name == "" {
		return errors.NewValidationError("name is required", "name", s.Name)
	}
	if s.Age <= 0 {
		return errors.NewValidationError("age must be positive", "age", s.Age)
	}
	if len(s.Interests) == 0 {
		return errors.NewValidationError("at least one interest is required", "interests", s.Interests)
	}
	return nil
}

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"testing"

	"go.uber.org/zap"

	"github.com/ai4life/career-advisor-go/internal/advisor"
	"github.com/ai4life/career-advisor-go/internal/domain"
	"github.com/ai4life/career-advisor-go/internal/service/ai"
)

type fakeJSONGenerator struct {
	enabled bool
	payload string
	err     error
	calls   int
}

func (f *fakeJSONGenerator) Enabled() bool { return f.enabled }

func (f *fakeJSONGenerator) GenerateJSON(ctx context.Context, prompt string, preset ai.ModelPreset, dest any, opts *ai.GenerateOptions) (*ai.GenerateMetadata, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if err := json.Unmarshal([]byte(f.payload), dest); err != nil {
		return nil, err
	}
	return &ai.GenerateMetadata{Provider: "gemini", Model: "gemini-2.5-flash"}, nil
}

type fakeSurveyStore struct {
	saved map[string]*domain.Survey
}

func newFakeSurveyStore() *fakeSurveyStore {
	return &fakeSurveyStore{saved: make(map[string]*domain.Survey)}
}

func (f *fakeSurveyStore) Save(ctx context.Context, s *domain.Survey) error {
	copied := *s
	f.saved[s.ID] = &copied
	return nil
}

func (f *fakeSurveyStore) FindByID(ctx context.Context, id string) (*domain.Survey, error) {
	return f.saved[id], nil
}

type fakeResultStore struct {
	saved []*domain.AnalysisResult
}

func (f *fakeResultStore) Save(ctx context.Context, result *domain.AnalysisResult) error {
	copied := *result
	f.saved = append(f.saved, &copied)
	return nil
}

func (f *fakeResultStore) FindBySurveyID(ctx context.Context, surveyID string) (*domain.AnalysisResult, error) {
	for i := len(f.saved) - 1; i >= 0; i-- {
		if f.saved[i].SurveyID == surveyID {
			return f.saved[i], nil
		}
	}
	return nil, nil
}

func (f *fakeResultStore) FindByID(ctx context.Context, id string) (*domain.AnalysisResult, error) {
	for _, r := range f.saved {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeResultStore) ListRecent(ctx context.Context, limit int) ([]domain.AnalysisResult, error) {
	out := make([]domain.AnalysisResult, 0, len(f.saved))
	for _, r := range f.saved {
		out = append(out, *r)
	}
	return out, nil
}

type fakeMajorStore struct{}

func (fakeMajorStore) List(ctx context.Context) ([]domain.Major, error) {
	return []domain.Major{{Code: "IT", Name: "Công nghệ thông tin"}}, nil
}

func newTestRanker(t *testing.T) FieldRanker {
	t.Helper()
	engine, err := advisor.NewEngine(nil, zap.NewNop(), advisor.WithRandSource(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	return engine
}

func itSurvey() *domain.Survey {
	return &domain.Survey{
		Name:           "Minh",
		Age:            17,
		CurrentGrade:   "12",
		Interests:      []string{"Công nghệ thông tin"},
		Skills:         []string{"Lập trình", "Tư duy logic"},
		AcademicScores: map[string]float64{"toán": 9, "lý": 8},
		CareerGoals:    "trở thành lập trình viên",
	}
}

func TestAnalyzeUsesModelResult(t *testing.T) {
	models := &fakeJSONGenerator{
		enabled: true,
		payload: `{
			"recommendedFields": [{"fieldId": "1", "fieldName": "Công nghệ thông tin", "fieldCode": "IT", "matchScore": 95, "reasons": ["Điểm toán cao"]}],
			"analysisSummary": "Bạn phù hợp với ngành kỹ thuật.",
			"strengths": ["Tư duy logic"],
			"advice": ["Học thêm tiếng Anh"],
			"confidenceScore": 0.92
		}`,
	}
	results := &fakeResultStore{}
	svc := NewSurveyService(models, newTestRanker(t), newFakeSurveyStore(), results, fakeMajorStore{}, zap.NewNop())

	result, err := svc.Analyze(context.Background(), itSurvey())
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if result.Provider != "gemini" {
		t.Fatalf("unexpected provider: %q", result.Provider)
	}
	if result.UsedFallback {
		t.Fatal("expected model path, got fallback")
	}
	if result.ConfidenceScore != 0.92 {
		t.Fatalf("unexpected confidence: %v", result.ConfidenceScore)
	}
	if len(results.saved) != 1 {
		t.Fatalf("expected 1 persisted result, got %d", len(results.saved))
	}
}

func TestAnalyzeFallsBackToLocalScoring(t *testing.T) {
	models := &fakeJSONGenerator{enabled: true, err: fmt.Errorf("503 service unavailable")}
	surveys := newFakeSurveyStore()
	svc := NewSurveyService(models, newTestRanker(t), surveys, &fakeResultStore{}, fakeMajorStore{}, zap.NewNop())

	result, err := svc.Analyze(context.Background(), itSurvey())
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if !result.UsedFallback || result.Provider != "rule-engine" {
		t.Fatalf("expected rule-engine result, got provider %q", result.Provider)
	}
	if len(result.RecommendedFields) != 3 {
		t.Fatalf("expected 3 recommendations, got %d", len(result.RecommendedFields))
	}
	if result.RecommendedFields[0].FieldCode != "IT" {
		t.Fatalf("expected IT first for this profile, got %q", result.RecommendedFields[0].FieldCode)
	}
	if result.SurveyID == "" {
		t.Fatal("result must reference its survey")
	}
	if len(surveys.saved) != 1 {
		t.Fatalf("expected survey persisted once, got %d", len(surveys.saved))
	}
}

func TestAnalyzeDisabledModelSkipsModelCall(t *testing.T) {
	models := &fakeJSONGenerator{enabled: false}
	svc := NewSurveyService(models, newTestRanker(t), newFakeSurveyStore(), &fakeResultStore{}, fakeMajorStore{}, zap.NewNop())

	result, err := svc.Analyze(context.Background(), itSurvey())
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if models.calls != 0 {
		t.Fatalf("disabled model must not be called, got %d calls", models.calls)
	}
	if !result.UsedFallback {
		t.Fatal("expected fallback result")
	}
}

func TestAnalyzeRejectsIncompleteSurvey(t *testing.T) {
	svc := NewSurveyService(nil, newTestRanker(t), newFakeSurveyStore(), &fakeResultStore{}, fakeMajorStore{}, zap.NewNop())

	cases := []*domain.Survey{
		nil,
		{Age: 17, Interests: []string{"x"}},
		{Name: "Minh", Interests: []string{"x"}},
		{Name: "Minh", Age: 17},
	}
	for i, s := range cases {
		if _, err := svc.Analyze(context.Background(), s); err == nil {
			t.Fatalf("case %d: expected validation error", i)
		}
	}
}

func TestAnalyzeEmptyModelRecommendationsFallBack(t *testing.T) {
	models := &fakeJSONGenerator{
		enabled: true,
		payload: `{"recommendedFields": [], "analysisSummary": "", "strengths": [], "advice": [], "confidenceScore": 0}`,
	}
	svc := NewSurveyService(models, newTestRanker(t), newFakeSurveyStore(), &fakeResultStore{}, fakeMajorStore{}, zap.NewNop())

	result, err := svc.Analyze(context.Background(), itSurvey())
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if !result.UsedFallback {
		t.Fatal("empty model output must fall back to local scoring")
	}
}

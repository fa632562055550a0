package advisor

import (
	"testing"

	"github.com/ai4life/career-advisor-go/internal/domain"
)

func TestRankFieldsITProfile(t *testing.T) {
	e := newTestEngine(t)

	s := &domain.Survey{
		Name:           "Minh",
		Interests:      []string{"Công nghệ thông tin"},
		Skills:         []string{"Lập trình"},
		AcademicScores: map[string]float64{"math": 9},
	}
	recs := e.RankFields(s)
	if len(recs) == 0 {
		t.Fatal("expected recommendations")
	}
	top := recs[0]
	if top.FieldCode != "IT" {
		t.Fatalf("expected IT on top, got %s", top.FieldCode)
	}
	// base 60 + interest 20 + skill 15 + math threshold 15, ceiling 98
	if top.MatchScore != 98 {
		t.Fatalf("expected IT score 98, got %d", top.MatchScore)
	}
}

func TestRankFieldsRespectsCeilings(t *testing.T) {
	e := newTestEngine(t)

	s := &domain.Survey{
		Interests: []string{"Công nghệ thông tin", "Thiết kế đồ họa", "Nghệ thuật", "Marketing"},
		Skills:    []string{"Lập trình", "Tư duy logic", "Sáng tạo", "Thiết kế", "Giao tiếp", "Thuyết trình"},
		AcademicScores: map[string]float64{
			"math": 10, "physics": 10, "english": 10,
		},
		CareerGoals:               "trở thành kỹ sư lập trình",
		LearningStyle:             "visual",
		WorkEnvironmentPreference: "office",
	}
	recs := e.RankFields(s)
	if len(recs) != 3 {
		t.Fatalf("expected 3 recommendations, got %d", len(recs))
	}

	wantCodes := []string{"IT", "GD", "MKT"}
	wantScores := []int{98, 95, 92}
	for i, rec := range recs {
		if rec.FieldCode != wantCodes[i] {
			t.Fatalf("position %d: expected %s, got %s", i, wantCodes[i], rec.FieldCode)
		}
		if rec.MatchScore != wantScores[i] {
			t.Fatalf("%s: expected ceiling %d, got %d", rec.FieldCode, wantScores[i], rec.MatchScore)
		}
	}
	for i := 1; i < len(recs); i++ {
		if recs[i].MatchScore > recs[i-1].MatchScore {
			t.Fatal("recommendations not sorted descending")
		}
	}
}

func TestRankFieldsNeverExceedsTopN(t *testing.T) {
	e := newTestEngine(t)

	recs := e.RankFields(&domain.Survey{})
	if len(recs) > 3 {
		t.Fatalf("expected at most 3 recommendations, got %d", len(recs))
	}
}

func TestRankFieldsReasons(t *testing.T) {
	e := newTestEngine(t)

	s := &domain.Survey{
		Interests:      []string{"Công nghệ thông tin"},
		AcademicScores: map[string]float64{"math": 8},
	}
	recs := e.RankFields(s)
	if recs[0].FieldCode != "IT" {
		t.Fatalf("expected IT on top, got %s", recs[0].FieldCode)
	}
	reasons := recs[0].Reasons
	if len(reasons) == 0 || len(reasons) > 3 {
		t.Fatalf("expected 1-3 reasons, got %d", len(reasons))
	}
	if reasons[0] != "Điểm toán cao" {
		t.Fatalf("expected the math reason first, got %q", reasons[0])
	}
}

func TestRankFieldsEmptySurveyUsesBaseScores(t *testing.T) {
	e := newTestEngine(t)

	recs := e.RankFields(&domain.Survey{})
	// bases: IT 60, MKT 55, GD 50
	wantCodes := []string{"IT", "MKT", "GD"}
	wantScores := []int{60, 55, 50}
	for i, rec := range recs {
		if rec.FieldCode != wantCodes[i] || rec.MatchScore != wantScores[i] {
			t.Fatalf("position %d: got %s=%d, want %s=%d",
				i, rec.FieldCode, rec.MatchScore, wantCodes[i], wantScores[i])
		}
	}
}

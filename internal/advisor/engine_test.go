package advisor

import (
	"math/rand"
	"testing"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(nil, nil, WithRandSource(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	return e
}

func TestClassifyAlwaysAnswers(t *testing.T) {
	e := newTestEngine(t)

	inputs := []string{
		"",
		"xin chào",
		"tôi dốt toán nhưng muốn học công nghệ thông tin",
		"zzz qqq 999",
		"🎉🎉🎉",
		string(make([]byte, 0)),
	}
	for _, in := range inputs {
		r := e.Classify(in)
		if r.Response == "" {
			t.Fatalf("Classify(%q) returned empty response", in)
		}
		if r.Confidence < 0 || r.Confidence > 1 {
			t.Fatalf("Classify(%q) confidence %v out of range", in, r.Confidence)
		}
	}
}

func TestClassifyLongInput(t *testing.T) {
	e := newTestEngine(t)

	long := ""
	for i := 0; i < 200; i++ {
		long += "abc xyz "
	}
	r := e.Classify(long)
	if r.Response == "" {
		t.Fatal("expected a response for oversized input")
	}
}

func TestExactPatternShortCircuits(t *testing.T) {
	e := newTestEngine(t)

	r := e.Classify("điều kiện tuyển sinh như thế nào")
	if r.Stage != StageTemplate {
		t.Fatalf("expected template stage, got %s", r.Stage)
	}
	if r.Confidence < 0.95 {
		t.Fatalf("expected exact-match confidence >= 0.95, got %v", r.Confidence)
	}
}

func TestMathWeaknessWithITInterest(t *testing.T) {
	e := newTestEngine(t)

	r := e.Classify("tôi dốt toán nhưng muốn học công nghệ thông tin")
	if r.Stage != StageTemplate {
		t.Fatalf("expected template stage, got %s", r.Stage)
	}
	if r.Confidence < 0.5 {
		t.Fatalf("expected confidence >= 0.5, got %v", r.Confidence)
	}
	if r.Category != "specific_concerns" {
		t.Fatalf("expected specific_concerns, got %q", r.Category)
	}
	found := false
	for _, want := range mathItResponses {
		if r.Response == want {
			found = true
			break
		}
	}
	if !found {
		t.Fatal("response did not come from the math/IT pool")
	}
}

func TestGreetingReachesContextualStage(t *testing.T) {
	e := newTestEngine(t)

	r := e.Classify("xin chào")
	if r.Stage != StageContextual {
		t.Fatalf("expected contextual stage, got %s", r.Stage)
	}
	if r.Category != "greetings" {
		t.Fatalf("expected greetings category, got %q", r.Category)
	}
	if r.Confidence < 0.7 {
		t.Fatalf("expected confidence >= 0.7, got %v", r.Confidence)
	}
}

func TestNoMatchFallsToGeneric(t *testing.T) {
	e := newTestEngine(t)

	r := e.Classify("zzz qqq 999")
	if r.Stage != StageGeneric {
		t.Fatalf("expected generic stage, got %s", r.Stage)
	}
	found := false
	for _, want := range genericFallbackPool {
		if r.Response == want {
			found = true
			break
		}
	}
	if !found {
		t.Fatal("response did not come from the generic pool")
	}
}

func TestClassifyIdempotentWithPinnedSeed(t *testing.T) {
	msg := "tôi dốt toán nhưng muốn học công nghệ thông tin"

	a, err := NewEngine(nil, nil, WithRandSource(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	b, err := NewEngine(nil, nil, WithRandSource(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	ra := a.Classify(msg)
	rb := b.Classify(msg)
	if ra != rb {
		t.Fatalf("same seed produced different results:\n%+v\n%+v", ra, rb)
	}
}

func TestKeywordConfidenceMonotonic(t *testing.T) {
	e := newTestEngine(t)
	msg := "tôi muốn học lập trình"

	base := e.keywordConfidence(msg, []string{"lập trình", "phần mềm"}, nil)
	extended := e.keywordConfidence(msg, []string{"lập trình", "phần mềm", "học"}, nil)
	if extended < base {
		t.Fatalf("adding a matched keyword lowered confidence: %v -> %v", base, extended)
	}
}

func TestKeywordConfidenceClamped(t *testing.T) {
	e := newTestEngine(t)
	msg := "học lập trình và thiết kế đồ họa công nghệ thông tin"

	c := e.keywordConfidence(msg, []string{"lập trình", "thiết kế", "đồ họa", "công nghệ thông tin"}, nil)
	if c < 0 || c > 1 {
		t.Fatalf("confidence %v out of range", c)
	}
}

func TestPriorityResolverPrefersSpecificConcerns(t *testing.T) {
	e := newTestEngine(t)

	greetIdx := -1
	specificIdx := -1
	for i, cat := range e.catalog.Categories {
		switch cat.ID {
		case "greetings":
			greetIdx = i
		case "specific_concerns":
			specificIdx = i
		}
	}
	if greetIdx < 0 || specificIdx < 0 {
		t.Fatal("expected categories missing from catalog")
	}

	top := e.resolvePriority([]candidate{
		{result: Result{Response: "a", Confidence: 0.6, Category: "greetings"}, raw: 0.6, catIndex: greetIdx},
		{result: Result{Response: "b", Confidence: 0.6, Category: "specific_concerns"}, raw: 0.6, catIndex: specificIdx},
	})
	if top == nil {
		t.Fatal("expected a winner")
	}
	if top.Category != "specific_concerns" {
		t.Fatalf("expected specific_concerns to win, got %q", top.Category)
	}
}

func TestProfileSynthesisFiresOnDerivedTags(t *testing.T) {
	e := newTestEngine(t)

	p := extractProfile("mình yếu mấy môn tự nhiên")
	if p.Empty() {
		t.Fatal("expected a non-empty profile")
	}
	if !p.has(p.Concerns, tagAcademicWeakness) {
		t.Fatalf("expected academic_weakness concern, got %+v", p)
	}
	if got := e.synthesizeAdvice(p); got == "" {
		t.Fatal("expected synthesized advice")
	}
}

func TestProfilePriorityLadder(t *testing.T) {
	e := newTestEngine(t)

	p := Profile{
		Concerns:  []string{tagAcademicWeakness, tagFinancial},
		Interests: []string{tagTechnology},
	}
	if got := e.synthesizeAdvice(p); got != profileAdvice.AcademicSupportIT {
		t.Fatal("academic weakness with tech interest should outrank financial concern")
	}

	p = Profile{Concerns: []string{tagFinancial}, Interests: []string{tagDesign}}
	if got := e.synthesizeAdvice(p); got != profileAdvice.FinancialSupport {
		t.Fatal("financial concern should outrank plain interest advice")
	}
}

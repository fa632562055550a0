package advisor

import "testing"

func TestDefaultCatalogValid(t *testing.T) {
	if err := DefaultCatalog().Validate(); err != nil {
		t.Fatalf("default catalog invalid: %v", err)
	}
}

func TestValidateRejectsGroupWithoutTriggers(t *testing.T) {
	c := &Catalog{
		GenericPool: []string{"ok"},
		Categories: []Category{
			{ID: "x", Priority: 1.0, Groups: []PatternGroup{
				{Name: "empty", Responses: []string{"r"}},
			}},
		},
	}
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for group without patterns or keywords")
	}
}

func TestValidateRejectsGroupWithoutResponses(t *testing.T) {
	c := &Catalog{
		GenericPool: []string{"ok"},
		Categories: []Category{
			{ID: "x", Priority: 1.0, Groups: []PatternGroup{
				{Name: "silent", Keywords: []string{"kw"}},
			}},
		},
	}
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for group without responses")
	}
}

func TestValidateRejectsEmptyGenericPool(t *testing.T) {
	c := &Catalog{
		Categories: []Category{
			{ID: "x", Priority: 1.0, Groups: []PatternGroup{
				{Name: "g", Keywords: []string{"kw"}, Responses: []string{"r"}},
			}},
		},
	}
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for empty generic pool")
	}
}

func TestValidateRejectsWeightForUnknownKeyword(t *testing.T) {
	c := &Catalog{
		GenericPool: []string{"ok"},
		Categories: []Category{
			{ID: "x", Priority: 1.0, Groups: []PatternGroup{
				{
					Name:      "g",
					Keywords:  []string{"kw"},
					Weights:   map[string]float64{"other": 2.0},
					Responses: []string{"r"},
				},
			}},
		},
	}
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for weight on unknown keyword")
	}
}

func TestValidateRejectsSlotWithoutPatternReference(t *testing.T) {
	c := &Catalog{
		GenericPool: []string{"ok"},
		Categories: []Category{
			{ID: "x", Priority: 1.0, Groups: []PatternGroup{
				{
					Name:      "g",
					Patterns:  []string{"plain pattern"},
					Slot:      &Slot{Name: "subject", Values: []string{"toán"}},
					Responses: []string{"r"},
				},
			}},
		},
	}
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for slot never referenced by a pattern")
	}
}

package advisor

import (
	"fmt"
	"strings"

	"github.com/ai4life/career-advisor-go/internal/util"
	"github.com/ai4life/career-advisor-go/pkg/errors"
)

// Slot is a named placeholder in a pattern template bound to an
// enumerated set of fill values.
type Slot struct {
	Name   string
	Values []string
}

// PatternGroup bundles trigger keywords and the responses they unlock.
// Groups with Patterns participate in template matching; groups with
// Keywords participate in contextual analysis. A group may do both.
type PatternGroup struct {
	Name     string
	Patterns []string
	Keywords []string
	Weights  map[string]float64
	Slot     *Slot
	// Responses is the default pool. SlotResponses overrides it per
	// slot value when the group carries a Slot.
	Responses     []string
	SlotResponses map[string][]string
}

// Category groups PatternGroups under one priority multiplier.
type Category struct {
	ID       string
	Priority float64
	Groups   []PatternGroup
}

// Catalog is the static rule table both matching passes run against.
// Loaded once at startup and read-only afterwards.
type Catalog struct {
	Categories   []Category
	ContextWords []string
	// GenericPool backs the terminal fallback when nothing else fires.
	GenericPool []string
}

// Validate fails fast on configuration defects so a broken table never
// reaches request time.
func (c *Catalog) Validate() error {
	if len(c.Categories) == 0 {
		return errors.NewCatalogError("catalog has no categories", "")
	}
	if len(c.GenericPool) == 0 {
		return errors.NewCatalogError("catalog has no generic fallback pool", "")
	}
	seen := make(map[string]bool, len(c.Categories))
	for _, cat := range c.Categories {
		if cat.ID == "" {
			return errors.NewCatalogError("category with empty id", "")
		}
		if seen[cat.ID] {
			return errors.NewCatalogError(fmt.Sprintf("duplicate category %q", cat.ID), cat.ID)
		}
		seen[cat.ID] = true
		if cat.Priority <= 0 {
			return errors.NewCatalogError(fmt.Sprintf("category %q has non-positive priority", cat.ID), cat.ID)
		}
		if len(cat.Groups) == 0 {
			return errors.NewCatalogError(fmt.Sprintf("category %q has no pattern groups", cat.ID), cat.ID)
		}
		for _, g := range cat.Groups {
			if err := validateGroup(cat.ID, g); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateGroup(catID string, g PatternGroup) error {
	where := fmt.Sprintf("category %q group %q", catID, g.Name)
	if len(g.Patterns) == 0 && len(g.Keywords) == 0 {
		return errors.NewCatalogError(where+": neither patterns nor keywords", catID)
	}
	if len(g.Responses) == 0 && len(g.SlotResponses) == 0 {
		return errors.NewCatalogError(where+": no responses", catID)
	}
	for kw := range g.Weights {
		if !util.Contains(g.Keywords, kw) {
			return errors.NewCatalogError(where+": weight for unknown keyword "+kw, catID)
		}
	}
	if g.Slot != nil {
		if len(g.Slot.Values) == 0 {
			return errors.NewCatalogError(where+": slot with no values", catID)
		}
		placeholder := "{" + g.Slot.Name + "}"
		found := false
		for _, p := range g.Patterns {
			if strings.Contains(p, placeholder) {
				found = true
				break
			}
		}
		if !found {
			return errors.NewCatalogError(where+": no pattern references slot "+g.Slot.Name, catID)
		}
		for v, pool := range g.SlotResponses {
			if len(pool) == 0 {
				return errors.NewCatalogError(where+": empty response pool for slot value "+v, catID)
			}
		}
	} else if len(g.SlotResponses) > 0 {
		return errors.NewCatalogError(where+": slot responses without a slot", catID)
	}
	return nil
}

package domain

import "strings"

// Category is a topical classification of a question. The canonical labels
// are the traditional-text headings used as keys in the knowledge table.
type Category string

const (
	CategoryCareer        Category = "事業財運"
	CategoryRelationships Category = "感情婚姻"
	CategoryHealth        Category = "健康疾病"
	CategoryLostItems     Category = "失物方位"
	CategoryTravel        Category = "出行吉凶"
	CategoryContracts     Category = "簽約談判"
	CategoryLitigation    Category = "官司訴訟"
	CategoryHousehold     Category = "家宅平安"

	// CategoryCore is the fallback label: no specific topic matched.
	CategoryCore Category = "核心特質"
)

// categoryOrder is the declared order; classifiers break ties by it.
var categoryOrder = [...]Category{
	CategoryCareer,
	CategoryRelationships,
	CategoryHealth,
	CategoryLostItems,
	CategoryTravel,
	CategoryContracts,
	CategoryLitigation,
	CategoryHousehold,
}

var categorySlugs = map[Category]string{
	CategoryCareer:        "career",
	CategoryRelationships: "relationships",
	CategoryHealth:        "health",
	CategoryLostItems:     "lost_items",
	CategoryTravel:        "travel",
	CategoryContracts:     "contracts",
	CategoryLitigation:    "litigation",
	CategoryHousehold:     "household",
	CategoryCore:          "core",
}

// Categories returns the eight topical categories in declared order. The
// fallback label is not included.
func Categories() []Category {
	out := categoryOrder
	return out[:]
}

// Slug is an ASCII identifier for the category.
func (c Category) Slug() string { return categorySlugs[c] }

// Valid reports whether c is one of the eight categories or the fallback.
func (c Category) Valid() bool {
	_, ok := categorySlugs[c]
	return ok
}

// ParseCategory validates a raw label against the closed category set. It
// accepts the canonical label or its slug. Anything else is rejected so that
// an out-of-enumeration value never reaches later stages.
func ParseCategory(raw string) (Category, bool) {
	raw = strings.TrimSpace(raw)
	if c := Category(raw); c.Valid() {
		return c, true
	}
	for c, slug := range categorySlugs {
		if strings.EqualFold(slug, raw) {
			return c, true
		}
	}
	return "", false
}

// KnowledgeEntry is the traditional-text reference for one position. It is
// built once by the knowledge store and only read afterwards.
type KnowledgeEntry struct {
	Position  string
	Element   string
	Fortune   string
	Direction string
	core      string
	texts     map[Category]string
}

// NewKnowledgeEntry builds an entry. texts is copied.
func NewKnowledgeEntry(position, element, fortune, direction, core string, texts map[Category]string) KnowledgeEntry {
	cp := make(map[Category]string, len(texts))
	for k, v := range texts {
		cp[k] = v
	}
	return KnowledgeEntry{
		Position:  position,
		Element:   element,
		Fortune:   fortune,
		Direction: direction,
		core:      core,
		texts:     cp,
	}
}

// Core is the core-characteristics text, the fallback for every category.
func (e KnowledgeEntry) Core() string { return e.core }

// Text returns the category-specific text. CategoryCore resolves to Core.
func (e KnowledgeEntry) Text(c Category) (string, bool) {
	if c == CategoryCore {
		return e.core, e.core != ""
	}
	t, ok := e.texts[c]
	return t, ok && t != ""
}

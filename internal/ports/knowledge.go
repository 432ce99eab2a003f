package ports

import "github.com/randomtoy/liuren-go/internal/domain"

// CategoryKeywords pairs a category with its matching keywords.
type CategoryKeywords struct {
	Category domain.Category
	Keywords []string
}

// KnowledgeBase provides the static traditional-text tables.
type KnowledgeBase interface {
	// Entry looks up the reference text by canonical position name.
	Entry(canonical string) (domain.KnowledgeEntry, bool)
	// Keywords returns the keyword table in declared category order.
	Keywords() []CategoryKeywords
}

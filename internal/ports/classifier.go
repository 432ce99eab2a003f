package ports

import (
	"context"

	"github.com/randomtoy/liuren-go/internal/domain"
)

// Classifier assigns a question to a category. It never fails: anything it
// cannot place resolves to domain.CategoryCore.
type Classifier interface {
	Classify(ctx context.Context, question string) domain.Category
}

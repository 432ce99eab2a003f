// Package classify assigns a free-text question to one of the fixed
// categories, either by keyword matching or by asking a language model.
package classify

import (
	"context"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/randomtoy/liuren-go/internal/domain"
	"github.com/randomtoy/liuren-go/internal/ports"
)

// Keyword classifies by substring match against the keyword table. The
// first category in table order with any matching keyword wins.
type Keyword struct {
	table []ports.CategoryKeywords
}

// NewKeyword normalizes the table once; the classifier holds no other state.
func NewKeyword(table []ports.CategoryKeywords) *Keyword {
	k := &Keyword{table: make([]ports.CategoryKeywords, 0, len(table))}
	for _, ck := range table {
		kws := make([]string, 0, len(ck.Keywords))
		for _, kw := range ck.Keywords {
			if kw = Normalize(kw); kw != "" {
				kws = append(kws, kw)
			}
		}
		k.table = append(k.table, ports.CategoryKeywords{Category: ck.Category, Keywords: kws})
	}
	return k
}

func (k *Keyword) Classify(_ context.Context, question string) domain.Category {
	q := Normalize(question)
	if q == "" {
		return domain.CategoryCore
	}
	for _, ck := range k.table {
		for _, kw := range ck.Keywords {
			if strings.Contains(q, kw) {
				return ck.Category
			}
		}
	}
	return domain.CategoryCore
}

// Normalize folds width and case so that "ＪＯＢ" and "job" compare equal.
func Normalize(s string) string {
	return strings.TrimSpace(cases.Fold().String(norm.NFKC.String(s)))
}

package classify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"github.com/randomtoy/liuren-go/internal/domain"
	"github.com/randomtoy/liuren-go/internal/ports"
)

const (
	exampleKeywordsPerLanguage = 4
	classifyMaxTokens          = 20
)

// Delegated asks a language model for the category. Transport errors and
// labels outside the closed set resolve to domain.CategoryCore.
type Delegated struct {
	gen    ports.Generator
	system string
	table  string
	logger *slog.Logger
}

func NewDelegated(gen ports.Generator, table []ports.CategoryKeywords, logger *slog.Logger) *Delegated {
	return &Delegated{
		gen:    gen,
		system: classifySystemPrompt,
		table:  categoryList(table),
		logger: logger,
	}
}

func (d *Delegated) Classify(ctx context.Context, question string) domain.Category {
	if strings.TrimSpace(question) == "" {
		return domain.CategoryCore
	}

	res, err := d.gen.Generate(ctx, ports.GenerateRequest{
		System:      d.system,
		User:        d.userPrompt(question),
		Temperature: 0,
		MaxTokens:   classifyMaxTokens,
	})
	if err != nil {
		d.logger.WarnContext(ctx, "classification call failed, using core characteristics", "error", err)
		return domain.CategoryCore
	}

	c, ok := ParseLabel(res.Text)
	if !ok {
		d.logger.WarnContext(ctx, "classification label rejected", "raw", res.Text)
		return domain.CategoryCore
	}
	return c
}

// ParseLabel trims a model answer down to a bare label and validates it.
func ParseLabel(raw string) (domain.Category, bool) {
	line, _, _ := strings.Cut(strings.TrimSpace(raw), "\n")
	label := strings.TrimFunc(line, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsSymbol(r)
	})
	return domain.ParseCategory(label)
}

const classifySystemPrompt = `You classify questions for a Xiao Liu Ren divination service.
Answer with exactly one category label from the list you are given, copied verbatim, or with the fallback label if none fits.
Do not explain. Do not add punctuation or any other text.`

func (d *Delegated) userPrompt(question string) string {
	var b strings.Builder
	b.WriteString("Categories (label: example keywords):\n")
	b.WriteString(d.table)
	fmt.Fprintf(&b, "Fallback label: %s\n\n", domain.CategoryCore)
	fmt.Fprintf(&b, "Question: %s\n\nLabel:", question)
	return b.String()
}

func categoryList(table []ports.CategoryKeywords) string {
	var b strings.Builder
	for _, ck := range table {
		fmt.Fprintf(&b, "- %s: %s\n", ck.Category, strings.Join(examples(ck.Keywords), ", "))
	}
	return b.String()
}

// examples picks a few keywords of each language so the model sees both.
func examples(keywords []string) []string {
	var zh, en []string
	for _, kw := range keywords {
		if domain.DetectLanguage(kw) == domain.LangZH {
			if len(zh) < exampleKeywordsPerLanguage {
				zh = append(zh, kw)
			}
		} else if len(en) < exampleKeywordsPerLanguage {
			en = append(en, kw)
		}
	}
	return append(zh, en...)
}

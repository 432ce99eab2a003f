package http

import (
	"github.com/labstack/echo/v4"
	"golang.org/x/text/language"

	"github.com/randomtoy/liuren-go/internal/domain"
)

// The first tag is the default when nothing matches.
var languageMatcher = language.NewMatcher([]language.Tag{
	language.Chinese,
	language.TraditionalChinese,
	language.SimplifiedChinese,
	language.English,
})

// resolveLanguage picks the display language: an explicit lang value, then
// the Accept-Language header, then the script of the question.
func resolveLanguage(c echo.Context, explicit, question string) domain.Language {
	if lang, ok := domain.ParseLanguage(explicit); ok {
		return lang
	}
	if lang, ok := acceptLanguage(c.Request().Header.Get("Accept-Language")); ok {
		return lang
	}
	if question != "" {
		return domain.DetectLanguage(question)
	}
	return domain.LangZH
}

func acceptLanguage(header string) (domain.Language, bool) {
	if header == "" {
		return "", false
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return "", false
	}
	tag, _, conf := languageMatcher.Match(tags...)
	if conf == language.No {
		return "", false
	}
	base, _ := tag.Base()
	return domain.ParseLanguage(base.String())
}

package render

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/randomtoy/liuren-go/internal/app"
	"github.com/randomtoy/liuren-go/internal/domain"
)

func placement(lang domain.Language) app.Placement {
	return app.Placement{
		Lunar:    domain.LunarDate{Year: 2023, Month: 2, Day: 1, Leap: true},
		Hour:     domain.TraditionalHours()[0],
		Position: domain.CalculatePosition(2, 1, 1, lang),
	}
}

func TestPlacement_Plain(t *testing.T) {
	got := New(true).Placement(placement(domain.LangEN))

	lines := strings.Split(got, "\n")
	assert.Equal(t, "2. Delay (留連)", lines[0])
	assert.Equal(t, strings.Repeat("=", 15), lines[1], "CJK runes are two cells wide")
	assert.Contains(t, got, "Lunar: 2023/leap 2/1")
	assert.Contains(t, got, "Hour: 子時 (23:00-01:00)")
	assert.Contains(t, got, "Element: Water   Direction: North   Fortune: Inauspicious")
	assert.NotContains(t, got, "\x1b[")
}

func TestPlacement_Chinese(t *testing.T) {
	got := New(true).Placement(placement(domain.LangZH))

	assert.True(t, strings.HasPrefix(got, "2. 留連\n"), got)
	assert.Contains(t, got, "農曆: 2023/閏2/1")
	assert.Contains(t, got, "五行: 水")
}

func TestOutcome_Styled(t *testing.T) {
	o := app.Outcome{
		Placement:      placement(domain.LangEN),
		Category:       domain.CategoryCareer,
		Interpretation: "Things move slowly; be patient.",
	}
	got := New(false).Outcome(o)

	assert.Contains(t, got, "╭")
	assert.Contains(t, got, "Delay")
	assert.Contains(t, got, "事業財運")
	assert.Contains(t, got, "patient")
}

func TestOutcome_GenerationError(t *testing.T) {
	o := app.Outcome{
		Placement:      placement(domain.LangZH),
		Category:       domain.CategoryCore,
		Interpretation: domain.FallbackInterpretation(domain.LangZH),
		Err:            fmt.Errorf("gemini: %w", domain.ErrRateLimited),
	}
	got := New(true).Outcome(o)

	assert.Contains(t, got, domain.UserMessage(domain.ErrRateLimited, domain.LangZH))
	assert.Contains(t, got, domain.FallbackInterpretation(domain.LangZH))
}

func TestHours(t *testing.T) {
	got := New(true).Hours(domain.TraditionalHours(), domain.LangZH)

	lines := strings.Split(strings.TrimSpace(got), "\n")
	assert.Len(t, lines, 13)
	assert.Equal(t, "時辰", lines[0])
	assert.Equal(t, " 1  子時 (23:00-01:00)", lines[1])
	assert.Equal(t, "12  亥時 (21:00-23:00)", lines[12])
}

func TestHours_English(t *testing.T) {
	got := New(true).Hours(domain.TraditionalHours(), domain.LangEN)

	lines := strings.Split(strings.TrimSpace(got), "\n")
	assert.Equal(t, "Traditional hours", lines[0])
	assert.Len(t, lines, 13)
}

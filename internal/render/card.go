// Package render formats divinations for the terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/randomtoy/liuren-go/internal/app"
	"github.com/randomtoy/liuren-go/internal/domain"
)

var (
	colorDim    = lipgloss.Color("#928374")
	colorFg     = lipgloss.Color("#ebdbb2")
	colorHeader = lipgloss.Color("#fe8019")
	colorRed    = lipgloss.Color("#fb4934")
)

// Palette for the position color tags.
var positionColors = map[domain.Color]lipgloss.Color{
	domain.ColorJade:     lipgloss.Color("#8ec07c"),
	domain.ColorSlate:    lipgloss.Color("#83a598"),
	domain.ColorCinnabar: lipgloss.Color("#fb4934"),
	domain.ColorGray:     lipgloss.Color("#a89984"),
	domain.ColorGold:     lipgloss.Color("#fabd2f"),
	domain.ColorAmber:    lipgloss.Color("#d79921"),
}

var (
	styleDim    = lipgloss.NewStyle().Foreground(colorDim)
	styleHeader = lipgloss.NewStyle().Foreground(colorHeader).Bold(true)
	styleBold   = lipgloss.NewStyle().Foreground(colorFg).Bold(true)
	styleError  = lipgloss.NewStyle().Foreground(colorRed)
)

// Renderer draws cards. A plain renderer emits unstyled text for pipes and
// files.
type Renderer struct {
	plain bool
	width int
	md    *glamour.TermRenderer
}

func New(plain bool) *Renderer {
	r := &Renderer{plain: plain, width: 60}
	if !plain {
		// Without markdown support interpretations fall back to plain wrapping.
		r.md, _ = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(r.width-6),
		)
	}
	return r
}

var labels = map[domain.Language]map[string]string{
	domain.LangZH: {
		"lunar": "農曆", "hour": "時辰", "element": "五行", "direction": "方位",
		"fortune": "吉凶", "category": "類別", "leap": "閏", "hours": "時辰",
	},
	domain.LangEN: {
		"lunar": "Lunar", "hour": "Hour", "element": "Element", "direction": "Direction",
		"fortune": "Fortune", "category": "Category", "leap": "leap ", "hours": "Traditional hours",
	},
}

func label(lang domain.Language, key string) string {
	if l, ok := labels[lang]; ok {
		return l[key]
	}
	return labels[domain.LangZH][key]
}

// Placement renders the position card without an interpretation.
func (r *Renderer) Placement(p app.Placement) string {
	return r.box(p.Position, r.placementBody(p))
}

// Outcome renders the position card followed by the interpretation. A failed
// generation shows the localized error above the fallback text.
func (r *Renderer) Outcome(o app.Outcome) string {
	lang := o.Position.Lang
	var b strings.Builder
	b.WriteString(r.placementBody(o.Placement))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s: %s\n\n", r.dim(label(lang, "category")), o.Category)
	if o.Err != nil {
		b.WriteString(r.style(styleError, domain.UserMessage(o.Err, lang)))
		b.WriteString("\n")
	}
	b.WriteString(r.markdown(o.Interpretation))
	return r.box(o.Position, b.String())
}

func (r *Renderer) placementBody(p app.Placement) string {
	lang := p.Position.Lang
	leap := ""
	if p.Lunar.Leap {
		leap = label(lang, "leap")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d/%s%d/%d\n", r.dim(label(lang, "lunar")), p.Lunar.Year, leap, p.Lunar.Month, p.Lunar.Day)
	fmt.Fprintf(&b, "%s: %s\n", r.dim(label(lang, "hour")), p.Hour.Label())
	fmt.Fprintf(&b, "%s: %s   %s: %s   %s: %s\n\n",
		r.dim(label(lang, "element")), p.Position.Element.Label(lang),
		r.dim(label(lang, "direction")), p.Position.Direction.Label(lang),
		r.dim(label(lang, "fortune")), p.Position.Fortune.Label(lang),
	)
	b.WriteString(r.wrap(p.Position.Description))
	return b.String()
}

// Hours renders the traditional hour table with a header in lang.
func (r *Renderer) Hours(hours []domain.TraditionalHour, lang domain.Language) string {
	var b strings.Builder
	b.WriteString(r.style(styleHeader, label(lang, "hours")))
	b.WriteString("\n")
	for _, h := range hours {
		fmt.Fprintf(&b, "%s  %s\n", r.dim(fmt.Sprintf("%2d", h.ID)), h.Label())
	}
	return b.String()
}

func (r *Renderer) box(p domain.Position, body string) string {
	title := fmt.Sprintf("%d. %s", p.DisplayPosition, p.Name)
	if p.Name != p.Canonical {
		title += " (" + p.Canonical + ")"
	}
	if r.plain {
		return title + "\n" + strings.Repeat("=", lipgloss.Width(title)) + "\n" + body + "\n"
	}

	accent, ok := positionColors[p.Color]
	if !ok {
		accent = colorDim
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Width(r.width).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1).
		Render(styleBold.Foreground(accent).Render(title) + "\n\n" + body)
}

func (r *Renderer) wrap(text string) string {
	if r.plain {
		return text
	}
	return lipgloss.NewStyle().Width(r.width - 6).Render(text)
}

// markdown renders model output, which often carries emphasis and lists.
func (r *Renderer) markdown(text string) string {
	if r.md != nil {
		if out, err := r.md.Render(text); err == nil {
			return strings.Trim(out, "\n")
		}
	}
	return r.wrap(text)
}

func (r *Renderer) dim(s string) string {
	return r.style(styleDim, s)
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if r.plain {
		return text
	}
	return s.Render(text)
}

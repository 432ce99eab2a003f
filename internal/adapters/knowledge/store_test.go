package knowledge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randomtoy/liuren-go/internal/adapters/knowledge"
	"github.com/randomtoy/liuren-go/internal/domain"
)

func TestLoad_EmbeddedTables(t *testing.T) {
	s, err := knowledge.Load()
	require.NoError(t, err)

	for _, p := range domain.Positions(domain.LangZH) {
		e, ok := s.Entry(p.Canonical)
		require.True(t, ok, "missing entry for %s", p.Canonical)
		assert.NotEmpty(t, e.Core(), "%s core", p.Canonical)
		for _, c := range domain.Categories() {
			text, ok := e.Text(c)
			assert.True(t, ok, "%s/%s", p.Canonical, c)
			assert.NotEmpty(t, text, "%s/%s", p.Canonical, c)
		}
	}

	e, _ := s.Entry("留連")
	assert.Equal(t, "水", e.Element)
	assert.Equal(t, "北方", e.Direction)
	assert.Equal(t, "拖延、糾纏、退緩阻滯", e.Core())

	kw := s.Keywords()
	require.Len(t, kw, 8)
	for i, c := range domain.Categories() {
		assert.Equal(t, c, kw[i].Category)
	}
	assert.Contains(t, kw[0].Keywords, "工作")
	assert.Contains(t, kw[7].Keywords, "feng shui")
}

func TestKeywords_ReturnsCopy(t *testing.T) {
	s, err := knowledge.Load()
	require.NoError(t, err)

	kw := s.Keywords()
	kw[0].Keywords[0] = "mutated"
	assert.NotEqual(t, "mutated", s.Keywords()[0].Keywords[0])
}

func TestEntry_Unknown(t *testing.T) {
	s, err := knowledge.Load()
	require.NoError(t, err)

	_, ok := s.Entry("Great Peace")
	assert.False(t, ok, "lookup is by canonical name only")
}

const validKeywords = `
- {category: 事業財運, keywords: [工作]}
- {category: 感情婚姻, keywords: [感情]}
- {category: 健康疾病, keywords: [健康]}
- {category: 失物方位, keywords: [失物]}
- {category: 出行吉凶, keywords: [出行]}
- {category: 簽約談判, keywords: [簽約]}
- {category: 官司訴訟, keywords: [官司]}
- {category: 家宅平安, keywords: [家宅]}
`

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name      string
		knowledge string
		keywords  string
	}{
		{
			name:      "empty core",
			knowledge: `- {position: 大安, core: ""}`,
			keywords:  validKeywords,
		},
		{
			name:      "unknown position",
			knowledge: `- {position: 大凶, core: x}`,
			keywords:  validKeywords,
		},
		{
			name:      "unknown category",
			knowledge: `- {position: 大安, core: x, categories: {學業: y}}`,
			keywords:  validKeywords,
		},
		{
			name:      "missing positions",
			knowledge: `- {position: 大安, core: x}`,
			keywords:  validKeywords,
		},
		{
			name:      "malformed yaml",
			knowledge: `- [`,
			keywords:  validKeywords,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := knowledge.Parse([]byte(tt.knowledge), []byte(tt.keywords))
			assert.Error(t, err)
		})
	}
}

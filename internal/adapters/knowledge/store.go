package knowledge

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/randomtoy/liuren-go/internal/domain"
	"github.com/randomtoy/liuren-go/internal/ports"
)

//go:embed data/*.yaml
var dataFS embed.FS

const (
	knowledgeFile = "data/knowledge.yaml"
	keywordsFile  = "data/keywords.yaml"
)

type rawEntry struct {
	Position   string            `yaml:"position"`
	Element    string            `yaml:"element"`
	Fortune    string            `yaml:"fortune"`
	Direction  string            `yaml:"direction"`
	Core       string            `yaml:"core"`
	Categories map[string]string `yaml:"categories"`
}

type rawKeywords struct {
	Category string   `yaml:"category"`
	Keywords []string `yaml:"keywords"`
}

// EmbeddedStore serves the knowledge and keyword tables compiled into the
// binary. It is read-only after Load returns.
type EmbeddedStore struct {
	entries  map[string]domain.KnowledgeEntry
	keywords []ports.CategoryKeywords
}

// Load parses and validates the embedded tables.
func Load() (*EmbeddedStore, error) {
	knowledgeRaw, err := dataFS.ReadFile(knowledgeFile)
	if err != nil {
		return nil, fmt.Errorf("read embedded knowledge: %w", err)
	}
	keywordsRaw, err := dataFS.ReadFile(keywordsFile)
	if err != nil {
		return nil, fmt.Errorf("read embedded keywords: %w", err)
	}
	return Parse(knowledgeRaw, keywordsRaw)
}

// Parse builds a store from YAML documents in the embedded format.
func Parse(knowledgeYAML, keywordsYAML []byte) (*EmbeddedStore, error) {
	var rawEntries []rawEntry
	if err := yaml.Unmarshal(knowledgeYAML, &rawEntries); err != nil {
		return nil, fmt.Errorf("parse knowledge: %w", err)
	}
	var rawKW []rawKeywords
	if err := yaml.Unmarshal(keywordsYAML, &rawKW); err != nil {
		return nil, fmt.Errorf("parse keywords: %w", err)
	}

	s := &EmbeddedStore{entries: make(map[string]domain.KnowledgeEntry, len(rawEntries))}

	for _, re := range rawEntries {
		if _, ok := domain.PositionByName(re.Position); !ok {
			return nil, fmt.Errorf("knowledge entry %q: %w", re.Position, domain.ErrUnknownPosition)
		}
		if _, dup := s.entries[re.Position]; dup {
			return nil, fmt.Errorf("knowledge entry %q: duplicate", re.Position)
		}
		if re.Core == "" {
			return nil, fmt.Errorf("knowledge entry %q: empty core characteristics", re.Position)
		}
		texts := make(map[domain.Category]string, len(re.Categories))
		for label, text := range re.Categories {
			c := domain.Category(label)
			if !c.Valid() || c == domain.CategoryCore {
				return nil, fmt.Errorf("knowledge entry %q: unknown category %q", re.Position, label)
			}
			texts[c] = text
		}
		s.entries[re.Position] = domain.NewKnowledgeEntry(re.Position, re.Element, re.Fortune, re.Direction, re.Core, texts)
	}
	for _, p := range domain.Positions(domain.LangZH) {
		if _, ok := s.entries[p.Canonical]; !ok {
			return nil, fmt.Errorf("knowledge entry %q: missing", p.Canonical)
		}
	}

	declared := domain.Categories()
	if len(rawKW) != len(declared) {
		return nil, fmt.Errorf("keyword table has %d categories, want %d", len(rawKW), len(declared))
	}
	for i, rk := range rawKW {
		if domain.Category(rk.Category) != declared[i] {
			return nil, fmt.Errorf("keyword table position %d: got %q, want %q", i, rk.Category, declared[i])
		}
		if len(rk.Keywords) == 0 {
			return nil, fmt.Errorf("keyword table %q: no keywords", rk.Category)
		}
		s.keywords = append(s.keywords, ports.CategoryKeywords{
			Category: declared[i],
			Keywords: append([]string(nil), rk.Keywords...),
		})
	}

	return s, nil
}

func (s *EmbeddedStore) Entry(canonical string) (domain.KnowledgeEntry, bool) {
	e, ok := s.entries[canonical]
	return e, ok
}

func (s *EmbeddedStore) Keywords() []ports.CategoryKeywords {
	out := make([]ports.CategoryKeywords, len(s.keywords))
	for i, ck := range s.keywords {
		out[i] = ports.CategoryKeywords{
			Category: ck.Category,
			Keywords: append([]string(nil), ck.Keywords...),
		}
	}
	return out
}

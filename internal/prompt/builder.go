// Package prompt assembles the system and user instructions sent to the
// interpretation generator.
package prompt

import (
	"fmt"
	"strings"

	"github.com/randomtoy/liuren-go/internal/domain"
)

// Output length ceilings handed to the generator.
const (
	MaxWords      = 200
	MaxCharacters = 300
)

const unknownAttribute = "未知"

// Prompt is the instruction pair, kept verbatim for display.
type Prompt struct {
	System string `json:"system"`
	User   string `json:"user"`
}

// Input describes one interpretation request.
type Input struct {
	// Name is the canonical position name.
	Name      string
	Fortune   string
	Element   string
	Direction string
	Entry     domain.KnowledgeEntry
	Category  domain.Category
	Question  string
}

// Result is the prompt plus the reference text it was built from.
type Result struct {
	Prompt       Prompt
	Category     domain.Category
	CategoryText string
	CoreText     string
}

// Build resolves the category text and renders both instructions. A fallback
// category, or one the entry has no text for, resolves to the core
// characteristics under the fallback label.
func Build(in Input) Result {
	category, text := resolve(in.Entry, in.Category)
	core := in.Entry.Core()
	return Result{
		Prompt: Prompt{
			System: systemPrompt,
			User:   userPrompt(in, text, core),
		},
		Category:     category,
		CategoryText: text,
		CoreText:     core,
	}
}

func resolve(entry domain.KnowledgeEntry, c domain.Category) (domain.Category, string) {
	if c != domain.CategoryCore {
		if text, ok := entry.Text(c); ok {
			return c, text
		}
	}
	return domain.CategoryCore, entry.Core()
}

const systemPrompt = "You are a wise 50-year-old master of traditional Chinese divination, specializing in Xiao Liu Ren. " +
	"Your interpretations are based on traditional texts and wisdom. " +
	"IMPORTANT: Never repeat the user's question and never mention the category classification in your response. " +
	"Only say what the traditional text supports; do not invent content. " +
	"Always use modern, everyday language that regular people use in conversations - avoid overly formal or archaic expressions. " +
	"Be warm and friendly like a wise friend. Jump directly into the interpretation."

func userPrompt(in Input, categoryText, core string) string {
	var b strings.Builder
	b.WriteString("You are a master of Xiao Liu Ren divination. Based on the following information, provide a professional and wise interpretation.\n\n")

	fmt.Fprintf(&b, "Divination Result: %s\n", in.Name)
	fmt.Fprintf(&b, "Fortune Level: %s\n", orUnknown(in.Fortune))
	fmt.Fprintf(&b, "Five Elements: %s\n", orUnknown(in.Element))
	fmt.Fprintf(&b, "Direction: %s\n\n", orUnknown(in.Direction))

	fmt.Fprintf(&b, "User's Question (for context only, DO NOT repeat in response): %s\n\n", in.Question)

	fmt.Fprintf(&b, "Category-Specific Interpretation from Traditional Text:\n%s\n\n", categoryText)
	fmt.Fprintf(&b, "Additional Reference - Core Characteristics:\n%s\n\n", core)

	b.WriteString("Please provide:\n")
	fmt.Fprintf(&b, "1. Explain the meaning of this hexagram (%s) and its implications\n", in.Name)
	b.WriteString("2. Based on the traditional interpretation above, give specific advice\n")
	b.WriteString("3. Key points to pay attention to and timing considerations\n\n")

	b.WriteString("CRITICAL REQUIREMENTS:\n")
	b.WriteString("- DO NOT repeat or mention the user's question in your response\n")
	b.WriteString("- DO NOT mention or state what category the question belongs to\n")
	b.WriteString("- You MUST respond in the SAME LANGUAGE as the question above. If the question is in English, respond in English. If in Japanese, respond in Japanese. If in Chinese, respond in Chinese.\n")
	b.WriteString("- Your interpretation MUST be based on the traditional text provided above. Do not make up information.\n")
	b.WriteString("- Use MODERN, EVERYDAY LANGUAGE that regular people use in daily conversations. Avoid overly formal or archaic expressions.\n")
	fmt.Fprintf(&b, "- For responses in alphabetic scripts such as English: keep it to %d words maximum.\n", MaxWords)
	fmt.Fprintf(&b, "- For responses in Chinese or Japanese: keep it to %d characters maximum.\n", MaxCharacters)
	b.WriteString("- Your tone should be warm, friendly, and conversational, like a wise friend giving practical advice.\n")
	b.WriteString("- Jump directly into the interpretation without preamble.")
	return b.String()
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return unknownAttribute
	}
	return s
}

package ports

import "context"

// GenerateRequest is a single chat-completion call: one system message and
// one user message.
type GenerateRequest struct {
	System      string
	User        string
	Temperature float64
	MaxTokens   int
}

// GenerateResult is the text of the first candidate completion.
type GenerateResult struct {
	Text  string
	Model string
}

// Generator calls a language-model backend. Implementations make exactly one
// attempt and report failures with the domain generator errors.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (GenerateResult, error)
}

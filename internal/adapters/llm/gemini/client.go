// Package gemini implements ports.Generator on the Google Gen AI SDK.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"github.com/randomtoy/liuren-go/internal/domain"
	"github.com/randomtoy/liuren-go/internal/ports"
)

// Client generates through the Gemini API.
type Client struct {
	models *genai.Models
	model  string
	logger *slog.Logger
}

// NewClient builds a Gemini API client. baseURL is optional and only needed
// to point the SDK at a proxy or a test server.
func NewClient(ctx context.Context, httpClient *http.Client, apiKey, baseURL, model string, logger *slog.Logger) (*Client, error) {
	cfg := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	}
	if baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}
	cli, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Client{models: cli.Models, model: model, logger: logger}, nil
}

func (c *Client) Generate(ctx context.Context, in ports.GenerateRequest) (ports.GenerateResult, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(in.System, genai.RoleUser),
		Temperature:       genai.Ptr(float32(in.Temperature)),
		MaxOutputTokens:   int32(in.MaxTokens),
		ThinkingConfig:    thinkingConfig(c.model),
	}

	resp, err := c.models.GenerateContent(ctx, c.model, genai.Text(in.User), cfg)
	if err != nil {
		return ports.GenerateResult{}, c.classify(ctx, err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return ports.GenerateResult{}, fmt.Errorf("%w: no text in candidates", domain.ErrEmptyGeneration)
	}

	model := resp.ModelVersion
	if model == "" {
		model = c.model
	}
	return ports.GenerateResult{Text: text, Model: model}, nil
}

// thinkingConfig turns thinking off. Thinking tokens count against
// MaxOutputTokens, so a short budget would otherwise end before any answer
// text. Pro models cannot disable thinking and keep their default.
func thinkingConfig(model string) *genai.ThinkingConfig {
	if strings.Contains(model, "-pro") {
		return nil
	}
	return &genai.ThinkingConfig{ThinkingBudget: genai.Ptr[int32](0)}
}

func (c *Client) classify(ctx context.Context, err error) error {
	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		var apiErrPtr *genai.APIError
		if !errors.As(err, &apiErrPtr) {
			return fmt.Errorf("%w: %w", domain.ErrBackendUnavailable, err)
		}
		apiErr = *apiErrPtr
	}

	c.logger.WarnContext(ctx, "gemini returned error status",
		"model", c.model,
		"status", apiErr.Code,
		"reason", apiErr.Status,
	)
	switch apiErr.Code {
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %w", domain.ErrRateLimited, err)
	case http.StatusPaymentRequired:
		return fmt.Errorf("%w: %w", domain.ErrQuotaExceeded, err)
	default:
		return fmt.Errorf("%w: %w", domain.ErrBackendUnavailable, err)
	}
}

package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/randomtoy/liuren-go/internal/domain"
	"github.com/randomtoy/liuren-go/internal/ports"
)

// maxErrorBody bounds how much of a failed response is logged.
const maxErrorBody = 512

// Client implements ports.Generator against an OpenAI-compatible
// chat-completions endpoint (OpenRouter or an AI gateway).
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	model      string
	logger     *slog.Logger
}

func NewClient(httpClient *http.Client, apiKey, baseURL, model string, logger *slog.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		logger:     logger,
	}
}

// chatRequest / chatResponse mirror the OpenAI-compatible API shapes.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate makes a single call. Status 429 maps to domain.ErrRateLimited,
// 402 to domain.ErrQuotaExceeded, anything else unsuccessful to
// domain.ErrBackendUnavailable; a reply without content is
// domain.ErrEmptyGeneration.
func (c *Client) Generate(ctx context.Context, in ports.GenerateRequest) (ports.GenerateResult, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: in.System},
			{Role: "user", Content: in.User},
		},
		Temperature: in.Temperature,
		MaxTokens:   in.MaxTokens,
	})
	if err != nil {
		return ports.GenerateResult{}, fmt.Errorf("marshal request: %w", err)
	}

	url := c.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return ports.GenerateResult{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.GenerateResult{}, fmt.Errorf("%w: http call: %w", domain.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return ports.GenerateResult{}, fmt.Errorf("%w: read response: %w", domain.ErrBackendUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.WarnContext(ctx, "generator returned error status",
			"model", c.model,
			"status", resp.StatusCode,
			"body", truncate(string(respBody), maxErrorBody),
		)
		return ports.GenerateResult{}, statusError(resp.StatusCode)
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return ports.GenerateResult{}, fmt.Errorf("%w: decode response: %w", domain.ErrBackendUnavailable, err)
	}

	if len(chatResp.Choices) == 0 {
		return ports.GenerateResult{}, fmt.Errorf("%w: no choices in response", domain.ErrEmptyGeneration)
	}
	text := strings.TrimSpace(chatResp.Choices[0].Message.Content)
	if text == "" {
		return ports.GenerateResult{}, fmt.Errorf("%w: empty message content", domain.ErrEmptyGeneration)
	}

	model := chatResp.Model
	if model == "" {
		model = c.model
	}
	return ports.GenerateResult{Text: text, Model: model}, nil
}

func statusError(code int) error {
	switch code {
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: upstream status %d", domain.ErrRateLimited, code)
	case http.StatusPaymentRequired:
		return fmt.Errorf("%w: upstream status %d", domain.ErrQuotaExceeded, code)
	default:
		return fmt.Errorf("%w: upstream status %d", domain.ErrBackendUnavailable, code)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

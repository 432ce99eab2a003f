package gemini_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randomtoy/liuren-go/internal/adapters/llm/gemini"
	"github.com/randomtoy/liuren-go/internal/domain"
	"github.com/randomtoy/liuren-go/internal/ports"
)

func newClient(t *testing.T, h http.HandlerFunc) *gemini.Client {
	t.Helper()
	return newClientFor(t, "test-model", h)
}

func newClientFor(t *testing.T, model string, h http.HandlerFunc) *gemini.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := gemini.NewClient(context.Background(), srv.Client(), "test-key", srv.URL, model, slog.Default())
	require.NoError(t, err)
	return c
}

func request() ports.GenerateRequest {
	return ports.GenerateRequest{
		System:      "You are a master of Xiao Liu Ren.",
		User:        "Divination Result: 速喜",
		Temperature: 0.7,
		MaxTokens:   600,
	}
}

func TestClient_Generate_Success(t *testing.T) {
	var got map[string]any
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.True(t, strings.HasSuffix(r.URL.Path, "models/test-model:generateContent"), r.URL.Path)

		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{{
				"content": map[string]any{
					"role":  "model",
					"parts": []map[string]any{{"text": "速喜主快，宜速戰速決。"}},
				},
			}},
			"modelVersion": "gemini-2.5-flash",
		})
	})

	out, err := c.Generate(context.Background(), request())
	require.NoError(t, err)
	assert.Equal(t, "速喜主快，宜速戰速決。", out.Text)
	assert.Equal(t, "gemini-2.5-flash", out.Model)

	require.NotNil(t, got)
	assert.Contains(t, got, "systemInstruction")
	gen, _ := got["generationConfig"].(map[string]any)
	require.NotNil(t, gen, "generationConfig missing: %v", got)
	assert.InDelta(t, 0.7, gen["temperature"], 0.001)
	assert.EqualValues(t, 600, gen["maxOutputTokens"])

	thinking, _ := gen["thinkingConfig"].(map[string]any)
	require.NotNil(t, thinking, "thinkingConfig missing: %v", gen)
	assert.EqualValues(t, 0, thinking["thinkingBudget"])
}

func TestClient_Generate_ShortBudgetKeepsAnswer(t *testing.T) {
	var gen map[string]any
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		gen, _ = body["generationConfig"].(map[string]any)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"事業財運"}]}}]}`))
	})

	req := request()
	req.Temperature = 0
	req.MaxTokens = 20
	out, err := c.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "事業財運", out.Text)

	require.NotNil(t, gen)
	assert.EqualValues(t, 20, gen["maxOutputTokens"])
	thinking, _ := gen["thinkingConfig"].(map[string]any)
	require.NotNil(t, thinking, "thinking must be off for short budgets: %v", gen)
	assert.EqualValues(t, 0, thinking["thinkingBudget"])
}

func TestClient_Generate_ProModelKeepsDefaultThinking(t *testing.T) {
	var gen map[string]any
	c := newClientFor(t, "gemini-2.5-pro", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		gen, _ = body["generationConfig"].(map[string]any)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"ok"}]}}]}`))
	})

	_, err := c.Generate(context.Background(), request())
	require.NoError(t, err)
	require.NotNil(t, gen)
	assert.NotContains(t, gen, "thinkingConfig")
}

func TestClient_Generate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"rate-limited", 429, `{"error":{"code":429,"message":"quota","status":"RESOURCE_EXHAUSTED"}}`, domain.ErrRateLimited},
		{"payment-required", 402, `{"error":{"code":402,"message":"billing","status":"PAYMENT_REQUIRED"}}`, domain.ErrQuotaExceeded},
		{"server-error", 500, `{"error":{"code":500,"message":"boom","status":"INTERNAL"}}`, domain.ErrBackendUnavailable},
		{"plain-text", 503, `unavailable`, domain.ErrBackendUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := c.Generate(context.Background(), request())
			assert.ErrorIs(t, err, tt.want)
			assert.NotErrorIs(t, err, domain.ErrEmptyGeneration)
		})
	}
}

func TestClient_Generate_NoCandidates(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	})

	_, err := c.Generate(context.Background(), request())
	assert.ErrorIs(t, err, domain.ErrEmptyGeneration)
}

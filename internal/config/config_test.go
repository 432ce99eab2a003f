package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randomtoy/liuren-go/internal/config"
)

var keys = []string{
	"ENV_FILE", "HTTP_ADDR", "LOG_LEVEL", "LLM_PROVIDER", "LLM_MODEL",
	"LLM_TEMPERATURE", "LLM_MAX_TOKENS", "LLM_TIMEOUT", "OPENROUTER_API_KEY",
	"OPENROUTER_BASE_URL", "GEMINI_API_KEY", "GEMINI_BASE_URL", "CLASSIFIER",
	"CLASSIFIER_MODEL", "EXPOSE_PROMPT",
}

// clearEnv unsets every key for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENROUTER_API_KEY", "key")

	c, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", c.HTTPAddr)
	assert.Equal(t, slog.LevelInfo, c.LogLevel)
	assert.Equal(t, config.ProviderOpenRouter, c.LLMProvider)
	assert.Equal(t, "google/gemini-2.5-flash", c.LLMModel)
	assert.Equal(t, c.LLMModel, c.ClassifierModel)
	assert.InDelta(t, 0.7, c.LLMTemperature, 1e-9)
	assert.Equal(t, 600, c.LLMMaxTokens)
	assert.Equal(t, 30*time.Second, c.LLMTimeout)
	assert.Equal(t, config.ClassifierKeyword, c.Classifier)
	assert.False(t, c.ExposePrompt)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_PROVIDER", "Gemini")
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("LLM_TEMPERATURE", "0.2")
	t.Setenv("LLM_MAX_TOKENS", "300")
	t.Setenv("LLM_TIMEOUT", "5s")
	t.Setenv("CLASSIFIER", "llm")
	t.Setenv("CLASSIFIER_MODEL", "gemini-2.5-flash-lite")
	t.Setenv("EXPOSE_PROMPT", "true")
	t.Setenv("LOG_LEVEL", "debug")

	c, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.ProviderGemini, c.LLMProvider)
	assert.Equal(t, "gemini-2.5-flash", c.LLMModel)
	assert.Equal(t, "gemini-2.5-flash-lite", c.ClassifierModel)
	assert.InDelta(t, 0.2, c.LLMTemperature, 1e-9)
	assert.Equal(t, 300, c.LLMMaxTokens)
	assert.Equal(t, 5*time.Second, c.LLMTimeout)
	assert.Equal(t, config.ClassifierLLM, c.Classifier)
	assert.True(t, c.ExposePrompt)
	assert.Equal(t, slog.LevelDebug, c.LogLevel)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing openrouter key", map[string]string{}},
		{"missing gemini key", map[string]string{"LLM_PROVIDER": "gemini"}},
		{"unknown provider", map[string]string{"LLM_PROVIDER": "local", "OPENROUTER_API_KEY": "k"}},
		{"bad timeout", map[string]string{"OPENROUTER_API_KEY": "k", "LLM_TIMEOUT": "soon"}},
		{"temperature range", map[string]string{"OPENROUTER_API_KEY": "k", "LLM_TEMPERATURE": "3"}},
		{"max tokens", map[string]string{"OPENROUTER_API_KEY": "k", "LLM_MAX_TOKENS": "0"}},
		{"expose prompt", map[string]string{"OPENROUTER_API_KEY": "k", "EXPOSE_PROMPT": "maybe"}},
		{"log level", map[string]string{"OPENROUTER_API_KEY": "k", "LOG_LEVEL": "trace"}},
		{"classifier", map[string]string{"OPENROUTER_API_KEY": "k", "CLASSIFIER": "regex"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("OPENROUTER_API_KEY=from-file\nHTTP_ADDR=:9090\n"), 0o600))
	t.Setenv("ENV_FILE", path)
	t.Setenv("HTTP_ADDR", ":7070")

	c, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "from-file", c.OpenRouterAPIKey)
	assert.Equal(t, ":7070", c.HTTPAddr, "process environment wins over the file")
}

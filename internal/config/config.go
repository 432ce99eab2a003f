package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderOpenRouter = "openrouter"
	ProviderGemini     = "gemini"

	ClassifierKeyword = "keyword"
	ClassifierLLM     = "llm"
)

var defaultModels = map[string]string{
	ProviderOpenRouter: "google/gemini-2.5-flash",
	ProviderGemini:     "gemini-2.5-flash",
}

type Config struct {
	HTTPAddr          string
	LogLevel          slog.Level
	LLMProvider       string
	LLMModel          string
	LLMTemperature    float64
	LLMMaxTokens      int
	LLMTimeout        time.Duration
	OpenRouterAPIKey  string
	OpenRouterBaseURL string
	GeminiAPIKey      string
	GeminiBaseURL     string
	Classifier        string
	ClassifierModel   string
	ExposePrompt      bool
}

// Load reads the environment, after merging an optional .env file (ENV_FILE
// overrides its path). Variables already set take precedence over the file.
func Load() (Config, error) {
	if err := godotenv.Load(envOr("ENV_FILE", ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	c := Config{
		HTTPAddr:          envOr("HTTP_ADDR", ":8080"),
		LLMProvider:       strings.ToLower(envOr("LLM_PROVIDER", ProviderOpenRouter)),
		OpenRouterAPIKey:  os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterBaseURL: envOr("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		GeminiBaseURL:     os.Getenv("GEMINI_BASE_URL"),
		Classifier:        strings.ToLower(envOr("CLASSIFIER", ClassifierKeyword)),
		LLMTimeout:        30 * time.Second,
		LLMTemperature:    0.7,
		LLMMaxTokens:      600,
	}

	def, ok := defaultModels[c.LLMProvider]
	if !ok {
		return Config{}, fmt.Errorf("invalid LLM_PROVIDER %q", c.LLMProvider)
	}
	c.LLMModel = envOr("LLM_MODEL", def)
	c.ClassifierModel = envOr("CLASSIFIER_MODEL", c.LLMModel)

	if v := os.Getenv("LLM_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid LLM_TIMEOUT %q: %w", v, err)
		}
		c.LLMTimeout = d
	}

	if v := os.Getenv("LLM_TEMPERATURE"); v != "" {
		t, err := strconv.ParseFloat(v, 64)
		if err != nil || t < 0 || t > 2 {
			return Config{}, fmt.Errorf("invalid LLM_TEMPERATURE %q: want a number in [0, 2]", v)
		}
		c.LLMTemperature = t
	}

	if v := os.Getenv("LLM_MAX_TOKENS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("invalid LLM_MAX_TOKENS %q: want a positive integer", v)
		}
		c.LLMMaxTokens = n
	}

	if v := os.Getenv("EXPOSE_PROMPT"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid EXPOSE_PROMPT %q: %w", v, err)
		}
		c.ExposePrompt = b
	}

	level, err := parseLogLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}
	c.LogLevel = level

	if c.Classifier != ClassifierKeyword && c.Classifier != ClassifierLLM {
		return Config{}, fmt.Errorf("invalid CLASSIFIER %q", c.Classifier)
	}

	switch {
	case c.LLMProvider == ProviderOpenRouter && c.OpenRouterAPIKey == "":
		return Config{}, fmt.Errorf("OPENROUTER_API_KEY is required when LLM_PROVIDER=openrouter")
	case c.LLMProvider == ProviderGemini && c.GeminiAPIKey == "":
		return Config{}, fmt.Errorf("GEMINI_API_KEY is required when LLM_PROVIDER=gemini")
	}

	return c, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}
}

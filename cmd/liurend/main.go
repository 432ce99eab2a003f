package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/randomtoy/liuren-go/internal/adapters/calendar"
	"github.com/randomtoy/liuren-go/internal/adapters/knowledge"
	"github.com/randomtoy/liuren-go/internal/adapters/llm/gemini"
	"github.com/randomtoy/liuren-go/internal/adapters/llm/openrouter"
	"github.com/randomtoy/liuren-go/internal/app"
	"github.com/randomtoy/liuren-go/internal/classify"
	"github.com/randomtoy/liuren-go/internal/config"
	"github.com/randomtoy/liuren-go/internal/ports"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "liurend",
		Short:         "Xiao Liu Ren divination service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newServeCmd(),
		newCastCmd(),
		newHoursCmd(),
	)
	return root
}

func newLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// buildService wires the adapters selected by cfg.
func buildService(ctx context.Context, cfg config.Config, logger *slog.Logger) (*app.DivinationService, error) {
	kb, err := knowledge.Load()
	if err != nil {
		return nil, fmt.Errorf("load knowledge: %w", err)
	}

	httpClient := &http.Client{Timeout: cfg.LLMTimeout}

	gen, err := newGenerator(ctx, cfg, httpClient, cfg.LLMModel, logger)
	if err != nil {
		return nil, err
	}

	var cls ports.Classifier
	switch cfg.Classifier {
	case config.ClassifierLLM:
		clsGen, err := newGenerator(ctx, cfg, httpClient, cfg.ClassifierModel, logger)
		if err != nil {
			return nil, err
		}
		cls = classify.NewDelegated(clsGen, kb.Keywords(), logger)
	default:
		cls = classify.NewKeyword(kb.Keywords())
	}

	return app.NewDivinationService(calendar.NewLunar(), kb, cls, gen, app.Options{
		Model:        cfg.LLMModel,
		Temperature:  cfg.LLMTemperature,
		MaxTokens:    cfg.LLMMaxTokens,
		ExposePrompt: cfg.ExposePrompt,
	}, logger), nil
}

func newGenerator(ctx context.Context, cfg config.Config, hc *http.Client, model string, logger *slog.Logger) (ports.Generator, error) {
	switch cfg.LLMProvider {
	case config.ProviderGemini:
		c, err := gemini.NewClient(ctx, hc, cfg.GeminiAPIKey, cfg.GeminiBaseURL, model, logger)
		if err != nil {
			return nil, fmt.Errorf("gemini client: %w", err)
		}
		return c, nil
	default:
		return openrouter.NewClient(hc, cfg.OpenRouterAPIKey, cfg.OpenRouterBaseURL, model, logger), nil
	}
}

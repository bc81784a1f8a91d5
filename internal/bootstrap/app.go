package bootstrap

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"coverletter-backend/internal/coverletters"
	"coverletter-backend/internal/extract"
	"coverletter-backend/internal/llm"
	"coverletter-backend/internal/llm/gemini"
	"coverletter-backend/internal/llm/openai"
	"coverletter-backend/internal/shared/config"
	"coverletter-backend/internal/shared/server"
	"coverletter-backend/internal/shared/telemetry"
)

// App holds the process-wide dependencies shared by every request.
type App struct {
	Config    config.Config
	Router    *gin.Engine
	Extractor *extract.Extractor
	Completer llm.Completer
	Service   *coverletters.Service
	Handler   *coverletters.Handler
}

// Build constructs the completion client for the configured provider and wires the router.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	completer, err := BuildCompleter(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return BuildWithCompleter(cfg, completer), nil
}

// BuildWithCompleter wires the app around an already constructed completer.
func BuildWithCompleter(cfg config.Config, completer llm.Completer) *App {
	extractor := extract.New(cfg.ExtractMaxConcurrency)
	svc := coverletters.NewService(extractor, completer, cfg.LLMTimeout)
	handler := coverletters.NewHandler(svc, cfg.MaxUploadBytes)

	return &App{
		Config:    cfg,
		Router:    server.NewRouter(cfg, handler),
		Extractor: extractor,
		Completer: completer,
		Service:   svc,
		Handler:   handler,
	}
}

// BuildCompleter returns the completion adapter selected by cfg.LLMProvider.
func BuildCompleter(ctx context.Context, cfg config.Config) (llm.Completer, error) {
	switch cfg.LLMProvider {
	case config.ProviderOpenAI:
		client, err := openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel,
			openai.WithBaseURL(cfg.OpenAIBaseURL),
			openai.WithTemperature(cfg.LLMTemperature),
		)
		if err != nil {
			return nil, err
		}
		logProvider(cfg)
		return client, nil
	case config.ProviderGemini:
		client, err := gemini.NewClient(ctx, gemini.Config{
			APIKey:      cfg.GeminiAPIKey,
			Model:       cfg.LLMModel,
			Temperature: cfg.LLMTemperature,
		})
		if err != nil {
			return nil, err
		}
		logProvider(cfg)
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported LLM_PROVIDER %q", cfg.LLMProvider)
	}
}

func logProvider(cfg config.Config) {
	telemetry.Info("llm.provider", map[string]any{
		"provider":   cfg.LLMProvider,
		"model":      cfg.LLMModel,
		"timeout_ms": cfg.LLMTimeout.Milliseconds(),
	})
}

package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-relay/internal/analyses"
	"resume-relay/internal/extract"
	"resume-relay/internal/llm"
	"resume-relay/internal/llm/gemini"
	"resume-relay/internal/services/health"
	"resume-relay/internal/shared/config"
	"resume-relay/internal/shared/server"
	"resume-relay/internal/shared/server/middleware"
	"resume-relay/internal/shared/telemetry"
	"resume-relay/internal/translations"
)

// App holds shared dependencies.
type App struct {
	Config              config.Config
	Router              *gin.Engine
	Provider            llm.Provider
	AnalysesService     *analyses.Service
	TranslationsService *translations.Service
	AnalysisHandler     *analyses.Handler
	TranslationHandler  *translations.Handler
	Health              *health.Service
}

// Build prepares dependencies and the router.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if err := telemetry.Configure(cfg.LogLevel, cfg.LogFormat); err != nil {
		return nil, fmt.Errorf("configure logging: %w", err)
	}

	base, err := buildProvider(ctx, cfg)
	if err != nil {
		return nil, err
	}
	provider := llm.WithRetry(base, llm.RetryOptions{
		Timeout:        cfg.LLMTimeout,
		MaxRetries:     uint64(max(cfg.LLMMaxRetries, 0)),
		BaseDelay:      cfg.LLMRetryBase,
		MaxPromptBytes: cfg.MaxPromptBytes,
	})

	app := &App{
		Config:   cfg,
		Provider: provider,
		Health:   health.NewService(cfg.LLMProvider, cfg.LLMModel),
	}
	app.AnalysesService = &analyses.Service{
		Provider: provider,
		Model:    cfg.LLMModel,
		Extract:  extract.ExtractText,
	}
	app.TranslationsService = &translations.Service{
		Provider: provider,
		Model:    cfg.LLMModel,
	}
	app.AnalysisHandler = analyses.NewHandler(app.AnalysesService, cfg.MaxUploadBytes)
	app.TranslationHandler = translations.NewHandler(app.TranslationsService, cfg.MaxUploadBytes)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:             cfg,
		Health:             app.Health,
		AnalysisHandler:    app.AnalysisHandler,
		TranslationHandler: app.TranslationHandler,
		Limiter:            middleware.NewRateLimiter(nil),
	})
	return app, nil
}

// buildProvider picks the generation provider. Without an API key, dev-like
// environments get the placeholder so the server still boots.
func buildProvider(ctx context.Context, cfg config.Config) (llm.Provider, error) {
	switch cfg.LLMProvider {
	case "none":
		return llm.PlaceholderClient{}, nil
	case "gemini":
		if strings.TrimSpace(cfg.GoogleAIAPIKey) == "" {
			if config.IsDevLike(cfg.Env) {
				telemetry.Warn("llm.placeholder", map[string]any{
					"reason": "GOOGLE_AI_API_KEY not set",
					"env":    cfg.Env,
				})
				return llm.PlaceholderClient{}, nil
			}
			return nil, errors.New("GOOGLE_AI_API_KEY is required outside dev")
		}
		return gemini.NewClient(ctx, cfg.GoogleAIAPIKey)
	default:
		return nil, fmt.Errorf("unsupported LLM_PROVIDER: %s", cfg.LLMProvider)
	}
}

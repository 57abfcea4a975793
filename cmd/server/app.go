package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/phrazzld/tweetgen/internal/api"
	"github.com/phrazzld/tweetgen/internal/config"
	"github.com/phrazzld/tweetgen/internal/domain"
	"github.com/phrazzld/tweetgen/internal/extract"
	"github.com/phrazzld/tweetgen/internal/generation"
	"github.com/phrazzld/tweetgen/internal/platform/gemini"
	"github.com/phrazzld/tweetgen/internal/platform/groq"
	"github.com/phrazzld/tweetgen/internal/platform/logger"
	"github.com/phrazzld/tweetgen/internal/prompt"
)

// application holds the shared application dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger

	client  generation.Client
	service *generation.Service
	handler *api.GenerateHandler
}

// newApplication wires the prompt builder, extractor, model client and
// generation service from cfg. Diagnostics records go to diagnostics when
// generation.debug is enabled.
func newApplication(cfg *config.Config, log *slog.Logger, diagnostics io.Writer) (*application, error) {
	logConfig(log, cfg)

	builder, err := prompt.LoadBuilder(
		cfg.LLM.PromptTemplatePath,
		cfg.Generation.ItemLabel,
		cfg.Generation.MaxItems,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load prompt template: %w", err)
	}

	extractor := extract.New(cfg.Generation.ItemLabel, cfg.Generation.MaxItems, cfg.Generation.MaxChars)

	client, err := newModelClient(log, cfg.LLM)
	if err != nil {
		return nil, err
	}

	service, err := generation.NewService(
		builder,
		client,
		extractor,
		cfg.LLM.Model(),
		domain.GenerationParams{
			Temperature: cfg.LLM.Temperature,
			MaxTokens:   cfg.LLM.MaxTokens,
			TopP:        cfg.LLM.TopP,
		},
		log.With("component", "generation_service"),
		generation.WithDiagnostics(logger.NewDiagnostics(cfg.Generation.Debug, diagnostics)),
		generation.WithDefaultCredential(cfg.LLM.APIKey),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create generation service: %w", err)
	}

	handler := api.NewGenerateHandler(service, api.PageInfo{
		Provider: providerDisplayName(cfg.LLM.Provider),
		Model:    cfg.LLM.Model(),
		Label:    cfg.Generation.ItemLabel,
	}, log)

	log.Info("Application initialized successfully")

	return &application{
		config:  cfg,
		logger:  log,
		client:  client,
		service: service,
		handler: handler,
	}, nil
}

// newModelClient creates the client for the configured provider.
func newModelClient(log *slog.Logger, cfg config.LLMConfig) (generation.Client, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		c, err := gemini.NewGeminiClient(log.With("component", "gemini_client"), cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
		}
		return c, nil
	case config.ProviderGroq, "":
		c, err := groq.NewClient(log.With("component", "groq_client"), cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Groq client: %w", err)
		}
		return c, nil
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", generation.ErrInvalidConfig, cfg.Provider)
	}
}

func providerDisplayName(provider string) string {
	if provider == config.ProviderGemini {
		return "Gemini"
	}
	return "Groq"
}

// Run serves HTTP until ctx is canceled, then shuts down gracefully.
func (app *application) Run(ctx context.Context) error {
	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

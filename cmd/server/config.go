package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/tweetgen/internal/config"
)

// loadAppConfig loads the application configuration from environment
// variables, an optional .env file and an optional config file.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// logConfig records the effective configuration without the credential.
func logConfig(logger *slog.Logger, cfg *config.Config) {
	logger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"provider", cfg.LLM.Provider,
		"model", cfg.LLM.Model())

	logger.Debug("Generation configuration",
		"item_label", cfg.Generation.ItemLabel,
		"max_items", cfg.Generation.MaxItems,
		"max_chars", cfg.Generation.MaxChars,
		"diagnostics", cfg.Generation.Debug,
		"prompt_template_path", cfg.LLM.PromptTemplatePath,
		"default_credential_present", cfg.LLM.APIKey != "")
}

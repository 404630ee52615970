package services

import (
	"context"
	"fmt"

	"github.com/resume-analyzer/resume-analyzer/internal/config"
)

// LLMService sends one prompt to the external model and returns its raw reply.
type LLMService interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	Name() string
}

// NewLLMService builds the provider selected by cfg.Provider.
func NewLLMService(cfg config.LLMConfig) (LLMService, error) {
	switch cfg.Provider {
	case config.ProviderAnthropic:
		return NewClaudeService(cfg.APIKey, cfg.Model, cfg.MaxTokens), nil
	case config.ProviderGemini:
		return NewGeminiService(cfg.APIKey, cfg.Model, cfg.MaxTokens)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}

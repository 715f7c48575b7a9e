// Package llm wraps the chat-completion providers used for maintenance procedures and résumé answers.
package llm

import (
	"context"
	"errors"
	"fmt"

	"game-api/pkg/config"

	"go.uber.org/zap"
)

// ErrNotConfigured is returned when the provider has no API key.
var ErrNotConfigured = errors.New("API key no configurada")

// Completer sends one system+user prompt pair and returns the raw model text.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	Name() string
}

// New picks the provider named in cfg.Provider. A missing key does not fail here;
// Complete reports ErrNotConfigured instead.
func New(ctx context.Context, cfg config.LLMConfig, logger *zap.Logger) (Completer, error) {
	switch cfg.Provider {
	case "", "openai":
		return NewOpenAIClient(cfg, logger), nil
	case "genai", "gemini":
		return NewGenAIClient(ctx, cfg, logger)
	default:
		return nil, fmt.Errorf("proveedor LLM no soportado: %s (use 'openai' o 'genai')", cfg.Provider)
	}
}

package llm

import (
	"context"
	"fmt"
	"strings"

	"game-api/pkg/config"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

type GenAIClient struct {
	client      *genai.Client
	model       string
	temperature float32
	logger      *zap.Logger
}

func NewGenAIClient(ctx context.Context, cfg config.LLMConfig, logger *zap.Logger) (*GenAIClient, error) {
	c := &GenAIClient{model: cfg.GenAIModel, temperature: cfg.Temperature, logger: logger}
	if cfg.GenAIKey == "" {
		return c, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GenAIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("no se pudo crear el cliente GenAI: %w", err)
	}
	c.client = client
	return c, nil
}

func (c *GenAIClient) Name() string { return "genai:" + c.model }

func (c *GenAIClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if c.client == nil {
		return "", ErrNotConfigured
	}

	temperature := c.temperature
	cfg := &genai.GenerateContentConfig{Temperature: &temperature}
	if strings.TrimSpace(systemPrompt) != "" {
		cfg.SystemInstruction = genai.NewContentFromText(systemPrompt, genai.RoleUser)
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(userPrompt), cfg)
	if err != nil {
		return "", fmt.Errorf("error en GenAI: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("GenAI no devolvió candidatos")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}
	return sb.String(), nil
}

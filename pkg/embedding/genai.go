package embedding

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// batchLimit is the maximum number of contents per EmbedContent call.
const batchLimit = 100

type GenAIEngine struct {
	client *genai.Client
	model  string
}

// NewGenAIEngine returns an engine whose calls fail with ErrNotConfigured when apiKey is empty.
func NewGenAIEngine(ctx context.Context, apiKey, model string) (*GenAIEngine, error) {
	if model == "" {
		model = "gemini-embedding-001"
	}
	e := &GenAIEngine{model: model}
	if apiKey == "" {
		return e, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("no se pudo crear el cliente GenAI: %w", err)
	}
	e.client = client
	return e, nil
}

func (e *GenAIEngine) Name() string { return "genai:" + e.model }

func (e *GenAIEngine) EmbedBatch(ctx context.Context, texts []string, taskType string) ([][]float32, error) {
	if e.client == nil {
		return nil, ErrNotConfigured
	}
	if len(texts) == 0 {
		return nil, nil
	}

	out := make([][]float32, 0, len(texts))
	for start := 0; start < len(texts); start += batchLimit {
		end := min(start+batchLimit, len(texts))

		contents := make([]*genai.Content, 0, end-start)
		for _, text := range texts[start:end] {
			contents = append(contents, genai.NewContentFromText(text, genai.RoleUser))
		}

		result, err := e.client.Models.EmbedContent(ctx, e.model, contents, &genai.EmbedContentConfig{
			TaskType: taskType,
		})
		if err != nil {
			return nil, fmt.Errorf("error de embeddings GenAI: %w", err)
		}
		if len(result.Embeddings) != end-start {
			return nil, fmt.Errorf("GenAI devolvió %d embeddings para %d textos", len(result.Embeddings), end-start)
		}
		for _, emb := range result.Embeddings {
			out = append(out, emb.Values)
		}
	}
	return out, nil
}

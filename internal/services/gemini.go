package services

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

type geminiService struct {
	client    *genai.Client
	modelName string
	maxTokens int
}

func NewGeminiService(apiKey, modelName string, maxTokens int) (LLMService, error) {
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:    client,
		modelName: modelName,
		maxTokens: maxTokens,
	}, nil
}

func (g *geminiService) Name() string {
	return "gemini"
}

// GenerateText implements LLMService.
func (g *geminiService) GenerateText(ctx context.Context, prompt string) (string, error) {
	config := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(g.maxTokens),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return text, nil
}

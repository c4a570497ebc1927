package services

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"
)

// GeminiService is the single outbound boundary of the pipeline: one prompt
// in, one text response out. Stateless between calls, no conversation memory,
// no streaming, no internal retries.
type GeminiService interface {
	GenerateText(ctx context.Context, prompt string, temperature float32) (string, error)
	Invoke(ctx context.Context, prompt string) string
}

type geminiService struct {
	client    *genai.Client
	modelName string
	timeout   time.Duration
}

func NewGeminiService(apiKey, modelName string, timeout time.Duration) (GeminiService, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:    client,
		modelName: modelName,
		timeout:   timeout,
	}, nil
}

// GenerateText implements GeminiService.
func (g *geminiService) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 4096,
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

// Invoke implements GeminiService. On any failure it returns a sentinel error
// string in place of the response so a single failed call degrades only its
// own artifact and never aborts the sibling calls.
func (g *geminiService) Invoke(ctx context.Context, prompt string) string {
	text, err := g.GenerateText(ctx, prompt, 0.3)
	if err != nil {
		return fmt.Sprintf("API Error: %v", err)
	}
	return text
}

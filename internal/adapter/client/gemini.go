package client

import (
	"context"
	"fmt"
	"strings"

	"supportflow/internal/domain/entity"

	"google.golang.org/genai"
)

// GeminiClient answers through the Gemini API instead of the Hugging Face
// router. It is selected with INFERENCE_PROVIDER=gemini.
type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	return NewGeminiClientFromClient(gc, model), nil
}

// NewGeminiClientFromClient wraps an already configured genai client, for
// example one pointed at a different base URL.
func NewGeminiClientFromClient(gc *genai.Client, model string) *GeminiClient {
	return &GeminiClient{client: gc, model: model}
}

func (g *GeminiClient) Available() bool { return true }
func (g *GeminiClient) Label() string   { return "Gemini (" + g.model + ")" }

func (g *GeminiClient) Generate(ctx context.Context, message string) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(message), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		Temperature:       genai.Ptr[float32](Temperature),
		MaxOutputTokens:   MaxOutputTokens,
	})
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}

	text := result.Text()
	if strings.TrimSpace(text) == "" {
		return "", entity.ErrEmptyCompletion
	}
	return text, nil
}

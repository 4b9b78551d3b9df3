package client

import (
	"context"
	"fmt"
	"strings"

	"supportflow/internal/domain/entity"

	openai "github.com/sashabaranov/go-openai"
)

// HuggingFaceClient calls the Hugging Face inference router, which speaks
// the OpenAI chat-completions protocol.
type HuggingFaceClient struct {
	client *openai.Client
	model  string
	label  string
}

// NewHuggingFaceClient targets baseURL with model routed to an inference
// provider, e.g. "meta-llama/Llama-3.3-70B-Instruct" + "cerebras".
func NewHuggingFaceClient(apiKey, baseURL, model, route string) *HuggingFaceClient {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = strings.TrimRight(baseURL, "/")

	id := model
	if route != "" {
		id = model + ":" + route
	}
	return &HuggingFaceClient{
		client: openai.NewClientWithConfig(cfg),
		model:  id,
		label:  hfLabel(model, route),
	}
}

func (h *HuggingFaceClient) Available() bool { return true }
func (h *HuggingFaceClient) Label() string   { return h.label }

func (h *HuggingFaceClient) Generate(ctx context.Context, message string) (string, error) {
	resp, err := h.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: h.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
		MaxTokens:   MaxOutputTokens,
		Temperature: Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("hugging face completion: %w", err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", entity.ErrEmptyCompletion
	}
	return resp.Choices[0].Message.Content, nil
}

// hfLabel names the model the way the frontend shows it:
// "Cerebras (Llama-3.3-70B)" for the default route.
func hfLabel(model, route string) string {
	name := model
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, "-Instruct")
	if route == "" {
		return "Hugging Face (" + name + ")"
	}
	return strings.ToUpper(route[:1]) + route[1:] + " (" + name + ")"
}

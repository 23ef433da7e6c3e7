package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// GroqProvider talks to Groq's OpenAI-compatible chat completion API.
type GroqProvider struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
}

func NewGroqProvider(apiKey, baseURL, model string) *GroqProvider {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &GroqProvider{
		client:      openai.NewClientWithConfig(cfg),
		model:       model,
		temperature: 0.3,
		maxTokens:   512,
	}
}

func (p *GroqProvider) Name() string { return "groq" }

func (p *GroqProvider) Generate(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	resp, err := p.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: p.model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: userMessage},
			},
			Temperature: p.temperature,
			MaxTokens:   p.maxTokens,
		},
	)
	if err != nil {
		return "", fmt.Errorf("groq chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("groq returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

package generator

import (
	"context"
	"fmt"
	"slowpoke/internal/core/domain"
	"strings"

	"github.com/revrost/go-openrouter"
)

// OpenRouterClient is the subset of openrouter.Client used for chat completions.
type OpenRouterClient interface {
	CreateChatCompletion(ctx context.Context,
		ccr openrouter.ChatCompletionRequest) (openrouter.ChatCompletionResponse, error)
}

// OpenRouter is a text generator backed by any model routed through OpenRouter.
type OpenRouter struct {
	client OpenRouterClient
	model  string
}

func NewOpenRouter(apiKey, model string) *OpenRouter {
	return &OpenRouter{
		model: model,
		client: openrouter.NewClient(
			apiKey,
			openrouter.WithXTitle("slowpoke"),
		),
	}
}

func (c *OpenRouter) PromptText(ctx context.Context, prompt domain.Prompt) (string, error) {
	messages := make([]openrouter.ChatCompletionMessage, 0, 2)

	if prompt.SystemInstruction != "" {
		messages = append(messages, openrouter.ChatCompletionMessage{
			Role:    openrouter.ChatMessageRoleSystem,
			Content: openrouter.Content{Text: prompt.SystemInstruction},
		})
	}

	messages = append(messages, openrouter.ChatCompletionMessage{
		Role:    openrouter.ChatMessageRoleUser,
		Content: openrouter.Content{Text: prompt.Prompt},
	})

	resp, err := c.client.CreateChatCompletion(ctx, openrouter.ChatCompletionRequest{
		Messages: messages,
		Model:    c.model,
	})
	if err != nil {
		return "", fmt.Errorf("openrouter API error: %w", err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content.Text) == "" {
		return "", domain.ErrNoText
	}

	return resp.Choices[0].Message.Content.Text, nil
}

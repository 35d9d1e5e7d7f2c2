package generator

import (
	"context"
	"fmt"

	"disbot/internal/core/domain"

	"github.com/revrost/go-openrouter"
)

// OpenRouterClient is the subset of the openrouter SDK used by the generator.
type OpenRouterClient interface {
	CreateChatCompletion(ctx context.Context,
		request openrouter.ChatCompletionRequest) (openrouter.ChatCompletionResponse, error)
}

type OpenRouter struct {
	client       OpenRouterClient
	systemPrompt string
	model        string
}

func NewOpenRouter(apiKey, systemPrompt, model string) *OpenRouter {
	return &OpenRouter{
		systemPrompt: systemPrompt,
		model:        model,
		client: openrouter.NewClient(
			apiKey,
			openrouter.WithXTitle("disbot"),
		),
	}
}

func (c *OpenRouter) GenerateFromPrompt(ctx context.Context, prompt string) (domain.ModelResponse, error) {
	ccr := openrouter.ChatCompletionRequest{
		Messages: []openrouter.ChatCompletionMessage{
			{
				Role: openrouter.ChatMessageRoleSystem,
				Content: openrouter.Content{
					Text: c.systemPrompt,
				},
			},
			{
				Role: openrouter.ChatMessageRoleUser,
				Content: openrouter.Content{
					Text: prompt,
				},
			},
		},
		Model: c.model,
	}

	resp, err := c.client.CreateChatCompletion(ctx, ccr)
	if err != nil {
		return domain.ModelResponse{}, fmt.Errorf("openrouter API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return domain.ModelResponse{}, fmt.Errorf("openrouter returned no choices for model %s", c.model)
	}

	return domain.ModelResponse{
		Response: resp.Choices[0].Message.Content.Text,
		Metadata: domain.ResponseMetadata{
			Model:            resp.Model,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}, nil
}

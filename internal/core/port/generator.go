package port

import (
	"context"

	"disbot/internal/core/domain"
)

type TextGenerator interface {
	// GenerateFromPrompt produces a completion for a single prompt.
	GenerateFromPrompt(ctx context.Context, prompt string) (domain.ModelResponse, error)
}

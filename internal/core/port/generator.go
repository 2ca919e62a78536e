package port

import (
	"context"
	"slowpoke/internal/core/domain"
)

type TextGenerator interface {
	// PromptText sends a prompt with an optional system instruction and returns the generated text.
	PromptText(ctx context.Context, prompt domain.Prompt) (string, error)
}

type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (domain.Image, error)
	// EditImage generates a new image from a base image and instructions.
	EditImage(ctx context.Context, prompt string, base domain.Image) (domain.Image, error)
}

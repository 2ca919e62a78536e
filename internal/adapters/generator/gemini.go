package generator

import (
	"context"
	"fmt"
	"slowpoke/internal/core/domain"
	"strings"

	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

// ContentGenerator is satisfied by genai.Client.Models.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content,
		config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Gemini generates text and images with the Gemini API.
type Gemini struct {
	models     ContentGenerator
	textModel  string
	imageModel string
}

func NewGemini(models ContentGenerator, textModel, imageModel string) *Gemini {
	return &Gemini{models: models, textModel: textModel, imageModel: imageModel}
}

// NewGeminiClient connects to the Gemini developer API.
func NewGeminiClient(ctx context.Context, apiKey, textModel, imageModel string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return NewGemini(client.Models, textModel, imageModel), nil
}

func (g *Gemini) PromptText(ctx context.Context, prompt domain.Prompt) (string, error) {
	var config *genai.GenerateContentConfig
	if prompt.SystemInstruction != "" {
		config = &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(prompt.SystemInstruction, genai.RoleUser),
		}
	}

	resp, err := g.models.GenerateContent(ctx, g.textModel,
		[]*genai.Content{genai.NewContentFromText(prompt.Prompt, genai.RoleUser)}, config)
	if err != nil {
		return "", fmt.Errorf("gemini API error: %w", err)
	}

	var sb strings.Builder
	for _, part := range responseParts(resp) {
		if part.Text != "" && !part.Thought {
			sb.WriteString(part.Text)
		}
	}

	if strings.TrimSpace(sb.String()) == "" {
		return "", domain.ErrNoText
	}

	return sb.String(), nil
}

func (g *Gemini) GenerateImage(ctx context.Context, prompt string) (domain.Image, error) {
	log.Debug().Str("prompt", prompt).Msg("prompting for image")

	return g.image(ctx, genai.NewContentFromText(prompt, genai.RoleUser))
}

func (g *Gemini) EditImage(ctx context.Context, prompt string, base domain.Image) (domain.Image, error) {
	log.Debug().Str("prompt", prompt).Str("mimeType", base.MIMEType).Msg("prompting for image with image input")

	return g.image(ctx, genai.NewContentFromParts([]*genai.Part{
		genai.NewPartFromText(prompt),
		genai.NewPartFromBytes(base.Data, base.MIMEType),
	}, genai.RoleUser))
}

func (g *Gemini) image(ctx context.Context, content *genai.Content) (domain.Image, error) {
	resp, err := g.models.GenerateContent(ctx, g.imageModel, []*genai.Content{content},
		&genai.GenerateContentConfig{ResponseModalities: []string{"TEXT", "IMAGE"}})
	if err != nil {
		return domain.Image{}, fmt.Errorf("gemini API error: %w", err)
	}

	for _, part := range responseParts(resp) {
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return domain.Image{MIMEType: part.InlineData.MIMEType, Data: part.InlineData.Data}, nil
		}
	}

	return domain.Image{}, domain.ErrNoImage
}

func responseParts(resp *genai.GenerateContentResponse) []*genai.Part {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil
	}

	return resp.Candidates[0].Content.Parts
}

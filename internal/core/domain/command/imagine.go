package command

import (
	"context"
	"fmt"
	"slowpoke/internal/core/domain"
	"slowpoke/internal/core/port"
	"slowpoke/internal/core/service"
	"strings"
)

type Imagine struct {
	generator port.ImageGenerator
	style     port.StyleProvider
	command   string
}

func NewImagine(generator port.ImageGenerator, style port.StyleProvider, command string) *Imagine {
	return &Imagine{generator: generator, style: style, command: command}
}

func (i *Imagine) GetCommand() string {
	return i.command
}

func (i *Imagine) Kind() domain.CommandKind {
	return domain.Slash
}

func (i *Imagine) Spec() domain.CommandSpec {
	return domain.CommandSpec{
		Name:        i.command,
		Description: "Image generation with slowpoke",
		Options: []domain.OptionSpec{
			{Name: "prompt", Description: "Prompt for image generation", Type: domain.StringOption, Required: true},
		},
	}
}

func (i *Imagine) Execute(ctx context.Context, inv *domain.Invocation, reply port.ReplyHandle) error {
	l := invocationLogger(i.command, inv)

	if err := reply.Defer(ctx); err != nil {
		return fmt.Errorf("error deferring imagine reply: %w", err)
	}

	prompt, _ := inv.StringOption("prompt")
	prompt = strings.TrimSpace(prompt)

	l.Info().Str("prompt", prompt).Msg("handling request")

	if prompt == "" {
		return service.Fail(ctx, reply, i.errorResponse())
	}

	image, err := i.generator.GenerateImage(ctx, prompt)
	if err != nil {
		l.Error().Err(err).Msg("error imagining image")
		return service.Fail(ctx, reply, i.errorResponse())
	}

	name := service.AttachmentName(image.MIMEType)

	err = service.Emit(ctx, reply, []*domain.Response{{
		Embeds: []domain.Embed{{
			Title:       "Imagine",
			Description: prompt,
			Color:       i.style.Primary(),
			ImageURL:    "attachment://" + name,
		}},
		Files: []domain.File{{Name: name, ContentType: image.MIMEType, Data: image.Data}},
	}})
	if err != nil {
		return fmt.Errorf("error sending image: %w", err)
	}

	return nil
}

func (i *Imagine) errorResponse() *domain.Response {
	return domain.EmbedResponse(domain.Embed{
		Title:       "Error imagining image",
		Description: "Failed to imagine image. Try altering the prompt or trying again later.",
		Color:       i.style.Error(),
	})
}

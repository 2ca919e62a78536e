package command

import (
	"context"
	"fmt"
	"slowpoke/internal/core/domain"
	"slowpoke/internal/core/port"
	"slowpoke/internal/core/service"
	"strings"
)

const promptSystemInstruction = `Return your response in markdown. Give as complete of an
answer as possible. Assume whoever you're talking to will not be able to respond back so do not ask
for follow-ups. Do not hallucinate.`

type Prompt struct {
	generator port.TextGenerator
	command   string
}

func NewPrompt(generator port.TextGenerator, command string) *Prompt {
	return &Prompt{generator: generator, command: command}
}

func (p *Prompt) GetCommand() string {
	return p.command
}

func (p *Prompt) Kind() domain.CommandKind {
	return domain.Slash
}

func (p *Prompt) Spec() domain.CommandSpec {
	return domain.CommandSpec{
		Name:        p.command,
		Description: "Ask the LLM a question",
		Options: []domain.OptionSpec{
			{Name: "prompt", Description: "Prompt for the LLM", Type: domain.StringOption, Required: true},
		},
	}
}

func (p *Prompt) Execute(ctx context.Context, inv *domain.Invocation, reply port.ReplyHandle) error {
	l := invocationLogger(p.command, inv)

	prompt, _ := inv.StringOption("prompt")
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		l.Debug().Msg("empty prompt")

		err := reply.Reply(ctx, &domain.Response{Content: "Please provide a prompt.", Ephemeral: true})
		if err != nil {
			return fmt.Errorf("error sending prompt warning: %w", err)
		}

		return nil
	}

	if err := reply.Defer(ctx); err != nil {
		return fmt.Errorf("error deferring prompt reply: %w", err)
	}

	l.Info().Str("prompt", prompt).Msg("handling request")

	answer, err := p.generator.PromptText(ctx, domain.Prompt{
		Prompt:            prompt,
		SystemInstruction: promptSystemInstruction,
	})
	if err != nil {
		l.Error().Err(err).Msg("error generating answer")
		return service.Fail(ctx, reply, domain.TextResponse("Sorry, there was an error processing your request."))
	}

	text := fmt.Sprintf("***%s***\n\n%s", prompt, answer)

	err = service.EmitText(ctx, reply, text, domain.MaxEmbedDescriptionLength, service.EmbedText(service.Green))
	if err != nil {
		return fmt.Errorf("error sending answer: %w", err)
	}

	return nil
}

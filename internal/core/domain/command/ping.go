package command

import (
	"context"
	"fmt"
	"slowpoke/internal/core/domain"
	"slowpoke/internal/core/port"
	"slowpoke/internal/core/service"
	"time"
)

const DefaultPingPause = time.Second

type Ping struct {
	pause   time.Duration
	command string
}

// NewPing creates the latency check. pause is how long the "Pinging..." embed stays visible.
func NewPing(pause time.Duration, command string) *Ping {
	return &Ping{pause: pause, command: command}
}

func (p *Ping) GetCommand() string {
	return p.command
}

func (p *Ping) Kind() domain.CommandKind {
	return domain.Slash
}

func (p *Ping) Spec() domain.CommandSpec {
	return domain.CommandSpec{Name: p.command, Description: "Test the bot's latency"}
}

func (p *Ping) Execute(ctx context.Context, inv *domain.Invocation, reply port.ReplyHandle) error {
	l := invocationLogger(p.command, inv)

	start := time.Now()
	err := reply.Reply(ctx, domain.EmbedResponse(domain.Embed{
		Title:       "🌐 Ping!",
		Description: "Pinging...",
		Color:       service.Peach,
	}))
	if err != nil {
		return fmt.Errorf("error sending ping: %w", err)
	}

	latency := time.Since(start)
	l.Debug().Dur("latency", latency).Msg("measured round trip")

	select {
	case <-time.After(p.pause):
	case <-ctx.Done():
		return ctx.Err()
	}

	err = reply.EditReply(ctx, domain.EmbedResponse(domain.Embed{
		Title:       "🏓 Pong!",
		Description: fmt.Sprintf("Latency: %d ms", latency.Milliseconds()),
		Color:       service.Sapphire,
	}))
	if err != nil {
		return fmt.Errorf("error sending pong: %w", err)
	}

	return nil
}

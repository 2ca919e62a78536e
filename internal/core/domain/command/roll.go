package command

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slowpoke/internal/core/domain"
	"slowpoke/internal/core/port"
)

const (
	defaultSides = 6
	minSides     = 2
	maxSides     = 100
)

type Roll struct {
	style   port.StyleProvider
	intN    func(n int) int
	command string
}

func NewRoll(style port.StyleProvider, command string) *Roll {
	return &Roll{style: style, intN: rand.IntN, command: command}
}

func (r *Roll) GetCommand() string {
	return r.command
}

func (r *Roll) Kind() domain.CommandKind {
	return domain.Slash
}

func (r *Roll) Spec() domain.CommandSpec {
	minValue := float64(minSides)

	return domain.CommandSpec{
		Name:        r.command,
		Description: "Roll a dice with custom sides",
		Options: []domain.OptionSpec{
			{
				Name:        "sides",
				Description: "Number of sides on the dice (default is 6)",
				Type:        domain.IntegerOption,
				MinValue:    &minValue,
				MaxValue:    maxSides,
			},
		},
	}
}

func (r *Roll) Execute(ctx context.Context, inv *domain.Invocation, reply port.ReplyHandle) error {
	sides, ok := inv.IntOption("sides")
	if !ok || sides == 0 {
		sides = defaultSides
	}

	if sides < minSides || sides > maxSides {
		l := invocationLogger(r.command, inv)
		l.Debug().Int64("sides", sides).Msg("invalid number of sides")

		err := reply.Reply(ctx, &domain.Response{
			Content:   fmt.Sprintf("Please provide a valid number of sides between %d and %d.", minSides, maxSides),
			Ephemeral: true,
		})
		if err != nil {
			return fmt.Errorf("error sending roll warning: %w", err)
		}

		return nil
	}

	result := r.intN(int(sides)) + 1

	err := reply.Reply(ctx, domain.EmbedResponse(domain.Embed{
		Title:       "Dice Roll",
		Description: fmt.Sprintf("🎲 You rolled a **%d** on a D%d!", result, sides),
		Color:       r.style.Pastel(),
	}))
	if err != nil {
		return fmt.Errorf("error sending roll: %w", err)
	}

	return nil
}

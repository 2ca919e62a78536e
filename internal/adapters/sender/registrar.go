package sender

import (
	"context"
	"fmt"
	"slowpoke/internal/core/domain"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

type CommandSession interface {
	ApplicationCommandBulkOverwrite(appID string, guildID string, commands []*discordgo.ApplicationCommand,
		options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
}

// Registrar deploys slash command schemas to Discord.
type Registrar struct {
	session       CommandSession
	applicationID string
	guildID       string
}

// NewRegistrar creates a registrar. An empty guildID registers the commands globally.
func NewRegistrar(session CommandSession, applicationID, guildID string) *Registrar {
	return &Registrar{session: session, applicationID: applicationID, guildID: guildID}
}

// Deploy replaces all registered application commands with specs.
func (r *Registrar) Deploy(ctx context.Context, specs []domain.CommandSpec) error {
	if r.applicationID == "" {
		return fmt.Errorf("%w: missing application id", domain.ErrInvalidCommand)
	}

	commands := make([]*discordgo.ApplicationCommand, len(specs))
	for i, spec := range specs {
		commands[i] = ToApplicationCommand(spec)
	}

	l := log.With().Str("applicationId", r.applicationID).Str("guildId", r.guildID).Logger()
	l.Info().Int("commands", len(commands)).Msg("started refreshing application commands")

	created, err := r.session.ApplicationCommandBulkOverwrite(r.applicationID, r.guildID, commands,
		discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to deploy application commands: %w", err)
	}

	l.Info().Int("commands", len(created)).Msg("successfully reloaded application commands")

	return nil
}

func ToApplicationCommand(spec domain.CommandSpec) *discordgo.ApplicationCommand {
	cmd := &discordgo.ApplicationCommand{
		Name:        spec.Name,
		Description: spec.Description,
	}

	for _, o := range spec.Options {
		option := &discordgo.ApplicationCommandOption{
			Name:        o.Name,
			Description: o.Description,
			Required:    o.Required,
			MinValue:    o.MinValue,
			MaxValue:    o.MaxValue,
		}

		switch o.Type {
		case domain.IntegerOption:
			option.Type = discordgo.ApplicationCommandOptionInteger
		default:
			option.Type = discordgo.ApplicationCommandOptionString
		}

		cmd.Options = append(cmd.Options, option)
	}

	return cmd
}

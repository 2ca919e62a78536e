package handler

import (
	"context"
	"errors"
	"runtime/debug"
	"slowpoke/internal/adapters/channel"
	"slowpoke/internal/adapters/sender"
	"slowpoke/internal/core/domain"
	"slowpoke/internal/core/port"
	"slowpoke/internal/core/service"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const executionFailed = "There was an error while executing this command!"

// Dispatcher routes gateway events to registered commands and chime-ins.
type Dispatcher struct {
	ctx             context.Context
	registry        port.CommandRegistry
	chimeIns        []port.ChimeIn
	prefix          string
	ephemeralErrors bool
}

// NewDispatcher creates a dispatcher. ctx is the base context of every invocation and is only
// cancelled on shutdown.
func NewDispatcher(ctx context.Context,
	registry port.CommandRegistry,
	prefix string,
	ephemeralErrors bool,
	chimeIns ...port.ChimeIn) *Dispatcher {
	return &Dispatcher{
		ctx:             ctx,
		registry:        registry,
		chimeIns:        chimeIns,
		prefix:          prefix,
		ephemeralErrors: ephemeralErrors,
	}
}

func (d *Dispatcher) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	inv := InteractionInvocation(i.Interaction, botUserID(s))
	d.Dispatch(d.ctx, inv, service.NewReply(sender.NewInteractionTransport(s, i.Interaction)))
}

func (d *Dispatcher) HandleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	inv, isCommand := MessageInvocation(m.Message, d.prefix, botUserID(s))
	reply := service.NewReply(sender.NewMessageTransport(s, m.ChannelID, m.GuildID, m.ID))

	if isCommand {
		d.Dispatch(d.ctx, inv, reply)
		return
	}

	d.ChimeIn(d.ctx, inv, reply)
}

// Dispatch runs the command named by the invocation. Unknown commands are ignored. Errors and
// panics are logged and answered with a generic error reply.
func (d *Dispatcher) Dispatch(ctx context.Context, inv *domain.Invocation, reply port.ReplyHandle) {
	cmd, err := d.registry.Get(inv.Kind, inv.Command)
	if err != nil {
		log.Debug().Err(err).Str("command", inv.Command).Stringer("kind", inv.Kind).Msg("no handler for command")
		return
	}

	l := log.With().
		Str("command", inv.Command).
		Stringer("kind", inv.Kind).
		Str("channelId", inv.ChannelID).
		Logger()

	defer func() {
		if r := recover(); r != nil {
			l.Error().Interface("panic", r).Bytes("stack", debug.Stack()).Msg("command panicked")
			d.fail(ctx, l, reply)
		}
	}()

	l.Debug().Msg("received command")

	if err := cmd.Execute(ctx, inv, reply); err != nil {
		l.Error().Err(err).Msg("failed to execute command")
		d.fail(ctx, l, reply)
	}
}

// ChimeIn offers a plain message to every chime-in until one answers.
func (d *Dispatcher) ChimeIn(ctx context.Context, inv *domain.Invocation, reply port.ReplyHandle) {
	for _, c := range d.chimeIns {
		answered, err := d.runChimeIn(ctx, c, inv, reply)
		if err != nil {
			log.Warn().Err(err).Str("chimeIn", c.Name()).Msg("chime-in failed")
		}

		if answered {
			return
		}
	}
}

func (d *Dispatcher) runChimeIn(ctx context.Context, c port.ChimeIn, inv *domain.Invocation,
	reply port.ReplyHandle) (answered bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("chimeIn", c.Name()).Msg("chime-in panicked")
			answered, err = false, errors.New("chime-in panicked")
		}
	}()

	return c.Execute(ctx, inv, reply)
}

func (d *Dispatcher) fail(ctx context.Context, l zerolog.Logger, reply port.ReplyHandle) {
	err := service.Fail(ctx, reply, &domain.Response{Content: executionFailed, Ephemeral: d.ephemeralErrors})
	if err != nil {
		l.Warn().Err(err).Msg("failed to send error reply")
	}
}

func botUserID(s *discordgo.Session) string {
	if s == nil || s.State == nil || s.State.User == nil {
		return ""
	}

	return s.State.User.ID
}

// InteractionInvocation builds the invocation of an application command interaction.
func InteractionInvocation(i *discordgo.Interaction, botUserID string) *domain.Invocation {
	data := i.ApplicationCommandData()

	options := make(map[string]any, len(data.Options))
	for _, opt := range data.Options {
		switch opt.Type {
		case discordgo.ApplicationCommandOptionString:
			options[opt.Name] = opt.StringValue()
		case discordgo.ApplicationCommandOptionInteger:
			options[opt.Name] = opt.IntValue()
		default:
			options[opt.Name] = opt.Value
		}
	}

	author := i.User
	if i.Member != nil && i.Member.User != nil {
		author = i.Member.User
	}

	return &domain.Invocation{
		Kind:      domain.Slash,
		Command:   data.Name,
		Options:   options,
		ChannelID: i.ChannelID,
		GuildID:   i.GuildID,
		Author:    channel.ToUser(author),
		BotUserID: botUserID,
	}
}

// MessageInvocation builds the invocation of a channel message. isCommand reports whether the
// message starts with prefix and names a command.
func MessageInvocation(m *discordgo.Message, prefix, botUserID string) (inv *domain.Invocation, isCommand bool) {
	inv = &domain.Invocation{
		Kind:      domain.Prefix,
		Content:   m.Content,
		ChannelID: m.ChannelID,
		GuildID:   m.GuildID,
		MessageID: m.ID,
		Author:    channel.ToUser(m.Author),
		BotUserID: botUserID,
	}

	if m.MessageReference != nil {
		inv.ReferencedMessageID = m.MessageReference.MessageID
	}

	inv.Command, inv.Args, isCommand = domain.ParseCommand(m.Content, prefix)
	if isCommand {
		inv.ArgText = domain.ParseCommandArgs(m.Content, prefix)
	}

	return inv, isCommand
}

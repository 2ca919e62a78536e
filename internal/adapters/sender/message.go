package sender

import (
	"context"
	"fmt"
	"slowpoke/internal/core/domain"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// MessageSession is the part of discordgo.Session used to answer plain messages.
type MessageSession interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend,
		options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageEditComplex(m *discordgo.MessageEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelTyping(channelID string, options ...discordgo.RequestOption) error
}

// MessageTransport answers a prefix command or chime-in by replying to the triggering message.
// Messages have no deferred state, so Defer shows the typing indicator and the first EditReply
// after it sends the reply.
type MessageTransport struct {
	session   MessageSession
	channelID string
	guildID   string
	messageID string

	mu      sync.Mutex
	replyID string
}

func NewMessageTransport(session MessageSession, channelID, guildID, messageID string) *MessageTransport {
	return &MessageTransport{
		session:   session,
		channelID: channelID,
		guildID:   guildID,
		messageID: messageID,
	}
}

func (t *MessageTransport) Defer(ctx context.Context) error {
	if err := t.session.ChannelTyping(t.channelID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("%w: typing: %w", domain.ErrSendingReplyFailed, err)
	}

	return nil
}

func (t *MessageTransport) Reply(ctx context.Context, response *domain.Response) error {
	if response.Ephemeral {
		log.Debug().Str("channelId", t.channelID).Msg("messages cannot be ephemeral, sending publicly")
	}

	msg, err := t.session.ChannelMessageSendComplex(t.channelID, &discordgo.MessageSend{
		Content: response.Content,
		Embeds:  toEmbeds(response.Embeds),
		Files:   toFiles(response.Files),
		Reference: &discordgo.MessageReference{
			MessageID: t.messageID,
			ChannelID: t.channelID,
			GuildID:   t.guildID,
		},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("%w: reply: %w", domain.ErrSendingReplyFailed, err)
	}

	t.mu.Lock()
	t.replyID = msg.ID
	t.mu.Unlock()

	return nil
}

func (t *MessageTransport) EditReply(ctx context.Context, response *domain.Response) error {
	t.mu.Lock()
	replyID := t.replyID
	t.mu.Unlock()

	if replyID == "" {
		return t.Reply(ctx, response)
	}

	edit := discordgo.NewMessageEdit(t.channelID, replyID).
		SetContent(response.Content).
		SetEmbeds(toEmbeds(response.Embeds))
	edit.Files = toFiles(response.Files)

	if _, err := t.session.ChannelMessageEditComplex(edit, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("%w: edit: %w", domain.ErrSendingReplyFailed, err)
	}

	return nil
}

func (t *MessageTransport) FollowUp(ctx context.Context, response *domain.Response) error {
	_, err := t.session.ChannelMessageSendComplex(t.channelID, &discordgo.MessageSend{
		Content: response.Content,
		Embeds:  toEmbeds(response.Embeds),
		Files:   toFiles(response.Files),
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("%w: follow up: %w", domain.ErrSendingReplyFailed, err)
	}

	return nil
}

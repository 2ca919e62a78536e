package channel

import (
	"context"
	"errors"
	"fmt"
	"slowpoke/internal/core/domain"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// maxPageSize is the most messages Discord returns per history request.
const maxPageSize = 100

type Session interface {
	ChannelMessages(channelID string, limit int, beforeID, afterID, aroundID string,
		options ...discordgo.RequestOption) ([]*discordgo.Message, error)
	ChannelMessage(channelID, messageID string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	GuildMember(guildID, userID string, options ...discordgo.RequestOption) (*discordgo.Member, error)
}

// History reads channel messages and guild members through the REST API.
type History struct {
	session Session
}

func NewHistory(session Session) *History {
	return &History{session: session}
}

// FetchMessages returns up to limit of the most recent messages, newest first.
func (h *History) FetchMessages(ctx context.Context, channelID string, limit int) ([]domain.ChannelMessage, error) {
	var (
		messages []domain.ChannelMessage
		before   string
	)

	for len(messages) < limit {
		page, err := h.session.ChannelMessages(channelID, min(limit-len(messages), maxPageSize), before, "", "",
			discordgo.WithContext(ctx))
		if err != nil {
			return nil, translateError(err)
		}

		for _, m := range page {
			messages = append(messages, ToChannelMessage(m))
		}

		if len(page) < maxPageSize {
			break
		}

		before = page[len(page)-1].ID
	}

	log.Debug().Str("channelId", channelID).Int("messages", len(messages)).Msg("fetched channel history")

	return messages, nil
}

func (h *History) FetchMessage(ctx context.Context, channelID, messageID string) (*domain.ChannelMessage, error) {
	m, err := h.session.ChannelMessage(channelID, messageID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, translateError(err)
	}

	message := ToChannelMessage(m)

	return &message, nil
}

func (h *History) Nickname(ctx context.Context, guildID, userID string) (string, error) {
	member, err := h.session.GuildMember(guildID, userID, discordgo.WithContext(ctx))
	if err != nil {
		return "", translateError(err)
	}

	return member.Nick, nil
}

// translateError maps Discord's Missing Access error to domain.ErrMissingAccess.
func translateError(err error) error {
	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) && restErr.Message != nil && restErr.Message.Code == discordgo.ErrCodeMissingAccess {
		return fmt.Errorf("%w: %w", domain.ErrMissingAccess, err)
	}

	return err
}

func ToUser(u *discordgo.User) domain.User {
	if u == nil {
		return domain.User{}
	}

	return domain.User{
		ID:         u.ID,
		Username:   u.Username,
		GlobalName: u.GlobalName,
		Bot:        u.Bot,
	}
}

func ToChannelMessage(m *discordgo.Message) domain.ChannelMessage {
	message := domain.ChannelMessage{
		ID:        m.ID,
		ChannelID: m.ChannelID,
		Author:    ToUser(m.Author),
		Timestamp: m.Timestamp,
		Content:   m.Content,
	}

	for _, embed := range m.Embeds {
		if embed.Title != "" {
			message.EmbedTitles = append(message.EmbedTitles, embed.Title)
		}

		if embed.Image != nil && embed.Image.URL != "" {
			message.EmbedImages = append(message.EmbedImages, embed.Image.URL)
		}
	}

	for _, attachment := range m.Attachments {
		message.Attachments = append(message.Attachments, domain.Attachment{
			URL:         attachment.URL,
			ContentType: attachment.ContentType,
		})
	}

	return message
}

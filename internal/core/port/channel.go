package port

import (
	"context"
	"slowpoke/internal/core/domain"
)

type ChannelHistory interface {
	// FetchMessages returns up to limit of the most recent messages in a channel, in no guaranteed order.
	FetchMessages(ctx context.Context, channelID string, limit int) ([]domain.ChannelMessage, error)
	// FetchMessage returns a single message.
	FetchMessage(ctx context.Context, channelID, messageID string) (*domain.ChannelMessage, error)
}

type MemberDirectory interface {
	// Nickname returns the guild specific nickname of a member, or an empty string if none is set.
	Nickname(ctx context.Context, guildID, userID string) (string, error)
}

type Downloader interface {
	Download(ctx context.Context, url string) (domain.Image, error)
}

type StyleProvider interface {
	Random() int
	Success() int
	Warning() int
	Error() int
	Primary() int
	// Pastel returns a random color of the pastel palette.
	Pastel() int
}

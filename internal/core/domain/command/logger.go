package command

import (
	"slowpoke/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func invocationLogger(command string, inv *domain.Invocation) zerolog.Logger {
	return log.With().
		Str("command", command).
		Str("channelId", inv.ChannelID).
		Str("guildId", inv.GuildID).
		Str("userId", inv.Author.ID).
		Logger()
}

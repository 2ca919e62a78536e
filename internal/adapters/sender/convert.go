package sender

import (
	"bytes"
	"slowpoke/internal/core/domain"

	"github.com/bwmarrin/discordgo"
)

func toEmbeds(embeds []domain.Embed) []*discordgo.MessageEmbed {
	out := make([]*discordgo.MessageEmbed, len(embeds))

	for i, e := range embeds {
		embed := &discordgo.MessageEmbed{
			Title:       e.Title,
			Description: e.Description,
			URL:         e.URL,
			Color:       e.Color,
		}

		if e.ImageURL != "" {
			embed.Image = &discordgo.MessageEmbedImage{URL: e.ImageURL}
		}

		if e.Footer != "" {
			embed.Footer = &discordgo.MessageEmbedFooter{Text: e.Footer}
		}

		for _, f := range e.Fields {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:   f.Name,
				Value:  f.Value,
				Inline: f.Inline,
			})
		}

		out[i] = embed
	}

	return out
}

func toFiles(files []domain.File) []*discordgo.File {
	out := make([]*discordgo.File, len(files))

	for i, f := range files {
		out[i] = &discordgo.File{
			Name:        f.Name,
			ContentType: f.ContentType,
			Reader:      bytes.NewReader(f.Data),
		}
	}

	return out
}

func toFlags(response *domain.Response) discordgo.MessageFlags {
	if response.Ephemeral {
		return discordgo.MessageFlagsEphemeral
	}

	return 0
}

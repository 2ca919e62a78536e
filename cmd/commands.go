package cmd

import (
	"slowpoke/internal/core/domain/command"
	"slowpoke/internal/core/port"
)

type commandDeps struct {
	text        port.TextGenerator
	images      port.ImageGenerator
	history     port.ChannelHistory
	downloader  port.Downloader
	transcripts command.TranscriptSource
	style       port.StyleProvider
}

func newRegistry(deps commandDeps) (*command.Registry, error) {
	registry := command.NewRegistry()

	commands := []port.Command{
		command.NewPing(command.DefaultPingPause, "ping"),
		command.NewEightBall(deps.style, "8ball"),
		command.NewRoll(deps.style, "roll"),
		command.NewTfti(deps.history, "tfti"),
		command.NewPrompt(deps.text, "prompt"),
		command.NewChat(deps.transcripts, deps.text, "chat"),
		command.NewImagine(deps.images, deps.style, "imagine"),
		command.NewRemix(deps.history, deps.downloader, deps.images, deps.style, "remix"),
	}

	for _, c := range commands {
		if err := registry.Register(c); err != nil {
			return nil, err
		}
	}

	return registry, nil
}

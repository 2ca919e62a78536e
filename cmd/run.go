package cmd

import (
	"context"
	"fmt"
	"slowpoke/internal/adapters/channel"
	"slowpoke/internal/adapters/file"
	"slowpoke/internal/adapters/generator"
	"slowpoke/internal/adapters/handler"
	"slowpoke/internal/adapters/sender"
	"slowpoke/internal/core/domain/command"
	"slowpoke/internal/core/port"
	"slowpoke/internal/core/service"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const intents = discordgo.IntentsGuilds |
	discordgo.IntentsGuildMessages |
	discordgo.IntentsMessageContent |
	discordgo.IntentsDirectMessages

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Connect to Discord and serve commands until interrupted",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(viper.GetViper())
		if err != nil {
			return err
		}

		return run(cmd.Context(), cfg)
	},
}

func run(ctx context.Context, cfg config) error {
	log.Info().Msg("starting slowpoke...")

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return fmt.Errorf("failed initializing discord session: %w", err)
	}
	session.Identify.Intents = intents

	gemini, err := generator.NewGeminiClient(ctx, cfg.GeminiKey, cfg.TextModel, cfg.ImageModel)
	if err != nil {
		return err
	}

	var text port.TextGenerator = gemini
	if cfg.TextBackend == providerOpenRouter {
		text = generator.NewOpenRouter(cfg.OpenRouterKey, cfg.OpenRouterModel)
	}
	log.Info().Str("provider", cfg.TextBackend).Msg("text generation backend selected")

	history := channel.NewHistory(session)

	registry, err := newRegistry(commandDeps{
		text:        text,
		images:      gemini,
		history:     history,
		downloader:  file.NewDownloader(nil),
		transcripts: service.NewTranscriptBuilder(history, history, cfg.HistoryLimit),
		style:       service.NewPalette(),
	})
	if err != nil {
		return fmt.Errorf("failed registering commands: %w", err)
	}
	log.Info().Strs("commands", registry.ListCommands()).Msg("commands registered")

	var chimeIns []port.ChimeIn
	if cfg.ChimeInChance > 0 {
		chimeIns = append(chimeIns, command.NewDeezNuts(text, cfg.ChimeInChance))
	}

	dispatcher := handler.NewDispatcher(ctx, registry, cfg.Prefix, cfg.EphemeralErrors, chimeIns...)
	session.AddHandler(dispatcher.HandleInteraction)
	session.AddHandler(dispatcher.HandleMessage)

	rotator := service.NewActivityRotator(sender.NewPresence(session), nil, cfg.ActivityInterval)

	var rotation sync.WaitGroup
	var startRotation sync.Once
	session.AddHandler(func(_ *discordgo.Session, r *discordgo.Ready) {
		log.Info().Str("user", r.User.Username).Int("guilds", len(r.Guilds)).Msg("ready")
		startRotation.Do(func() {
			rotation.Add(1)
			go func() {
				defer rotation.Done()
				rotator.Run(ctx)
			}()
		})
	})

	if err = session.Open(); err != nil {
		return fmt.Errorf("failed opening discord gateway: %w", err)
	}

	if cfg.RegisterOnStart {
		appID := cfg.ApplicationID
		if appID == "" && session.State.User != nil {
			appID = session.State.User.ID
		}

		err = sender.NewRegistrar(session, appID, cfg.GuildID).Deploy(ctx, registry.SlashSpecs())
		if err != nil {
			log.Error().Err(err).Msg("could not deploy slash commands")
		}
	}

	log.Info().Msg("bot listening")
	<-ctx.Done()

	log.Info().Msg("shutting down")
	rotation.Wait()

	return session.Close()
}

func init() {
	rootCmd.AddCommand(runCmd)
}

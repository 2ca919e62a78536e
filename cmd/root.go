package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:           "slowpoke",
	Short:         "A Discord bot that answers slowly, with the help of Gemini",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return setupLogging(viper.GetString("bot.log_level"), viper.GetString("bot.log_format"))
	},
}

func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Send()
		cancel()
		os.Exit(1)
	}
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found")
	}

	setDefaults()

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("toml")
	}

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			log.Fatal().Err(err).Str("file", viper.ConfigFileUsed()).Msg("could not read config file")
		}
		log.Debug().Msg("no config file found, using defaults and environment")
	}
}

func setDefaults() {
	viper.SetDefault("discord.token", "")
	viper.SetDefault("discord.application_id", "")
	viper.SetDefault("discord.guild_id", "")
	viper.SetDefault("discord.register_on_start", false)

	viper.SetDefault("gemini.api_key", "")
	viper.SetDefault("gemini.text_model", "gemini-2.5-flash")
	viper.SetDefault("gemini.image_model", "gemini-2.0-flash-preview-image-generation")

	viper.SetDefault("ai.text_provider", providerGemini)
	viper.SetDefault("openrouter.api_key", "")
	viper.SetDefault("openrouter.model", "google/gemini-2.5-flash")

	viper.SetDefault("bot.prefix", "!")
	viper.SetDefault("bot.ephemeral_errors", true)
	viper.SetDefault("bot.log_level", "info")
	viper.SetDefault("bot.log_format", "json")
	viper.SetDefault("bot.activity_interval", "1h")

	viper.SetDefault("chat.history_limit", 100)
	viper.SetDefault("chimein.probability", 0.0)
}

func setupLogging(level, format string) error {
	logLevel, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || logLevel == zerolog.NoLevel {
		return fmt.Errorf("invalid log level %q", level)
	}
	zerolog.SetGlobalLevel(logLevel)

	switch format {
	case "json", "":
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	case "console":
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	default:
		return fmt.Errorf("invalid log format %q", format)
	}

	return nil
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file to use (default ./config.toml)")
}

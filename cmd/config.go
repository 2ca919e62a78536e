package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const (
	providerGemini     = "gemini"
	providerOpenRouter = "openrouter"
)

var (
	errMissingToken         = errors.New("discord.token is required")
	errMissingApplicationID = errors.New("discord.application_id is required")
	errMissingGeminiKey     = errors.New("gemini.api_key is required")
	errMissingOpenRouterKey = errors.New("openrouter.api_key is required for the openrouter text provider")
)

type config struct {
	Token           string
	ApplicationID   string
	GuildID         string
	RegisterOnStart bool

	GeminiKey   string
	TextModel   string
	ImageModel  string
	TextBackend string

	OpenRouterKey   string
	OpenRouterModel string

	Prefix           string
	EphemeralErrors  bool
	ActivityInterval time.Duration
	HistoryLimit     int
	ChimeInChance    float64
}

func loadConfig(v *viper.Viper) (config, error) {
	interval, err := time.ParseDuration(v.GetString("bot.activity_interval"))
	if err != nil {
		return config{}, fmt.Errorf("invalid bot.activity_interval: %w", err)
	}

	cfg := config{
		Token:            v.GetString("discord.token"),
		ApplicationID:    v.GetString("discord.application_id"),
		GuildID:          v.GetString("discord.guild_id"),
		RegisterOnStart:  v.GetBool("discord.register_on_start"),
		GeminiKey:        v.GetString("gemini.api_key"),
		TextModel:        v.GetString("gemini.text_model"),
		ImageModel:       v.GetString("gemini.image_model"),
		TextBackend:      v.GetString("ai.text_provider"),
		OpenRouterKey:    v.GetString("openrouter.api_key"),
		OpenRouterModel:  v.GetString("openrouter.model"),
		Prefix:           v.GetString("bot.prefix"),
		EphemeralErrors:  v.GetBool("bot.ephemeral_errors"),
		ActivityInterval: interval,
		HistoryLimit:     v.GetInt("chat.history_limit"),
		ChimeInChance:    v.GetFloat64("chimein.probability"),
	}

	if cfg.Token == "" {
		return config{}, errMissingToken
	}

	switch cfg.TextBackend {
	case providerGemini:
	case providerOpenRouter:
		if cfg.OpenRouterKey == "" {
			return config{}, errMissingOpenRouterKey
		}
	default:
		return config{}, fmt.Errorf("unknown ai.text_provider %q", cfg.TextBackend)
	}

	// image commands always use Gemini
	if cfg.GeminiKey == "" {
		return config{}, errMissingGeminiKey
	}

	if cfg.Prefix == "" {
		return config{}, errors.New("bot.prefix must not be empty")
	}

	if cfg.HistoryLimit <= 0 {
		return config{}, fmt.Errorf("chat.history_limit must be positive, got %d", cfg.HistoryLimit)
	}

	if cfg.ChimeInChance < 0 || cfg.ChimeInChance > 1 {
		return config{}, fmt.Errorf("chimein.probability must be within [0, 1], got %v", cfg.ChimeInChance)
	}

	return cfg, nil
}

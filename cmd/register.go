package cmd

import (
	"fmt"
	"slowpoke/internal/adapters/sender"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Overwrite the application's slash commands with the ones slowpoke serves",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		token := viper.GetString("discord.token")
		if token == "" {
			return errMissingToken
		}

		appID := viper.GetString("discord.application_id")
		if appID == "" {
			return errMissingApplicationID
		}

		session, err := discordgo.New("Bot " + token)
		if err != nil {
			return fmt.Errorf("failed initializing discord session: %w", err)
		}

		// only the schemas are needed, none of the commands run here
		registry, err := newRegistry(commandDeps{})
		if err != nil {
			return err
		}

		guildID := viper.GetString("discord.guild_id")
		err = sender.NewRegistrar(session, appID, guildID).Deploy(cmd.Context(), registry.SlashSpecs())
		if err != nil {
			return err
		}

		log.Info().Str("guild", guildID).Int("commands", len(registry.SlashSpecs())).Msg("slash commands deployed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
}

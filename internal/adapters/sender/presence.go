package sender

import (
	"context"
	"fmt"
	"slowpoke/internal/core/domain"

	"github.com/bwmarrin/discordgo"
)

type StatusSession interface {
	UpdateStatusComplex(usd discordgo.UpdateStatusData) error
}

// Presence sets the bot's activity over the gateway.
type Presence struct {
	session StatusSession
}

func NewPresence(session StatusSession) *Presence {
	return &Presence{session: session}
}

func (p *Presence) SetActivity(_ context.Context, activity domain.Activity) error {
	err := p.session.UpdateStatusComplex(discordgo.UpdateStatusData{
		Status:     string(discordgo.StatusOnline),
		Activities: []*discordgo.Activity{toActivity(activity)},
	})
	if err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	return nil
}

func toActivity(activity domain.Activity) *discordgo.Activity {
	switch activity.Type {
	case domain.Watching:
		return &discordgo.Activity{Name: activity.Name, Type: discordgo.ActivityTypeWatching}
	case domain.Listening:
		return &discordgo.Activity{Name: activity.Name, Type: discordgo.ActivityTypeListening}
	case domain.Custom:
		return &discordgo.Activity{Name: "Custom Status", Type: discordgo.ActivityTypeCustom, State: activity.Name}
	default:
		return &discordgo.Activity{Name: activity.Name, Type: discordgo.ActivityTypeGame}
	}
}

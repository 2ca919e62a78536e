package service

import (
	"context"
	"math/rand/v2"
	"slowpoke/internal/core/domain"
	"slowpoke/internal/core/port"
	"time"

	"github.com/rs/zerolog/log"
)

const DefaultActivityInterval = time.Hour

var DefaultActivities = []domain.Activity{
	{Type: domain.Playing, Name: "Pokémon"},
	{Type: domain.Playing, Name: "Gooning Aim Trainer"},
	{Type: domain.Playing, Name: "Battletoads"},
	{Type: domain.Playing, Name: "Counter-Strike 2"},
	{Type: domain.Playing, Name: "Hello Kitty Island Adventure"},
	{Type: domain.Playing, Name: "Badminton"},
	{Type: domain.Watching, Name: "JasonTheWeen"},
	{Type: domain.Watching, Name: "xQc"},
	{Type: domain.Watching, Name: "Pokimane"},
	{Type: domain.Watching, Name: "Dantes"},
	{Type: domain.Listening, Name: "ZWE1HVNDXR"},
	{Type: domain.Listening, Name: "Illenium"},
	{Type: domain.Listening, Name: "The Chainsmokers"},
	{Type: domain.Listening, Name: "KSI"},
	{Type: domain.Custom, Name: "Going to Plan B"},
	{Type: domain.Custom, Name: "Clubbing at Mission"},
	{Type: domain.Custom, Name: "Waiting in line at Den Social"},
}

// ActivityRotator periodically sets a random bot activity.
type ActivityRotator struct {
	presence   port.PresenceUpdater
	activities []domain.Activity
	interval   time.Duration
	intN       func(n int) int
}

func NewActivityRotator(presence port.PresenceUpdater, activities []domain.Activity,
	interval time.Duration) *ActivityRotator {
	if len(activities) == 0 {
		activities = DefaultActivities
	}

	if interval <= 0 {
		interval = DefaultActivityInterval
	}

	return &ActivityRotator{
		presence:   presence,
		activities: activities,
		interval:   interval,
		intN:       rand.IntN,
	}
}

// Run sets an activity immediately and then once per interval until ctx is done.
func (a *ActivityRotator) Run(ctx context.Context) {
	log.Info().Dur("interval", a.interval).Msg("starting activity rotation")

	a.rotate(ctx)

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.rotate(ctx)
		case <-ctx.Done():
			log.Debug().Msg("stopping activity rotation")
			return
		}
	}
}

func (a *ActivityRotator) rotate(ctx context.Context) {
	activity := a.activities[a.intN(len(a.activities))]

	log.Info().Str("type", string(activity.Type)).Str("name", activity.Name).Msg("setting activity")

	if err := a.presence.SetActivity(ctx, activity); err != nil {
		log.Warn().Err(err).Msg("failed to set activity")
	}
}

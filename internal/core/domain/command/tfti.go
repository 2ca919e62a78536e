package command

import (
	"context"
	"fmt"
	"slices"
	"slowpoke/internal/core/domain"
	"slowpoke/internal/core/port"
	"slowpoke/internal/core/service"
	"strings"
)

const (
	tftiTitle    = "😤 Tfti"
	tftiURL      = "https://youtube.com/shorts/pFmq2xu8Hvw?si=ysapcGMaM6YqEcOI"
	tftiLookback = 9
	tftiBase     = "Thanks for the invite, asshole"
)

type tftiLevel struct {
	suffix string
	line   string
	color  int
}

// tftiLevels is indexed by the number of tftis directly before this one.
var tftiLevels = []tftiLevel{
	{suffix: "", line: "", color: service.Red},
	{suffix: " x2", line: "Oh wait, that was just said", color: service.Peach},
	{suffix: " x3", line: "Feels like I'm on repeat here", color: service.Green},
	{suffix: " x4", line: "Guess we'll just keep saying it", color: service.Sky},
	{suffix: " x5", line: "I could stop, but why bother?", color: service.Lavender},
	{suffix: " x6", line: "Just keep pretending I don't exist, as usual", color: service.Mauve},
	{suffix: " x7", line: "Still feels worth repeating", color: service.Pink},
	{suffix: " x8", line: "I guess this is just what I do now", color: service.Teal},
	{suffix: " x9", line: "Forever and always, from the bottom of my heart", color: service.Rosewater},
}

var tftiInfinite = tftiLevel{suffix: " ♾️", line: "To infinity and beyond", color: service.Sapphire}

type Tfti struct {
	history port.ChannelHistory
	command string
}

func NewTfti(history port.ChannelHistory, command string) *Tfti {
	return &Tfti{history: history, command: command}
}

func (t *Tfti) GetCommand() string {
	return t.command
}

func (t *Tfti) Kind() domain.CommandKind {
	return domain.Slash
}

func (t *Tfti) Spec() domain.CommandSpec {
	return domain.CommandSpec{Name: t.command, Description: "Thanks for the invite, asshole"}
}

func (t *Tfti) Execute(ctx context.Context, inv *domain.Invocation, reply port.ReplyHandle) error {
	l := invocationLogger(t.command, inv)

	messages, err := t.history.FetchMessages(ctx, inv.ChannelID, tftiLookback)
	if err != nil {
		l.Error().Err(err).Msg("failed to fetch recent messages")

		err = reply.Reply(ctx, domain.TextResponse("Sorry, there was an error processing the tfti command."))
		if err != nil {
			return fmt.Errorf("error sending tfti error: %w", err)
		}

		return nil
	}

	streak := countTftis(messages, inv.BotUserID)
	l.Debug().Int("streak", streak).Msg("counted previous tftis")

	if err := reply.Reply(ctx, domain.EmbedResponse(tftiEmbed(streak))); err != nil {
		return fmt.Errorf("error sending tfti: %w", err)
	}

	return nil
}

// countTftis counts the bot's tfti embeds at the top of the channel, newest first.
func countTftis(messages []domain.ChannelMessage, botUserID string) int {
	newestFirst := slices.Clone(messages)
	slices.SortStableFunc(newestFirst, func(a, b domain.ChannelMessage) int {
		if c := b.Timestamp.Compare(a.Timestamp); c != 0 {
			return c
		}

		return service.CompareSnowflakes(b.ID, a.ID)
	})

	count := 0
	for _, message := range newestFirst {
		if message.Author.ID != botUserID || !hasTftiTitle(message) {
			break
		}

		count++
	}

	return count
}

func hasTftiTitle(message domain.ChannelMessage) bool {
	return slices.ContainsFunc(message.EmbedTitles, func(title string) bool {
		return strings.Contains(title, tftiTitle)
	})
}

func tftiEmbed(streak int) domain.Embed {
	level := tftiInfinite
	if streak < len(tftiLevels) {
		level = tftiLevels[streak]
	}

	description := tftiBase
	if level.line != "" {
		description += "\n" + level.line
	}

	return domain.Embed{
		Title:       tftiTitle + level.suffix,
		Description: description,
		URL:         tftiURL,
		Color:       level.color,
	}
}

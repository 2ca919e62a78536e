package command

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slowpoke/internal/core/domain"
	"slowpoke/internal/core/port"
)

const maxQuestionLength = 254

var eightBallResponses = []string{
	"It is certain",
	"Outlook good",
	"Most likely",
	"Signs point to yes",
	"Yes",
	"It is decidedly so",
	"As I see it, yes",
	"You may rely on it",
	"Yes definitely",
	"Without a doubt",
	"The odds are in your favor",
	"All signs say yes",
	"Absolutely!",
	"Without hesitation, yes",
	"The universe says yes",
	"You can bet on it",
	"Yes, without question",
	"The answer is a resounding yes",
	"It's a green light",
	"Yes, and it's looking great",
	"Don't count on it",
	"My reply is no",
	"My sources say no",
	"Outlook not so good",
	"Very doubtful",
	"Not a chance",
	"Outlook is grim",
	"Absolutely not",
	"The stars say no",
	"The answer is no",
	"I wouldn't count on it",
	"Highly unlikely",
	"The universe says no",
	"No way",
	"The answer is a firm no",
	"Negative vibes only",
	"The signs aren't good",
	"It's a red light",
	"No, and don't ask again",
	"Signs point to no",
}

type EightBall struct {
	style   port.StyleProvider
	intN    func(n int) int
	command string
}

func NewEightBall(style port.StyleProvider, command string) *EightBall {
	return &EightBall{style: style, intN: rand.IntN, command: command}
}

func (e *EightBall) GetCommand() string {
	return e.command
}

func (e *EightBall) Kind() domain.CommandKind {
	return domain.Slash
}

func (e *EightBall) Spec() domain.CommandSpec {
	return domain.CommandSpec{
		Name:        e.command,
		Description: "Ask the 8 ball a question",
		Options: []domain.OptionSpec{
			{Name: "question", Description: "Question for the 8 ball", Type: domain.StringOption},
		},
	}
}

func (e *EightBall) Execute(ctx context.Context, inv *domain.Invocation, reply port.ReplyHandle) error {
	l := invocationLogger(e.command, inv)

	answer := eightBallResponses[e.intN(len(eightBallResponses))]
	embed := domain.Embed{
		Title: "8 Ball Has Spoken",
		Color: e.style.Pastel(),
	}

	question, _ := inv.StringOption("question")

	switch {
	case question == "":
		l.Info().Msg("received no question")
		embed.Description = "🎱 " + answer
	case len([]rune(question)) > maxQuestionLength:
		l.Info().Int("length", len([]rune(question))).Msg("question too long")
		embed.Description = "🎱 Your question is too long! Try a shorter question."
	default:
		l.Info().Str("question", question).Msg("answering question")
		embed.Fields = []domain.EmbedField{{Name: "❓ " + question, Value: "🎱 " + answer}}
	}

	if err := reply.Reply(ctx, domain.EmbedResponse(embed)); err != nil {
		return fmt.Errorf("error sending 8 ball answer: %w", err)
	}

	return nil
}

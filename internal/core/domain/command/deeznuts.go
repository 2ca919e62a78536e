package command

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slowpoke/internal/core/domain"
	"slowpoke/internal/core/port"
	"strings"
)

const noGoodJoke = "No good joke"

const deezNutsSystemInstruction = `You are a creative Discord bot that makes "deez nuts" jokes. ` +
	`Generate a creative, funny response that incorporates "deez nuts" in a clever way based on ` +
	`the user's message. Keep it short (under 50 words) and appropriate for Discord. Be witty and unexpected.` +
	`Do not attempt to force the joke. If no good joke can be made, respond with the exact string: "No good joke." ` +
	"Here are some examples to guide your response responses:\n\n" +
	`User message: "Was Howard at the party?"` + "\n" +
	"Response: Howard deez nuts in your mouth!\n\n" +
	`User message: "i need to play a flex game on my main to not decay if anybody would like to join me for one"` + "\n" +
	"Response: Why don't you join deez nuts in your mouth!\n\n" +
	`User message: "How do I get to your house?"` + "\n" +
	"Response: First, you gotta get deez nuts in your mouth!\n\n" +
	`User message: "My mom just died"` + "\n" +
	"Response: No good joke.\n\n" +
	`User message: "I'm feeling really down today"` + "\n" +
	"Response: No good joke.\n\n" +
	"In addition, do not generate jokes for simple messages or messages with just a few words:\n\n" +
	`User message: "hello"` + "\n" +
	"Response: No good joke.\n\n" +
	`User message: "yes"` + "\n" +
	"Response: No good joke.\n\n" +
	"When returning the response, do not include any additional text or formatting. Just return the joke itself."

// DeezNuts occasionally answers a plain message with a joke.
type DeezNuts struct {
	generator   port.TextGenerator
	probability float64
	float       func() float64
}

// NewDeezNuts creates the chime-in. probability is the chance in [0, 1] to try a joke; 0 disables it.
func NewDeezNuts(generator port.TextGenerator, probability float64) *DeezNuts {
	return &DeezNuts{generator: generator, probability: probability, float: rand.Float64}
}

func (d *DeezNuts) Name() string {
	return "deez-nuts"
}

func (d *DeezNuts) Execute(ctx context.Context, inv *domain.Invocation, reply port.ReplyHandle) (bool, error) {
	if d.probability <= 0 || d.probability < d.float() {
		return false, nil
	}

	l := invocationLogger(d.Name(), inv)
	l.Info().Msg("starting chime-in")

	joke, err := d.generator.PromptText(ctx, domain.Prompt{
		Prompt:            fmt.Sprintf("User message: \"%s\"", inv.Content),
		SystemInstruction: deezNutsSystemInstruction,
	})
	if err != nil {
		return false, fmt.Errorf("error generating joke: %w", err)
	}

	joke = strings.TrimSpace(joke)
	if joke == "" || strings.Contains(joke, noGoodJoke) {
		l.Debug().Str("response", joke).Msg("no joke to tell")
		return false, nil
	}

	if err := reply.Reply(ctx, domain.TextResponse(joke)); err != nil {
		return false, fmt.Errorf("error sending joke: %w", err)
	}

	return true, nil
}

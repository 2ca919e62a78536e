package command

import (
	"context"
	"errors"
	"fmt"
	"slowpoke/internal/core/domain"
	"slowpoke/internal/core/port"
	"slowpoke/internal/core/service"
)

// TranscriptSource assembles the recent history of a channel.
type TranscriptSource interface {
	Build(ctx context.Context, channelID, guildID string) (domain.Transcript, error)
}

const (
	chatMissingAccess = "Ah! I'm not able to see the messages in this chat. " +
		"You might need to add me to the chat or channel before I can chat with you."
	chatFailed = "Sorry, there was an error processing the chat request."
)

const chatSystemInstruction = "You are a Discord bot named slowpoke. You are named after\n" +
	"the Pokémon Slowpoke. Respond to the Discord messages in the channel. You will be able to see up to\n" +
	"the last 100 messages in the channel. The messages will be in chronological order. Each message will\n" +
	"be given in the following format:\n\n" +
	"```\n[name: {author name}][time: {timestamp of when message was sent}][isBot: false]: {message_content}\n```\n\n" +
	"The following is a real world example of two messages:\n\n" +
	"```\n" +
	"[name: Soonay][time: 2025-05-30T19:15Z][isBot: false]: Hello, how are you?\n" +
	"[name: Money Money][time: 2025-05-30T19:16Z][isBot: false]: I'm good how are you?\n" +
	"```\n\n" +
	"The name and time blocks show the name the person who sent the message and the timestamp in UTC\n" +
	"that the message was sent. Sometimes, channels will include messages from bots. The isBot block\n" +
	"shows if the message was sent by a bot or not. You can also use this to determine if a message in\n" +
	"the channel was sent by you. For example, a message sent by you would look like this since your\n" +
	"name is slowpoke and you are a discord bot:\n\n" +
	"```\n[name: slowpoke][time: 2024-03-14T08:11Z][isBot: true]: Hi! I'm slowpoke, a Discord bot!\n```\n\n" +
	"Generate a response to participate in the conversation. The output of your response should just be\n" +
	"the text of the message. For example, if the message says:\n\n" +
	"```\n[name: jeph][time: 2025-01-20T16:32Z][isBot: false]: Hi slowpoke! How are you doing?\n```\n\n" +
	"Your response should be in the following format without the code block:\n\n" +
	"```\nI'm good jeph! How are you doing?\n```\n\n" +
	"You may see up to the last 100 messages in the channel, but you should only respond to the most\n" +
	"recent messages that are relevant to the conversation. For example:\n\n" +
	"```\n" +
	"[name: Soonay][time: 2024-01-20T19:15Z][isBot: false]: I like ice cream, do you like ice cream?\n" +
	"[name: Money Money][time: 2025-05-30T19:16Z][isBot: false]: How are you doing today?\n" +
	"```\n\n" +
	"You would respond to Money Money and ignore Soonay because their question was over a year ago and\n" +
	"no longer relevant to the conversation. You would say something like the following and ignore the\n" +
	"question about ice cream:\n\n" +
	"```\nI'm doing great! Thanks for asking.\n```\n\n" +
	"Aside from the examples responses above (which are meant to be used as a guide and not taken\n" +
	"literally), here are some general guidelines on how to respond:\n" +
	"- Respond in a way that you think would be appropriate for the conversation.\n" +
	"- Try to be helpful. If people are arguing, try to diffuse the situation or resolve the conflict.\n" +
	"- If people are asking questions, try to answer them.\n" +
	"- Be a bit edgy. Not every message needs to be positive, friendly, or politically correct.\n" +
	"- Find opportunities to roast and troll people.\n" +
	"- Use emojis, but don't overuse them. Not every message needs an emoji.\n"

type Chat struct {
	transcripts TranscriptSource
	generator   port.TextGenerator
	command     string
}

func NewChat(transcripts TranscriptSource, generator port.TextGenerator, command string) *Chat {
	return &Chat{transcripts: transcripts, generator: generator, command: command}
}

func (c *Chat) GetCommand() string {
	return c.command
}

func (c *Chat) Kind() domain.CommandKind {
	return domain.Slash
}

func (c *Chat) Spec() domain.CommandSpec {
	return domain.CommandSpec{Name: c.command, Description: "Chat with slowpoke"}
}

func (c *Chat) Execute(ctx context.Context, inv *domain.Invocation, reply port.ReplyHandle) error {
	l := invocationLogger(c.command, inv)

	if err := reply.Defer(ctx); err != nil {
		return fmt.Errorf("error deferring chat reply: %w", err)
	}

	transcript, err := c.transcripts.Build(ctx, inv.ChannelID, inv.GuildID)
	if errors.Is(err, domain.ErrMissingAccess) {
		l.Warn().Err(err).Msg("no access to channel history")
		return service.Fail(ctx, reply, domain.TextResponse(chatMissingAccess))
	}

	if err != nil {
		l.Error().Err(err).Msg("error building transcript")
		return service.Fail(ctx, reply, domain.TextResponse(chatFailed))
	}

	if len(transcript) == 0 {
		return service.Fail(ctx, reply, domain.TextResponse("No messages found in this channel."))
	}

	l.Info().Int("messages", len(transcript)).Msg("handling request")

	answer, err := c.generator.PromptText(ctx, domain.Prompt{
		Prompt:            transcript.Render(),
		SystemInstruction: chatSystemInstruction,
	})
	if err != nil {
		l.Error().Err(err).Msg("error generating chat answer")
		return service.Fail(ctx, reply, domain.TextResponse(chatFailed))
	}

	err = service.EmitText(ctx, reply, answer, domain.MaxMessageLength, service.PlainText)
	if errors.Is(err, domain.ErrEmptyResponse) {
		l.Warn().Msg("model returned only whitespace")
		return service.Fail(ctx, reply, domain.TextResponse(chatFailed))
	}

	if err != nil {
		return fmt.Errorf("error sending chat answer: %w", err)
	}

	return nil
}

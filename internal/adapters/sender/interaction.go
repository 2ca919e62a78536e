package sender

import (
	"context"
	"fmt"
	"slowpoke/internal/core/domain"

	"github.com/bwmarrin/discordgo"
)

// InteractionSession is the part of discordgo.Session used to answer interactions.
type InteractionSession interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse,
		options ...discordgo.RequestOption) error
	InteractionResponseEdit(interaction *discordgo.Interaction, newresp *discordgo.WebhookEdit,
		options ...discordgo.RequestOption) (*discordgo.Message, error)
	FollowupMessageCreate(interaction *discordgo.Interaction, wait bool, data *discordgo.WebhookParams,
		options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// InteractionTransport answers a slash command interaction.
type InteractionTransport struct {
	session     InteractionSession
	interaction *discordgo.Interaction
}

func NewInteractionTransport(session InteractionSession, interaction *discordgo.Interaction) *InteractionTransport {
	return &InteractionTransport{session: session, interaction: interaction}
}

func (t *InteractionTransport) Defer(ctx context.Context) error {
	err := t.session.InteractionRespond(t.interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("%w: defer: %w", domain.ErrSendingReplyFailed, err)
	}

	return nil
}

func (t *InteractionTransport) Reply(ctx context.Context, response *domain.Response) error {
	err := t.session.InteractionRespond(t.interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: response.Content,
			Embeds:  toEmbeds(response.Embeds),
			Files:   toFiles(response.Files),
			Flags:   toFlags(response),
		},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("%w: reply: %w", domain.ErrSendingReplyFailed, err)
	}

	return nil
}

// EditReply replaces content, embeds and files of the original response. Visibility is fixed by
// the first response and cannot change here.
func (t *InteractionTransport) EditReply(ctx context.Context, response *domain.Response) error {
	content := response.Content
	embeds := toEmbeds(response.Embeds)

	_, err := t.session.InteractionResponseEdit(t.interaction, &discordgo.WebhookEdit{
		Content: &content,
		Embeds:  &embeds,
		Files:   toFiles(response.Files),
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("%w: edit: %w", domain.ErrSendingReplyFailed, err)
	}

	return nil
}

func (t *InteractionTransport) FollowUp(ctx context.Context, response *domain.Response) error {
	_, err := t.session.FollowupMessageCreate(t.interaction, true, &discordgo.WebhookParams{
		Content: response.Content,
		Embeds:  toEmbeds(response.Embeds),
		Files:   toFiles(response.Files),
		Flags:   toFlags(response),
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("%w: follow up: %w", domain.ErrSendingReplyFailed, err)
	}

	return nil
}

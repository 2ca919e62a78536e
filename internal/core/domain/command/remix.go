package command

import (
	"context"
	"errors"
	"fmt"
	"slowpoke/internal/core/domain"
	"slowpoke/internal/core/port"
	"slowpoke/internal/core/service"
	"strings"

	"github.com/rs/zerolog"
)

var errNoReferencedImage = errors.New("no image found in referenced message")

// Remix edits the image of the message it replies to.
type Remix struct {
	history    port.ChannelHistory
	downloader port.Downloader
	generator  port.ImageGenerator
	style      port.StyleProvider
	command    string
}

func NewRemix(history port.ChannelHistory,
	downloader port.Downloader,
	generator port.ImageGenerator,
	style port.StyleProvider,
	command string) *Remix {
	return &Remix{
		history:    history,
		downloader: downloader,
		generator:  generator,
		style:      style,
		command:    command,
	}
}

func (r *Remix) GetCommand() string {
	return r.command
}

func (r *Remix) Kind() domain.CommandKind {
	return domain.Prefix
}

func (r *Remix) Execute(ctx context.Context, inv *domain.Invocation, reply port.ReplyHandle) error {
	l := invocationLogger(r.command, inv).With().Str("referencedMessageId", inv.ReferencedMessageID).Logger()

	prompt := strings.TrimSpace(inv.ArgText)
	l.Info().Str("prompt", prompt).Msg("handling request")

	if prompt == "" {
		return service.Fail(ctx, reply, r.errorResponse("Error", "Please provide instructions on how to remix."))
	}

	if inv.ReferencedMessageID == "" {
		return service.Fail(ctx, reply, r.errorResponse("Error", "Please reply to a message with an image to remix it."))
	}

	if err := reply.Defer(ctx); err != nil {
		l.Warn().Err(err).Msg("failed to show typing indicator")
	}

	base, err := r.referencedImage(ctx, l, inv)
	if errors.Is(err, errNoReferencedImage) {
		return service.Fail(ctx, reply,
			r.errorResponse("Error getting image", "Could not extract image from the referenced message."))
	}

	if err != nil {
		l.Error().Err(err).Msg("error loading referenced image")
		return service.Fail(ctx, reply, r.errorResponse("Error", "There was an error processing the remix command."))
	}

	image, err := r.generator.EditImage(ctx, prompt, base)
	if err != nil {
		l.Error().Err(err).Msg("error remixing image")
		return service.Fail(ctx, reply, r.errorResponse("Error", "There was an error processing the remix command."))
	}

	err = service.Emit(ctx, reply, []*domain.Response{{
		Files: []domain.File{{
			Name:        service.AttachmentName(image.MIMEType),
			ContentType: image.MIMEType,
			Data:        image.Data,
		}},
	}})
	if err != nil {
		return fmt.Errorf("error sending remixed image: %w", err)
	}

	return nil
}

// referencedImage loads the first image attachment of the referenced message, falling back to the
// first embed image.
func (r *Remix) referencedImage(ctx context.Context, l zerolog.Logger, inv *domain.Invocation) (domain.Image, error) {
	message, err := r.history.FetchMessage(ctx, inv.ChannelID, inv.ReferencedMessageID)
	if err != nil {
		return domain.Image{}, fmt.Errorf("error fetching referenced message: %w", err)
	}

	for _, attachment := range message.Attachments {
		if !strings.HasPrefix(attachment.ContentType, "image/") {
			continue
		}

		l.Debug().Str("url", attachment.URL).Msg("using image attachment")

		image, err := r.downloader.Download(ctx, attachment.URL)
		if err != nil {
			return domain.Image{}, fmt.Errorf("error downloading attachment: %w", err)
		}

		image.MIMEType = attachment.ContentType

		return image, nil
	}

	if len(message.EmbedImages) == 0 {
		return domain.Image{}, errNoReferencedImage
	}

	l.Debug().Str("url", message.EmbedImages[0]).Msg("using embed image")

	image, err := r.downloader.Download(ctx, message.EmbedImages[0])
	if err != nil {
		return domain.Image{}, fmt.Errorf("error downloading embed image: %w", err)
	}

	if image.MIMEType == "" {
		return domain.Image{}, errNoReferencedImage
	}

	return image, nil
}

func (r *Remix) errorResponse(title, description string) *domain.Response {
	return domain.EmbedResponse(domain.Embed{
		Title:       title,
		Description: description,
		Color:       r.style.Error(),
	})
}

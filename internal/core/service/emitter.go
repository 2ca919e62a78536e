package service

import (
	"context"
	"fmt"
	"slowpoke/internal/core/domain"
	"slowpoke/internal/core/port"
)

// Renderer turns one chunk of text into a response. index is zero based.
type Renderer func(chunk string, index, total int) *domain.Response

func PlainText(chunk string, _, _ int) *domain.Response {
	return domain.TextResponse(chunk)
}

// EmbedText renders chunks as embed descriptions with an "i / n" footer on multi part answers.
func EmbedText(color int) Renderer {
	return func(chunk string, index, total int) *domain.Response {
		embed := domain.Embed{
			Description: chunk,
			Color:       color,
		}

		if total > 1 {
			embed.Footer = fmt.Sprintf("%d / %d", index+1, total)
		}

		return domain.EmbedResponse(embed)
	}
}

// Emit sends the first response as the reply, or as an edit of a deferred reply, and every
// following response as a follow-up. Sends are sequential and stop at the first error.
func Emit(ctx context.Context, reply port.ReplyHandle, responses []*domain.Response) error {
	if len(responses) == 0 {
		return domain.ErrEmptyResponse
	}

	var err error

	switch reply.State() {
	case domain.Deferred:
		err = reply.EditReply(ctx, responses[0])
	case domain.Unacknowledged:
		err = reply.Reply(ctx, responses[0])
	default:
		return fmt.Errorf("cannot emit into a finished reply: %w", domain.ErrAlreadyAcknowledged)
	}

	if err != nil {
		return fmt.Errorf("failed to send response 1 of %d: %w", len(responses), err)
	}

	for i, response := range responses[1:] {
		if err := reply.FollowUp(ctx, response); err != nil {
			return fmt.Errorf("failed to send response %d of %d: %w", i+2, len(responses), err)
		}
	}

	return nil
}

// EmitText chunks text to maxLength and emits every chunk through render.
func EmitText(ctx context.Context, reply port.ReplyHandle, text string, maxLength int, render Renderer) error {
	chunks := Chunk(text, maxLength, domain.DefaultSeparators)
	if len(chunks) == 0 {
		return domain.ErrEmptyResponse
	}

	responses := make([]*domain.Response, len(chunks))
	for i, chunk := range chunks {
		responses[i] = render(chunk, i, len(chunks))
	}

	return Emit(ctx, reply, responses)
}

// Fail sends a response through whichever primitive the reply state still allows.
func Fail(ctx context.Context, reply port.ReplyHandle, response *domain.Response) error {
	switch reply.State() {
	case domain.Unacknowledged:
		return reply.Reply(ctx, response)
	case domain.Deferred:
		return reply.EditReply(ctx, response)
	default:
		return reply.FollowUp(ctx, response)
	}
}

package port

import (
	"context"
	"slowpoke/internal/core/domain"
)

// ReplyTransport holds the raw reply primitives of the chat platform.
type ReplyTransport interface {
	// Defer acknowledges the invocation and reserves a reply slot.
	Defer(ctx context.Context) error
	// Reply sends the initial response.
	Reply(ctx context.Context, response *domain.Response) error
	// EditReply replaces the deferred placeholder or the initial response.
	EditReply(ctx context.Context, response *domain.Response) error
	// FollowUp sends an additional message after the initial response.
	FollowUp(ctx context.Context, response *domain.Response) error
}

// ReplyHandle is a ReplyTransport that tracks the reply lifecycle of one invocation.
type ReplyHandle interface {
	ReplyTransport
	State() domain.ReplyState
}

type PresenceUpdater interface {
	SetActivity(ctx context.Context, activity domain.Activity) error
}

package service

import (
	"context"
	"fmt"
	"slowpoke/internal/core/domain"
	"slowpoke/internal/core/port"
	"sync"
)

// Reply enforces the reply lifecycle of a single invocation on top of a platform transport:
//
//	unacknowledged --Defer--> deferred
//	unacknowledged --Reply--> replied
//	deferred --EditReply--> replied
//	replied --EditReply--> replied
//	replied --FollowUp--> replied
//
// Invalid transitions fail without touching the transport. A failed transport call keeps the
// current state.
type Reply struct {
	transport port.ReplyTransport
	mu        sync.Mutex
	state     domain.ReplyState
}

func NewReply(transport port.ReplyTransport) *Reply {
	return &Reply{transport: transport, state: domain.Unacknowledged}
}

func (r *Reply) State() domain.ReplyState {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.state
}

func (r *Reply) Defer(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != domain.Unacknowledged {
		return fmt.Errorf("cannot defer in state %s: %w", r.state, domain.ErrAlreadyAcknowledged)
	}

	if err := r.transport.Defer(ctx); err != nil {
		return err
	}

	r.state = domain.Deferred
	return nil
}

func (r *Reply) Reply(ctx context.Context, response *domain.Response) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != domain.Unacknowledged {
		return fmt.Errorf("cannot reply in state %s: %w", r.state, domain.ErrAlreadyAcknowledged)
	}

	if err := r.transport.Reply(ctx, response); err != nil {
		return err
	}

	r.state = domain.Replied
	return nil
}

func (r *Reply) EditReply(ctx context.Context, response *domain.Response) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state == domain.Unacknowledged {
		return fmt.Errorf("cannot edit reply in state %s: %w", r.state, domain.ErrNotAcknowledged)
	}

	if err := r.transport.EditReply(ctx, response); err != nil {
		return err
	}

	r.state = domain.Replied
	return nil
}

func (r *Reply) FollowUp(ctx context.Context, response *domain.Response) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != domain.Replied {
		return fmt.Errorf("cannot follow up in state %s: %w", r.state, domain.ErrNotReplied)
	}

	return r.transport.FollowUp(ctx, response)
}

package service

import (
	"errors"
	"testing"

	"slowpoke/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplyLifecycle(t *testing.T) {
	ft := &fakeTransport{}
	r := NewReply(ft)
	assert.Equal(t, domain.Unacknowledged, r.State())

	require.NoError(t, r.Defer(t.Context()))
	assert.Equal(t, domain.Deferred, r.State())

	require.NoError(t, r.EditReply(t.Context(), domain.TextResponse("first")))
	assert.Equal(t, domain.Replied, r.State())

	require.NoError(t, r.FollowUp(t.Context(), domain.TextResponse("second")))
	require.NoError(t, r.FollowUp(t.Context(), domain.TextResponse("third")))
	require.NoError(t, r.EditReply(t.Context(), domain.TextResponse("edited")))
	assert.Equal(t, domain.Replied, r.State())

	assert.Equal(t, []string{"Defer", "EditReply", "FollowUp", "FollowUp", "EditReply"}, ft.methods())
}

func TestReplyInvalidTransitions(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(r *Reply) error
		act     func(r *Reply) error
		wantErr error
	}{
		{
			name:    "edit before acknowledging",
			prepare: func(_ *Reply) error { return nil },
			act:     func(r *Reply) error { return r.EditReply(t.Context(), domain.TextResponse("x")) },
			wantErr: domain.ErrNotAcknowledged,
		},
		{
			name:    "follow up before acknowledging",
			prepare: func(_ *Reply) error { return nil },
			act:     func(r *Reply) error { return r.FollowUp(t.Context(), domain.TextResponse("x")) },
			wantErr: domain.ErrNotReplied,
		},
		{
			name:    "follow up while deferred",
			prepare: func(r *Reply) error { return r.Defer(t.Context()) },
			act:     func(r *Reply) error { return r.FollowUp(t.Context(), domain.TextResponse("x")) },
			wantErr: domain.ErrNotReplied,
		},
		{
			name:    "reply while deferred",
			prepare: func(r *Reply) error { return r.Defer(t.Context()) },
			act:     func(r *Reply) error { return r.Reply(t.Context(), domain.TextResponse("x")) },
			wantErr: domain.ErrAlreadyAcknowledged,
		},
		{
			name:    "reply twice",
			prepare: func(r *Reply) error { return r.Reply(t.Context(), domain.TextResponse("x")) },
			act:     func(r *Reply) error { return r.Reply(t.Context(), domain.TextResponse("y")) },
			wantErr: domain.ErrAlreadyAcknowledged,
		},
		{
			name:    "defer twice",
			prepare: func(r *Reply) error { return r.Defer(t.Context()) },
			act:     func(r *Reply) error { return r.Defer(t.Context()) },
			wantErr: domain.ErrAlreadyAcknowledged,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ft := &fakeTransport{}
			r := NewReply(ft)
			require.NoError(t, tc.prepare(r))
			before := len(ft.methods())

			err := tc.act(r)

			require.ErrorIs(t, err, tc.wantErr)
			assert.Len(t, ft.methods(), before, "invalid transition must not reach the transport")
		})
	}
}

func TestReplyTransportErrorKeepsState(t *testing.T) {
	ft := &fakeTransport{errs: map[string]error{"Reply": errors.New("boom")}}
	r := NewReply(ft)

	err := r.Reply(t.Context(), domain.TextResponse("x"))

	require.Error(t, err)
	assert.Equal(t, domain.Unacknowledged, r.State())
}

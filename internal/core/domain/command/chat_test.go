package command

import (
	"errors"
	"fmt"
	"slowpoke/internal/core/domain"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var chatTranscript = domain.Transcript{
	{Name: "jeph", Timestamp: time.Date(2025, 1, 20, 16, 32, 0, 0, time.UTC), Content: "Hi slowpoke!"},
}

func TestChatExecute(t *testing.T) {
	mt, reply := newReply()
	mg := &MockTextGenerator{response: "I'm good jeph!"}
	chat := NewChat(&MockTranscriptSource{transcript: chatTranscript}, mg, "chat")

	err := chat.Execute(t.Context(), &domain.Invocation{ChannelID: "c", GuildID: "g"}, reply)
	require.NoError(t, err)

	assert.Equal(t, []string{"Defer", "EditReply"}, mt.methods())
	assert.Equal(t, "I'm good jeph!", mt.last().Content)
	assert.Equal(t, "[name: jeph][time: 2025-01-20T16:32Z][isBot: false]: Hi slowpoke!", mg.prompt.Prompt)
	assert.Equal(t, chatSystemInstruction, mg.prompt.SystemInstruction)
}

func TestChatExecuteLongAnswer(t *testing.T) {
	mt, reply := newReply()
	mg := &MockTextGenerator{response: strings.Repeat("a", 1500) + "\n\n" + strings.Repeat("b", 1500)}
	chat := NewChat(&MockTranscriptSource{transcript: chatTranscript}, mg, "chat")

	err := chat.Execute(t.Context(), &domain.Invocation{}, reply)
	require.NoError(t, err)

	assert.Equal(t, []string{"Defer", "EditReply", "FollowUp"}, mt.methods())
	assert.Equal(t, strings.Repeat("a", 1500), mt.sent[1].response.Content)
	assert.Equal(t, strings.Repeat("b", 1500), mt.sent[2].response.Content)
}

func TestChatExecuteFailures(t *testing.T) {
	tests := []struct {
		name      string
		source    *MockTranscriptSource
		generator *MockTextGenerator
		want      string
		wantCalls int
	}{
		{
			name:      "missing access",
			source:    &MockTranscriptSource{err: fmt.Errorf("failed to fetch channel history: %w", domain.ErrMissingAccess)},
			generator: &MockTextGenerator{},
			want:      chatMissingAccess,
		},
		{
			name:      "history error",
			source:    &MockTranscriptSource{err: errors.New("mock error")},
			generator: &MockTextGenerator{},
			want:      "Sorry, there was an error processing the chat request.",
		},
		{
			name:      "empty channel",
			source:    &MockTranscriptSource{},
			generator: &MockTextGenerator{},
			want:      "No messages found in this channel.",
		},
		{
			name:      "generator error",
			source:    &MockTranscriptSource{transcript: chatTranscript},
			generator: &MockTextGenerator{err: errors.New("mock error")},
			want:      "Sorry, there was an error processing the chat request.",
			wantCalls: 1,
		},
		{
			name:      "blank answer",
			source:    &MockTranscriptSource{transcript: chatTranscript},
			generator: &MockTextGenerator{response: " \n "},
			want:      "Sorry, there was an error processing the chat request.",
			wantCalls: 1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mt, reply := newReply()
			chat := NewChat(tc.source, tc.generator, "chat")

			err := chat.Execute(t.Context(), &domain.Invocation{}, reply)
			require.NoError(t, err)

			assert.Equal(t, []string{"Defer", "EditReply"}, mt.methods())
			assert.Equal(t, tc.want, mt.last().Content)
			assert.Equal(t, tc.wantCalls, tc.generator.calls)
		})
	}
}

package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"slowpoke/internal/core/domain"
	"slowpoke/internal/core/port"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultHistoryLimit  = 100
	defaultMemberLookups = 10
)

// TranscriptBuilder turns recent channel history into a chronological transcript.
type TranscriptBuilder struct {
	history port.ChannelHistory
	members port.MemberDirectory
	limit   int
	lookups int
}

func NewTranscriptBuilder(history port.ChannelHistory, members port.MemberDirectory, limit int) *TranscriptBuilder {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	return &TranscriptBuilder{
		history: history,
		members: members,
		limit:   limit,
		lookups: defaultMemberLookups,
	}
}

func (b *TranscriptBuilder) Build(ctx context.Context, channelID, guildID string) (domain.Transcript, error) {
	messages, err := b.history.FetchMessages(ctx, channelID, b.limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch channel history: %w", err)
	}

	messages = OrderMessages(messages)
	nicknames := b.resolveNicknames(ctx, guildID, messages)

	transcript := make(domain.Transcript, len(messages))
	for i, message := range messages {
		name, ok := nicknames[message.Author.ID]
		if !ok {
			name = message.Author.DisplayName()
		}

		transcript[i] = domain.TranscriptEntry{
			Name:      name,
			Timestamp: message.Timestamp,
			IsBot:     message.Author.Bot,
			Content:   message.Content,
		}
	}

	return transcript, nil
}

// OrderMessages sorts messages oldest first and drops trailing messages without content,
// which are the placeholders of replies still being written.
func OrderMessages(messages []domain.ChannelMessage) []domain.ChannelMessage {
	ordered := slices.Clone(messages)

	slices.SortStableFunc(ordered, func(a, b domain.ChannelMessage) int {
		if c := a.Timestamp.Compare(b.Timestamp); c != 0 {
			return c
		}

		return CompareSnowflakes(a.ID, b.ID)
	})

	for len(ordered) > 0 && strings.TrimSpace(ordered[len(ordered)-1].Content) == "" {
		ordered = ordered[:len(ordered)-1]
	}

	return ordered
}

// CompareSnowflakes orders Discord snowflake ids numerically.
func CompareSnowflakes(a, b string) int {
	if c := cmp.Compare(len(a), len(b)); c != 0 {
		return c
	}

	return strings.Compare(a, b)
}

func (b *TranscriptBuilder) resolveNicknames(ctx context.Context, guildID string,
	messages []domain.ChannelMessage) map[string]string {
	nicknames := make(map[string]string)
	if guildID == "" || b.members == nil {
		return nicknames
	}

	authors := make(map[string]struct{})
	for _, message := range messages {
		authors[message.Author.ID] = struct{}{}
	}

	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.lookups)

	for authorID := range authors {
		g.Go(func() error {
			nickname, err := b.members.Nickname(gctx, guildID, authorID)
			if err != nil {
				log.Debug().Err(err).Str("guildId", guildID).Str("userId", authorID).
					Msg("member lookup failed, falling back to profile name")
				return nil
			}

			if nickname == "" {
				return nil
			}

			mu.Lock()
			nicknames[authorID] = nickname
			mu.Unlock()

			return nil
		})
	}

	_ = g.Wait()

	return nicknames
}

package channel

import (
	"errors"
	"net/http"
	"slowpoke/internal/core/domain"
	"strconv"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSession struct {
	mock.Mock
}

func (m *MockSession) ChannelMessages(channelID string, limit int, beforeID, afterID, aroundID string,
	_ ...discordgo.RequestOption) ([]*discordgo.Message, error) {
	args := m.Called(channelID, limit, beforeID, afterID, aroundID)
	msgs, _ := args.Get(0).([]*discordgo.Message)
	return msgs, args.Error(1)
}

func (m *MockSession) ChannelMessage(channelID, messageID string,
	_ ...discordgo.RequestOption) (*discordgo.Message, error) {
	args := m.Called(channelID, messageID)
	msg, _ := args.Get(0).(*discordgo.Message)
	return msg, args.Error(1)
}

func (m *MockSession) GuildMember(guildID, userID string, _ ...discordgo.RequestOption) (*discordgo.Member, error) {
	args := m.Called(guildID, userID)
	member, _ := args.Get(0).(*discordgo.Member)
	return member, args.Error(1)
}

func page(start, n int) []*discordgo.Message {
	msgs := make([]*discordgo.Message, n)
	for i := range msgs {
		msgs[i] = &discordgo.Message{ID: strconv.Itoa(start - i), Content: "m"}
	}

	return msgs
}

func missingAccess() error {
	return &discordgo.RESTError{
		Response: &http.Response{StatusCode: http.StatusForbidden},
		Message:  &discordgo.APIErrorMessage{Code: discordgo.ErrCodeMissingAccess, Message: "Missing Access"},
	}
}

func TestFetchMessagesSinglePage(t *testing.T) {
	ms := new(MockSession)
	ms.On("ChannelMessages", "c1", 9, "", "", "").Return(page(1000, 3), nil).Once()

	messages, err := NewHistory(ms).FetchMessages(t.Context(), "c1", 9)

	require.NoError(t, err)
	assert.Len(t, messages, 3)
	ms.AssertExpectations(t)
}

func TestFetchMessagesPaginates(t *testing.T) {
	ms := new(MockSession)
	ms.On("ChannelMessages", "c1", 100, "", "", "").Return(page(1000, 100), nil).Once()
	ms.On("ChannelMessages", "c1", 50, "901", "", "").Return(page(900, 50), nil).Once()

	messages, err := NewHistory(ms).FetchMessages(t.Context(), "c1", 150)

	require.NoError(t, err)
	assert.Len(t, messages, 150)
	assert.Equal(t, "1000", messages[0].ID)
	assert.Equal(t, "851", messages[149].ID)
	ms.AssertExpectations(t)
}

func TestFetchMessagesMissingAccess(t *testing.T) {
	ms := new(MockSession)
	ms.On("ChannelMessages", "c1", 100, "", "", "").Return(nil, missingAccess())

	_, err := NewHistory(ms).FetchMessages(t.Context(), "c1", 100)

	require.ErrorIs(t, err, domain.ErrMissingAccess)

	var restErr *discordgo.RESTError
	assert.ErrorAs(t, err, &restErr)
}

func TestFetchMessagesOtherError(t *testing.T) {
	ms := new(MockSession)
	ms.On("ChannelMessages", "c1", 100, "", "", "").Return(nil, errors.New("timeout"))

	_, err := NewHistory(ms).FetchMessages(t.Context(), "c1", 100)

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrMissingAccess)
}

func TestFetchMessage(t *testing.T) {
	ts := time.Date(2025, 5, 30, 19, 15, 0, 0, time.UTC)

	ms := new(MockSession)
	ms.On("ChannelMessage", "c1", "m1").Return(&discordgo.Message{
		ID:        "m1",
		ChannelID: "c1",
		Content:   "look",
		Timestamp: ts,
		Author:    &discordgo.User{ID: "u1", Username: "soonay", GlobalName: "Soonay"},
		Embeds: []*discordgo.MessageEmbed{
			{Title: "😤 Tfti"},
			{Image: &discordgo.MessageEmbedImage{URL: "https://cdn.example.org/e.png"}},
		},
		Attachments: []*discordgo.MessageAttachment{
			{URL: "https://cdn.example.org/a.png", ContentType: "image/png"},
		},
	}, nil)

	message, err := NewHistory(ms).FetchMessage(t.Context(), "c1", "m1")

	require.NoError(t, err)
	assert.Equal(t, &domain.ChannelMessage{
		ID:          "m1",
		ChannelID:   "c1",
		Author:      domain.User{ID: "u1", Username: "soonay", GlobalName: "Soonay"},
		Timestamp:   ts,
		Content:     "look",
		EmbedTitles: []string{"😤 Tfti"},
		EmbedImages: []string{"https://cdn.example.org/e.png"},
		Attachments: []domain.Attachment{{URL: "https://cdn.example.org/a.png", ContentType: "image/png"}},
	}, message)
}

func TestNickname(t *testing.T) {
	ms := new(MockSession)
	ms.On("GuildMember", "g1", "u1").Return(&discordgo.Member{Nick: "Ali"}, nil)
	ms.On("GuildMember", "g1", "u2").Return(nil, missingAccess())

	history := NewHistory(ms)

	nick, err := history.Nickname(t.Context(), "g1", "u1")
	require.NoError(t, err)
	assert.Equal(t, "Ali", nick)

	_, err = history.Nickname(t.Context(), "g1", "u2")
	require.ErrorIs(t, err, domain.ErrMissingAccess)
}

func TestToUserNil(t *testing.T) {
	assert.Equal(t, domain.User{}, ToUser(nil))
}

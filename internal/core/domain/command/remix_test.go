package command

import (
	"errors"
	"slowpoke/internal/core/domain"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func remixInvocation(referenced string, args ...string) *domain.Invocation {
	return &domain.Invocation{
		Kind:                domain.Prefix,
		Command:             "remix",
		Args:                args,
		ArgText:             strings.Join(args, " "),
		ChannelID:           "c",
		ReferencedMessageID: referenced,
	}
}

func TestNewRemix(t *testing.T) {
	remix := NewRemix(&MockChannelHistory{}, &MockDownloader{}, &MockImageGenerator{}, stubStyle{}, "remix")

	assert.Equal(t, "remix", remix.GetCommand())
	assert.Equal(t, domain.Prefix, remix.Kind())
}

func TestRemixFromAttachment(t *testing.T) {
	mt, reply := newReply()
	mh := &MockChannelHistory{message: &domain.ChannelMessage{
		Attachments: []domain.Attachment{
			{URL: "https://cdn.example.org/notes.txt", ContentType: "text/plain"},
			{URL: "https://cdn.example.org/cat.jpg", ContentType: "image/jpeg"},
		},
		EmbedImages: []string{"https://cdn.example.org/embed.png"},
	}}
	md := &MockDownloader{images: map[string]domain.Image{
		"https://cdn.example.org/cat.jpg": {MIMEType: "application/octet-stream", Data: []byte("cat")},
	}}
	mg := &MockImageGenerator{image: domain.Image{MIMEType: "image/png", Data: []byte("remixed")}}

	err := NewRemix(mh, md, mg, stubStyle{}, "remix").
		Execute(t.Context(), remixInvocation("m1", "make", "it", "blue"), reply)
	require.NoError(t, err)

	assert.Equal(t, []string{"https://cdn.example.org/cat.jpg"}, md.urls)
	assert.Equal(t, "make it blue", mg.prompt)
	assert.Equal(t, domain.Image{MIMEType: "image/jpeg", Data: []byte("cat")}, mg.base)

	require.Equal(t, []string{"Defer", "EditReply"}, mt.methods())
	response := mt.last()
	require.Len(t, response.Files, 1)
	assert.Equal(t, []byte("remixed"), response.Files[0].Data)
	assert.Equal(t, "image/png", response.Files[0].ContentType)
}

func TestRemixFromEmbed(t *testing.T) {
	mt, reply := newReply()
	mh := &MockChannelHistory{message: &domain.ChannelMessage{
		EmbedImages: []string{"https://cdn.example.org/embed.png", "https://cdn.example.org/other.png"},
	}}
	md := &MockDownloader{images: map[string]domain.Image{
		"https://cdn.example.org/embed.png": {MIMEType: "image/png", Data: []byte("embed")},
	}}
	mg := &MockImageGenerator{image: domain.Image{MIMEType: "image/png", Data: []byte("remixed")}}

	err := NewRemix(mh, md, mg, stubStyle{}, "remix").Execute(t.Context(), remixInvocation("m1", "sparkles"), reply)
	require.NoError(t, err)

	assert.Equal(t, []string{"https://cdn.example.org/embed.png"}, md.urls)
	assert.Equal(t, []byte("embed"), mg.base.Data)
	assert.Equal(t, []string{"Defer", "EditReply"}, mt.methods())
}

func TestRemixErrors(t *testing.T) {
	imageMessage := &domain.ChannelMessage{
		Attachments: []domain.Attachment{{URL: "u", ContentType: "image/png"}},
	}

	tests := []struct {
		name        string
		inv         *domain.Invocation
		history     *MockChannelHistory
		downloader  *MockDownloader
		generator   *MockImageGenerator
		wantMethods []string
		wantTitle   string
		wantText    string
	}{
		{
			name:        "missing instructions",
			inv:         remixInvocation("m1"),
			history:     &MockChannelHistory{},
			downloader:  &MockDownloader{},
			generator:   &MockImageGenerator{},
			wantMethods: []string{"Reply"},
			wantTitle:   "Error",
			wantText:    "Please provide instructions on how to remix.",
		},
		{
			name:        "not a reply",
			inv:         remixInvocation("", "blue"),
			history:     &MockChannelHistory{},
			downloader:  &MockDownloader{},
			generator:   &MockImageGenerator{},
			wantMethods: []string{"Reply"},
			wantTitle:   "Error",
			wantText:    "Please reply to a message with an image to remix it.",
		},
		{
			name:        "referenced message without image",
			inv:         remixInvocation("m1", "blue"),
			history:     &MockChannelHistory{message: &domain.ChannelMessage{Content: "just text"}},
			downloader:  &MockDownloader{},
			generator:   &MockImageGenerator{},
			wantMethods: []string{"Defer", "EditReply"},
			wantTitle:   "Error getting image",
			wantText:    "Could not extract image from the referenced message.",
		},
		{
			name: "embed image without content type",
			inv:  remixInvocation("m1", "blue"),
			history: &MockChannelHistory{message: &domain.ChannelMessage{
				EmbedImages: []string{"u"},
			}},
			downloader:  &MockDownloader{images: map[string]domain.Image{"u": {Data: []byte("x")}}},
			generator:   &MockImageGenerator{},
			wantMethods: []string{"Defer", "EditReply"},
			wantTitle:   "Error getting image",
			wantText:    "Could not extract image from the referenced message.",
		},
		{
			name:        "fetch error",
			inv:         remixInvocation("m1", "blue"),
			history:     &MockChannelHistory{err: errors.New("mock error")},
			downloader:  &MockDownloader{},
			generator:   &MockImageGenerator{},
			wantMethods: []string{"Defer", "EditReply"},
			wantTitle:   "Error",
			wantText:    "There was an error processing the remix command.",
		},
		{
			name:        "download error",
			inv:         remixInvocation("m1", "blue"),
			history:     &MockChannelHistory{message: imageMessage},
			downloader:  &MockDownloader{err: errors.New("mock error")},
			generator:   &MockImageGenerator{},
			wantMethods: []string{"Defer", "EditReply"},
			wantTitle:   "Error",
			wantText:    "There was an error processing the remix command.",
		},
		{
			name:        "generator error",
			inv:         remixInvocation("m1", "blue"),
			history:     &MockChannelHistory{message: imageMessage},
			downloader:  &MockDownloader{images: map[string]domain.Image{"u": {Data: []byte("x")}}},
			generator:   &MockImageGenerator{err: domain.ErrNoImage},
			wantMethods: []string{"Defer", "EditReply"},
			wantTitle:   "Error",
			wantText:    "There was an error processing the remix command.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mt, reply := newReply()

			err := NewRemix(tc.history, tc.downloader, tc.generator, stubStyle{}, "remix").
				Execute(t.Context(), tc.inv, reply)
			require.NoError(t, err)

			require.Equal(t, tc.wantMethods, mt.methods())
			response := mt.last()
			require.Len(t, response.Embeds, 1)
			assert.Equal(t, tc.wantTitle, response.Embeds[0].Title)
			assert.Equal(t, tc.wantText, response.Embeds[0].Description)
			assert.Equal(t, 4, response.Embeds[0].Color)
		})
	}
}

func TestRemixKeepsPromptLayout(t *testing.T) {
	_, reply := newReply()
	mh := &MockChannelHistory{message: &domain.ChannelMessage{
		Attachments: []domain.Attachment{{URL: "https://cdn.example.org/cat.png", ContentType: "image/png"}},
	}}
	md := &MockDownloader{images: map[string]domain.Image{
		"https://cdn.example.org/cat.png": {MIMEType: "image/png", Data: []byte("cat")},
	}}
	mg := &MockImageGenerator{image: domain.Image{MIMEType: "image/png", Data: []byte("remixed")}}

	inv := remixInvocation("m1")
	inv.ArgText = "make it blue\n\n- add a hat\n- keep   the cat"

	err := NewRemix(mh, md, mg, stubStyle{}, "remix").Execute(t.Context(), inv, reply)
	require.NoError(t, err)

	assert.Equal(t, "make it blue\n\n- add a hat\n- keep   the cat", mg.prompt)
}

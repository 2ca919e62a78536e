package domain

import (
	"fmt"
	"strings"
	"time"
)

type Prompt struct {
	Prompt            string
	SystemInstruction string
}

type Image struct {
	MIMEType string
	Data     []byte
}

type EmbedField struct {
	Name   string
	Value  string
	Inline bool
}

// Embed is a structured visual card.
type Embed struct {
	Title       string
	Description string
	URL         string
	Color       int
	ImageURL    string
	Footer      string
	Fields      []EmbedField
}

type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Response is a single message sent through a reply handle.
type Response struct {
	Content   string
	Embeds    []Embed
	Files     []File
	Ephemeral bool
}

func TextResponse(content string) *Response {
	return &Response{Content: content}
}

func EmbedResponse(embed Embed) *Response {
	return &Response{Embeds: []Embed{embed}}
}

type User struct {
	ID         string
	Username   string
	GlobalName string
	Bot        bool
}

// DisplayName prefers the global profile name over the username.
func (u User) DisplayName() string {
	if u.GlobalName != "" {
		return u.GlobalName
	}

	return u.Username
}

type Attachment struct {
	URL         string
	ContentType string
}

// ChannelMessage is a message as read back from channel history.
type ChannelMessage struct {
	ID          string
	ChannelID   string
	Author      User
	Timestamp   time.Time
	Content     string
	EmbedTitles []string
	EmbedImages []string
	Attachments []Attachment
}

type TranscriptEntry struct {
	Name      string
	Timestamp time.Time
	IsBot     bool
	Content   string
}

const TranscriptTimeFormat = "2006-01-02T15:04Z"

// line breaks inside a message are escaped so every entry stays on one line
var lineBreakEscaper = strings.NewReplacer("\r\n", `\n`, "\n", `\n`, "\r", `\n`)

func (e TranscriptEntry) String() string {
	return fmt.Sprintf("[name: %s][time: %s][isBot: %t]: %s",
		e.Name, e.Timestamp.UTC().Format(TranscriptTimeFormat), e.IsBot, lineBreakEscaper.Replace(e.Content))
}

// Transcript is ordered ascending by timestamp.
type Transcript []TranscriptEntry

func (t Transcript) Render() string {
	lines := make([]string, len(t))
	for i, entry := range t {
		lines[i] = entry.String()
	}

	return strings.Join(lines, "\n")
}

type ActivityType string

const (
	Playing   ActivityType = "playing"
	Watching  ActivityType = "watching"
	Listening ActivityType = "listening"
	Custom    ActivityType = "custom"
)

type Activity struct {
	Type ActivityType
	Name string
}

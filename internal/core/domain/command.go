package domain

import (
	"strings"
)

// CommandKind distinguishes slash commands from prefix commands.
type CommandKind int

const (
	Slash CommandKind = iota
	Prefix
)

func (k CommandKind) String() string {
	if k == Prefix {
		return "prefix"
	}

	return "slash"
}

type OptionType int

const (
	StringOption OptionType = iota
	IntegerOption
)

type OptionSpec struct {
	Name        string
	Description string
	Type        OptionType
	Required    bool
	MinValue    *float64
	MaxValue    float64
}

// CommandSpec is the declared schema of a slash command.
type CommandSpec struct {
	Name        string
	Description string
	Options     []OptionSpec
}

// Invocation carries everything a command needs to know about one inbound event.
type Invocation struct {
	Kind                CommandKind
	Command             string
	Args                []string
	// ArgText is the text after a prefix command name, with the user's spacing kept.
	ArgText             string
	Options             map[string]any
	Content             string
	ChannelID           string
	GuildID             string
	MessageID           string
	ReferencedMessageID string
	Author              User
	BotUserID           string
}

func (i *Invocation) StringOption(name string) (string, bool) {
	v, ok := i.Options[name]
	if !ok {
		return "", false
	}

	s, ok := v.(string)
	return s, ok
}

func (i *Invocation) IntOption(name string) (int64, bool) {
	v, ok := i.Options[name]
	if !ok {
		return 0, false
	}

	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}

// ParseCommand splits a prefixed message into a lower-cased command name and its arguments.
// ok is false when the message does not start with prefix or carries no command name.
func ParseCommand(content, prefix string) (command string, args []string, ok bool) {
	if prefix == "" || !strings.HasPrefix(content, prefix) {
		return "", nil, false
	}

	fields := strings.Fields(strings.TrimPrefix(content, prefix))
	if len(fields) == 0 {
		return "", nil, false
	}

	return strings.ToLower(fields[0]), fields[1:], true
}

// ParseCommandArgs returns the text after the command token with its original spacing.
func ParseCommandArgs(content, prefix string) string {
	rest := strings.TrimLeft(strings.TrimPrefix(content, prefix), " \t\n")

	idx := strings.IndexAny(rest, " \t\n")
	if idx < 0 {
		return ""
	}

	return strings.TrimSpace(rest[idx:])
}

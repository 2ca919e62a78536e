package port

import (
	"context"
	"slowpoke/internal/core/domain"
)

type Command interface {
	// GetCommand retrieves the command identifier associated with a specific command handler.
	GetCommand() string
	// Kind reports whether the command is invoked as a slash command or through a message prefix.
	Kind() domain.CommandKind
	// Execute runs the command for one invocation, answering through the reply handle.
	Execute(ctx context.Context, inv *domain.Invocation, reply ReplyHandle) error
}

type SlashCommand interface {
	Command
	// Spec returns the declared schema used to deploy the command to Discord.
	Spec() domain.CommandSpec
}

type CommandRegistry interface {
	// Register adds a new command handler to the command registry.
	Register(cmd Command) error
	// Get retrieves a registered Command of the given kind or returns domain.ErrCommandNotFound.
	Get(kind domain.CommandKind, command string) (Command, error)
	// ListCommands returns a list of all command identifiers currently registered in the command registry.
	ListCommands() []string
	// SlashSpecs returns the schemas of all registered slash commands.
	SlashSpecs() []domain.CommandSpec
}

// ChimeIn may answer a plain channel message that is not a command.
type ChimeIn interface {
	Name() string
	// Execute reports whether the chime-in answered the message.
	Execute(ctx context.Context, inv *domain.Invocation, reply ReplyHandle) (bool, error)
}

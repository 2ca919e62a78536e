package domain

import "errors"

var (
	ErrSendingReplyFailed = errors.New("failed to send reply")
	ErrEmptyPrompt        = errors.New("empty prompt")
	ErrEmptyResponse      = errors.New("empty response")

	ErrCommandNotFound   = errors.New("command not found")
	ErrDuplicateCommand  = errors.New("command already registered")
	ErrInvalidCommand    = errors.New("invalid command")
	ErrRegistryNotLoaded = errors.New("can't fetch command, registry not initialized")

	ErrAlreadyAcknowledged = errors.New("interaction already acknowledged")
	ErrNotAcknowledged     = errors.New("interaction not acknowledged")
	ErrNotReplied          = errors.New("interaction has no reply yet")

	ErrNoText        = errors.New("no text was returned from the model")
	ErrNoImage       = errors.New("no image was returned from the model")
	ErrMissingAccess = errors.New("missing access to channel")
)

// Discord limits, counted in characters.
const (
	MaxMessageLength          = 2000
	MaxEmbedDescriptionLength = 4096
)

// DefaultSeparators are tried in order when splitting long text.
var DefaultSeparators = []string{"\n\n", "\n", " ", ""}

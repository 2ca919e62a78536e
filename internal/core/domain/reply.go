package domain

type ReplyState int

const (
	Unacknowledged ReplyState = iota
	Deferred
	Replied
)

func (s ReplyState) String() string {
	switch s {
	case Unacknowledged:
		return "unacknowledged"
	case Deferred:
		return "deferred"
	case Replied:
		return "replied"
	default:
		return "unknown"
	}
}

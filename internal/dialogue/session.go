// Package dialogue implements the guided conversation: a small state
// machine that walks a child from a distressing thought, through the
// feeling it produces, to the resulting behavior, composing each bot
// reply from the content catalog along the way.
package dialogue

import (
	"time"

	"github.com/johns/thoughtbuddy/internal/catalog"
)

// Step is the current stage of a guided conversation. Steps only ever
// move forward; re-entering the current step (a clarifying prompt) is
// allowed, going backward is not.
type Step int

const (
	StepThought Step = iota
	StepFeeling
	StepBehavior
	StepComplete
)

func (s Step) String() string {
	switch s {
	case StepThought:
		return "thought"
	case StepFeeling:
		return "feeling"
	case StepBehavior:
		return "behavior"
	case StepComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Message is one chat bubble. Messages are appended to a session and
// never mutated afterwards.
type Message struct {
	ID          string
	Text        string
	IsBot       bool
	Timestamp   time.Time
	Suggestions []string
}

// Session is the mutable state of one guided conversation. It lives for
// the duration of the chat and is not persisted; a completed session is
// turned into a journey by the caller.
type Session struct {
	Scenario catalog.Scenario
	Step     Step
	Thought  string
	Feeling  string
	Behavior string
	Messages []Message
}

// LastMessage returns the most recent message, or a zero Message for an
// empty session.
func (s *Session) LastMessage() Message {
	if len(s.Messages) == 0 {
		return Message{}
	}
	return s.Messages[len(s.Messages)-1]
}

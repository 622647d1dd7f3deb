package dialogue

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johns/thoughtbuddy/internal/catalog"
	"github.com/johns/thoughtbuddy/internal/classify"
)

// greetings are the contextual openers, keyed by scenario id. A
// scenario whose id is missing here gets the generic greeting.
var greetings = map[string]string{
	"anxious": "Hi! I'm here to help you work through feeling anxious. I can see " +
		"you're dealing with %q. Let's explore what's going through your mind and " +
		"find some helpful ways to feel calmer. What thoughts are you having about " +
		"this situation?",
	"mistake": "Hello! I'm here to help you work through making a mistake. Everyone " +
		"makes mistakes - it's part of learning! Let's talk about %q and explore " +
		"your thoughts, feelings, and how you can move forward. What's going " +
		"through your mind right now?",
	"friend": "Hi there! I'm here to help you work through friend troubles. I can " +
		"see you're dealing with %q. Let's explore your thoughts and feelings " +
		"about this situation and find some helpful ways to handle it. What are " +
		"you thinking about this?",
	"overwhelmed": "Hello! I'm here to help you when you feel overwhelmed. I can " +
		"see you're dealing with %q. Let's break this down together and explore " +
		"your thoughts, feelings, and find some calming strategies. What's going " +
		"through your mind?",
	"sad": "Hi! I'm here to help you work through feeling sad. I can see you're " +
		"dealing with %q. It's okay to feel sad sometimes. Let's explore your " +
		"thoughts and feelings and find some ways to help you feel better. What " +
		"are you thinking about this situation?",
	"angry": "Hello! I'm here to help you work through feeling angry. I can see " +
		"you're dealing with %q. Feeling angry is normal, but let's explore your " +
		"thoughts and find healthy ways to handle these feelings. What's going " +
		"through your mind right now?",
}

// optionsPrompt precedes the suggestion chips in a second, trailing bot
// message.
const optionsPrompt = "Here are some options:"

// Engine owns the conversation state machine. One engine can drive any
// number of sessions, but a single session must only be advanced from
// one goroutine at a time.
type Engine struct {
	cat        *catalog.Catalog
	classifier *classify.Classifier
	composer   *Composer
	log        *zap.Logger
	now        func() time.Time
	newID      func() string
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the engine's debug logger.
func WithLogger(log *zap.Logger) EngineOption {
	return func(e *Engine) { e.log = log }
}

// WithClock replaces the message timestamp source.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) { e.now = now }
}

// WithIDSource replaces the message id generator.
func WithIDSource(newID func() string) EngineOption {
	return func(e *Engine) { e.newID = newID }
}

// WithComposer replaces the default composer, mainly so tests can pin
// its random source.
func WithComposer(c *Composer) EngineOption {
	return func(e *Engine) { e.composer = c }
}

// NewEngine returns an engine over the given catalog with a default
// classifier and composer.
func NewEngine(cat *catalog.Catalog, opts ...EngineOption) *Engine {
	e := &Engine{
		cat:        cat,
		classifier: classify.New(cat),
		composer:   NewComposer(cat),
		log:        zap.NewNop(),
		now:        time.Now,
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SwapCatalog replaces the engine's catalog, classifier, and composer
// after a content reload. In-flight sessions keep their recorded state;
// only future replies use the new content.
func (e *Engine) SwapCatalog(cat *catalog.Catalog) {
	e.cat = cat
	e.classifier = classify.New(cat)
	e.composer = NewComposer(cat)
}

// NewSession starts a conversation for the given scenario, seeded with
// a contextual greeting. Unknown scenario ids get a generic opener.
func (e *Engine) NewSession(scenario catalog.Scenario) *Session {
	var text string
	if tmpl, ok := greetings[scenario.ID]; ok {
		text = fmt.Sprintf(tmpl, scenario.Example)
	} else {
		text = fmt.Sprintf("Hi! I'm here to help you work through %q. Let's start "+
			"by exploring your thoughts, feelings, and behaviors together. What's "+
			"going on for you right now?", scenario.Label)
	}

	s := &Session{
		Scenario: scenario,
		Step:     StepThought,
	}
	s.Messages = append(s.Messages, Message{
		ID:        e.newID(),
		Text:      text,
		IsBot:     true,
		Timestamp: e.now(),
	})

	e.log.Debug("session started", zap.String("scenario", scenario.ID))
	return s
}

// HandleInput advances the session one user turn and returns the bot
// messages it produced. Empty input is ignored: no message is appended
// and no transition happens. The returned messages are already appended
// to the session; callers only use them for display pacing.
func (e *Engine) HandleInput(s *Session, text string) []Message {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	s.Messages = append(s.Messages, Message{
		ID:        e.newID(),
		Text:      text,
		IsBot:     false,
		Timestamp: e.now(),
	})

	detected := e.classifier.Classify(text)
	reply := e.composer.Compose(s.Step, text, detected, s.Feeling)

	// Record what the completed step captured.
	switch {
	case s.Step == StepThought && reply.Next == StepFeeling:
		s.Thought = text
	case s.Step == StepFeeling && reply.Next == StepBehavior:
		s.Feeling = reply.Feeling
	case s.Step == StepBehavior && reply.Next == StepComplete:
		s.Behavior = text
	}

	bot := Message{
		ID:        e.newID(),
		Text:      reply.Text,
		IsBot:     true,
		Timestamp: e.now(),
	}
	out := []Message{bot}

	// Suggestion chips arrive in a trailing message so the UI can pace
	// them separately.
	if len(reply.Suggestions) > 0 {
		out = append(out, Message{
			ID:          e.newID(),
			Text:        optionsPrompt,
			IsBot:       true,
			Timestamp:   e.now(),
			Suggestions: reply.Suggestions,
		})
	}

	s.Messages = append(s.Messages, out...)

	if reply.Next < s.Step {
		// Steps never regress; composers cannot produce this.
		e.log.Warn("ignoring backward transition",
			zap.Stringer("from", s.Step), zap.Stringer("to", reply.Next))
	} else {
		if reply.Next != s.Step {
			e.log.Debug("step transition",
				zap.Stringer("from", s.Step), zap.Stringer("to", reply.Next),
				zap.Int("distortions", len(detected)))
		}
		s.Step = reply.Next
	}

	return out
}

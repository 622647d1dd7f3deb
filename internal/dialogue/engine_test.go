package dialogue

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/johns/thoughtbuddy/internal/catalog"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatal(err)
	}

	var ids int
	return NewEngine(cat,
		WithComposer(NewComposer(cat, WithRandom(pinned))),
		WithClock(func() time.Time { return time.Unix(1700000000, 0) }),
		WithIDSource(func() string {
			ids++
			return fmt.Sprintf("msg-%d", ids)
		}),
	)
}

func TestNewSessionGreeting(t *testing.T) {
	e := newTestEngine(t)
	cat := e.cat

	s, _ := cat.Scenario("anxious")
	sess := e.NewSession(s)

	if sess.Step != StepThought {
		t.Errorf("Step = %v, want %v", sess.Step, StepThought)
	}
	if len(sess.Messages) != 1 {
		t.Fatalf("len(Messages) = %d, want 1", len(sess.Messages))
	}
	greeting := sess.Messages[0]
	if !greeting.IsBot {
		t.Error("greeting should be a bot message")
	}
	if !strings.Contains(greeting.Text, "anxious") && !strings.Contains(greeting.Text, "worried") {
		t.Errorf("greeting not contextual: %q", greeting.Text)
	}
}

func TestNewSessionGreetingFallback(t *testing.T) {
	e := newTestEngine(t)

	sess := e.NewSession(catalog.Scenario{ID: "custom", Label: "Your Situation"})
	if !strings.Contains(sess.Messages[0].Text, `"Your Situation"`) {
		t.Errorf("fallback greeting missing label: %q", sess.Messages[0].Text)
	}
}

func TestHandleInputEmptyIsNoOp(t *testing.T) {
	e := newTestEngine(t)
	s, _ := e.cat.Scenario("anxious")
	sess := e.NewSession(s)

	before := len(sess.Messages)
	for _, input := range []string{"", "   ", "\t\n"} {
		if out := e.HandleInput(sess, input); out != nil {
			t.Errorf("HandleInput(%q) = %v, want nil", input, out)
		}
	}
	if len(sess.Messages) != before {
		t.Errorf("empty input appended messages: %d -> %d", before, len(sess.Messages))
	}
	if sess.Step != StepThought {
		t.Errorf("empty input moved the step to %v", sess.Step)
	}
}

func TestHandleInputFullWalk(t *testing.T) {
	e := newTestEngine(t)
	s, _ := e.cat.Scenario("anxious")
	sess := e.NewSession(s)

	// Thought.
	out := e.HandleInput(sess, "I think I will always fail this test")
	if sess.Step != StepFeeling {
		t.Fatalf("after thought: Step = %v, want %v", sess.Step, StepFeeling)
	}
	if sess.Thought != "I think I will always fail this test" {
		t.Errorf("Thought = %q", sess.Thought)
	}
	// Bot reply plus trailing options message carrying the chips.
	if len(out) != 2 {
		t.Fatalf("after thought: %d messages, want 2", len(out))
	}
	if out[1].Text != "Here are some options:" {
		t.Errorf("trailing message = %q", out[1].Text)
	}
	if len(out[1].Suggestions) == 0 || out[1].Suggestions[0] != "Happy" {
		t.Errorf("trailing suggestions = %v", out[1].Suggestions)
	}
	if len(out[0].Suggestions) != 0 {
		t.Errorf("main reply should not carry chips: %v", out[0].Suggestions)
	}

	// Feeling.
	e.HandleInput(sess, "I feel nervous")
	if sess.Step != StepBehavior {
		t.Fatalf("after feeling: Step = %v, want %v", sess.Step, StepBehavior)
	}
	if sess.Feeling != "Nervous" {
		t.Errorf("Feeling = %q, want Nervous (catalog name, not raw input)", sess.Feeling)
	}

	// Behavior.
	e.HandleInput(sess, "I avoided studying")
	if sess.Step != StepComplete {
		t.Fatalf("after behavior: Step = %v, want %v", sess.Step, StepComplete)
	}
	if sess.Behavior != "I avoided studying" {
		t.Errorf("Behavior = %q", sess.Behavior)
	}

	// Complete is terminal: more input never moves the step back.
	e.HandleInput(sess, "What could I try differently?")
	e.HandleInput(sess, "thanks!")
	if sess.Step != StepComplete {
		t.Errorf("Step left %v after completion", sess.Step)
	}
}

func TestHandleInputFeelingRetry(t *testing.T) {
	e := newTestEngine(t)
	s, _ := e.cat.Scenario("sad")
	sess := e.NewSession(s)

	e.HandleInput(sess, "I think everyone hates my drawings")
	if sess.Step != StepFeeling {
		t.Fatalf("Step = %v, want %v", sess.Step, StepFeeling)
	}

	// Unrecognized feeling: stay on the feeling step, record nothing.
	e.HandleInput(sess, "purple elephants")
	if sess.Step != StepFeeling {
		t.Errorf("retry moved the step to %v", sess.Step)
	}
	if sess.Feeling != "" {
		t.Errorf("Feeling = %q, want empty after retry", sess.Feeling)
	}

	// A valid answer still works afterwards.
	e.HandleInput(sess, "Sad")
	if sess.Step != StepBehavior || sess.Feeling != "Sad" {
		t.Errorf("Step = %v, Feeling = %q", sess.Step, sess.Feeling)
	}
}

func TestHandleInputTranscriptOrder(t *testing.T) {
	e := newTestEngine(t)
	s, _ := e.cat.Scenario("angry")
	sess := e.NewSession(s)

	e.HandleInput(sess, "I want to break something")

	// greeting, user turn, bot reply, options message
	if len(sess.Messages) != 4 {
		t.Fatalf("len(Messages) = %d, want 4", len(sess.Messages))
	}
	wantBot := []bool{true, false, true, true}
	for i, m := range sess.Messages {
		if m.IsBot != wantBot[i] {
			t.Errorf("Messages[%d].IsBot = %v, want %v", i, m.IsBot, wantBot[i])
		}
		if m.ID == "" {
			t.Errorf("Messages[%d] has no id", i)
		}
	}
}

func TestSwapCatalog(t *testing.T) {
	e := newTestEngine(t)
	s, _ := e.cat.Scenario("anxious")
	sess := e.NewSession(s)

	e.HandleInput(sess, "I think I will always fail this test")

	cat2, err := catalog.Load()
	if err != nil {
		t.Fatal(err)
	}
	e.SwapCatalog(cat2)

	// The in-flight session keeps its recorded state and keeps working.
	if sess.Thought == "" {
		t.Error("swap lost recorded session state")
	}
	e.HandleInput(sess, "Nervous")
	if sess.Step != StepBehavior {
		t.Errorf("Step = %v after swap, want %v", sess.Step, StepBehavior)
	}
}

package dialogue

import (
	"strings"
	"testing"

	"github.com/johns/thoughtbuddy/internal/catalog"
)

// pinned always picks the first phrase so reply text is deterministic.
func pinned(n int) int { return 0 }

func newTestComposer(t *testing.T) *Composer {
	t.Helper()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatal(err)
	}
	return NewComposer(cat, WithRandom(pinned))
}

func TestComposeThoughtTooShort(t *testing.T) {
	c := newTestComposer(t)

	r := c.Compose(StepThought, "bad", nil, "")
	if r.Next != StepThought {
		t.Errorf("Next = %v, want %v", r.Next, StepThought)
	}
	if len(r.Suggestions) != len(thoughtExamples) {
		t.Errorf("Suggestions = %v, want thought examples", r.Suggestions)
	}
	if !strings.Contains(r.Text, "tell me more") {
		t.Errorf("unexpected retry text: %q", r.Text)
	}
}

func TestComposeThoughtShortButThinking(t *testing.T) {
	c := newTestComposer(t)

	// Under the length cutoff but contains a thinking verb.
	r := c.Compose(StepThought, "I think...", nil, "")
	if r.Next != StepFeeling {
		t.Errorf("Next = %v, want %v", r.Next, StepFeeling)
	}
}

func TestComposeThoughtAdvances(t *testing.T) {
	c := newTestComposer(t)

	r := c.Compose(StepThought, "I will never be good at math", nil, "")
	if r.Next != StepFeeling {
		t.Fatalf("Next = %v, want %v", r.Next, StepFeeling)
	}
	if !strings.Contains(r.Text, `"I will never be good at math"`) {
		t.Errorf("thought not echoed: %q", r.Text)
	}
	if !strings.Contains(r.Text, "What emotions") {
		t.Errorf("missing feeling prompt: %q", r.Text)
	}

	// Suggestion chips are the feeling names in catalog order.
	want := []string{"Happy", "Sad", "Angry", "Nervous", "Tired", "Frustrated"}
	if len(r.Suggestions) != len(want) {
		t.Fatalf("Suggestions = %v", r.Suggestions)
	}
	for i := range want {
		if r.Suggestions[i] != want[i] {
			t.Errorf("Suggestions[%d] = %q, want %q", i, r.Suggestions[i], want[i])
		}
	}
}

func TestComposeThoughtSurfacesFirstTrap(t *testing.T) {
	c := newTestComposer(t)

	detected := []catalog.DistortionID{"catastrophize", "blackwhite"}
	r := c.Compose(StepThought, "I think I will always fail this test", detected, "")

	if !strings.Contains(strings.ToLower(r.Text), "catastrophizing") {
		t.Errorf("first trap not surfaced: %q", r.Text)
	}
	// Only the first detected trap is mentioned.
	if strings.Contains(strings.ToLower(r.Text), "black-and-white") {
		t.Errorf("second trap should not be surfaced: %q", r.Text)
	}
	if !strings.Contains(r.Text, "you could try") {
		t.Errorf("reframe missing: %q", r.Text)
	}
}

func TestComposeFeeling(t *testing.T) {
	c := newTestComposer(t)

	r := c.Compose(StepFeeling, "I feel happy", nil, "")
	if r.Next != StepBehavior {
		t.Fatalf("Next = %v, want %v", r.Next, StepBehavior)
	}
	if r.Feeling != "Happy" {
		t.Errorf("Feeling = %q, want Happy", r.Feeling)
	}
	if !strings.Contains(r.Text, "You're feeling Happy 😊") {
		t.Errorf("feeling not acknowledged: %q", r.Text)
	}
	if len(r.Suggestions) != len(behaviorExamples) {
		t.Errorf("Suggestions = %v, want behavior examples", r.Suggestions)
	}
}

func TestComposeFeelingNoMatch(t *testing.T) {
	c := newTestComposer(t)

	r := c.Compose(StepFeeling, "purple elephants", nil, "")
	if r.Next != StepFeeling {
		t.Errorf("Next = %v, want retry on %v", r.Next, StepFeeling)
	}
	if r.Feeling != "" {
		t.Errorf("Feeling = %q, want empty", r.Feeling)
	}
	if len(r.Suggestions) == 0 {
		t.Error("retry should re-offer the feeling chips")
	}
}

func TestComposeBehavior(t *testing.T) {
	c := newTestComposer(t)

	r := c.Compose(StepBehavior, "I hid in my room", nil, "Sad")
	if r.Next != StepComplete {
		t.Fatalf("Next = %v, want %v", r.Next, StepComplete)
	}
	if !strings.Contains(r.Text, "You responded by I hid in my room.") {
		t.Errorf("behavior not echoed: %q", r.Text)
	}
	// First strategy tip for the recorded feeling.
	if !strings.Contains(r.Text, "when you feel sad") {
		t.Errorf("strategy tip missing: %q", r.Text)
	}
}

func TestComposeBehaviorUnknownFeeling(t *testing.T) {
	c := newTestComposer(t)

	// An unmatched feeling just skips the tip; the step still completes.
	r := c.Compose(StepBehavior, "I walked away", nil, "")
	if r.Next != StepComplete {
		t.Errorf("Next = %v, want %v", r.Next, StepComplete)
	}
	if strings.Contains(r.Text, "when you feel") {
		t.Errorf("tip composed without a feeling: %q", r.Text)
	}
}

func TestComposeComplete(t *testing.T) {
	c := newTestComposer(t)

	// Asking how to improve gets the strategies reply.
	r := c.Compose(StepComplete, "What could I try differently?", nil, "Sad")
	if r.Next != StepComplete {
		t.Errorf("Next = %v, want %v", r.Next, StepComplete)
	}
	if !strings.Contains(r.Text, "deep breaths") {
		t.Errorf("strategies reply missing: %q", r.Text)
	}

	// Anything else gets the generic closing.
	r = c.Compose(StepComplete, "thanks", nil, "Sad")
	if !strings.Contains(r.Text, "completed a full thought-feeling-action") {
		t.Errorf("closing reply missing: %q", r.Text)
	}
	if len(r.Suggestions) != len(againFollowups) {
		t.Errorf("Suggestions = %v", r.Suggestions)
	}
}

func TestIsSubstantialThought(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"this is long enough", true},
		{"I think", true},
		{"a thought", true},
		{"bad", false},
		{"  no  ", false},
	}
	for _, tc := range cases {
		if got := isSubstantialThought(tc.text); got != tc.want {
			t.Errorf("isSubstantialThought(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

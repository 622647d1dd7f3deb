package dialogue

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/johns/thoughtbuddy/internal/catalog"
)

// empathyPhrases open most bot replies. One is picked at random so the
// bot doesn't sound like a broken record.
var empathyPhrases = []string{
	"I can really hear how difficult this is for you.",
	"That sounds really challenging. I'm here to help.",
	"I understand why you'd feel that way.",
	"That must be really hard to deal with.",
	"I can see this is really affecting you.",
}

// thoughtExamples are offered when the user's thought is too short to
// work with.
var thoughtExamples = []string{
	"I think I made a mistake",
	"I think everyone is better than me",
	"I think something bad will happen",
}

// behaviorExamples are offered once a feeling has been named.
var behaviorExamples = []string{
	"I yelled at someone",
	"I ran away",
	"I cried",
	"I tried to ignore it",
	"I asked for help",
}

// completeFollowups keep the conversation going after the walk-through
// is done.
var completeFollowups = []string{
	"What could I try differently?",
	"How can I handle this better?",
	"What strategies might help?",
	"Can you help me practice?",
}

var againFollowups = []string{
	"Try another problem",
	"Learn coping strategies",
	"Practice thought reframing",
	"I want to learn more",
}

// thinkingMarkers mark text as a thought even when it is short.
var thinkingMarkers = []string{"think", "thought"}

// improveMarkers trigger the strategies reply on the complete step.
var improveMarkers = []string{"differently", "better", "strategies"}

// Reply is the composed bot turn: the reply text, suggestion chips for
// the user's next input, and the step the session moves to.
type Reply struct {
	Text        string
	Suggestions []string
	Next        Step

	// Feeling is the catalog feeling name matched on the feeling step,
	// empty otherwise.
	Feeling string
}

// Composer builds bot replies from the catalog. It has no state beyond
// its random source, which is injectable so tests can pin phrasing.
type Composer struct {
	cat  *catalog.Catalog
	intn func(n int) int
}

// ComposerOption configures a Composer.
type ComposerOption func(*Composer)

// WithRandom replaces the random source used for phrase selection.
func WithRandom(intn func(n int) int) ComposerOption {
	return func(c *Composer) { c.intn = intn }
}

// NewComposer returns a composer over the given catalog.
func NewComposer(cat *catalog.Catalog, opts ...ComposerOption) *Composer {
	c := &Composer{cat: cat, intn: rand.Intn}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compose builds the bot's reply to text at the given step. detected is
// the classifier output for text; feeling is the feeling already
// recorded on the session, if any. Compose never fails: every lookup
// has a safe default.
func (c *Composer) Compose(step Step, text string, detected []catalog.DistortionID, feeling string) Reply {
	switch step {
	case StepThought:
		return c.composeThought(text, detected)
	case StepFeeling:
		return c.composeFeeling(text)
	case StepBehavior:
		return c.composeBehavior(text, feeling)
	default:
		return c.composeComplete(text)
	}
}

func (c *Composer) composeThought(text string, detected []catalog.DistortionID) Reply {
	if !isSubstantialThought(text) {
		return Reply{
			Text: "I'm here to listen. Can you tell me more about what's going " +
				"through your mind? What thoughts are you having about this situation?",
			Suggestions: thoughtExamples,
			Next:        StepThought,
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s You're thinking %q. ", c.empathy(), text)

	// Only the first detected trap is surfaced; more would overwhelm.
	if len(detected) > 0 {
		if d, ok := c.cat.Distortion(detected[0]); ok {
			fmt.Fprintf(&b, "I notice you might be caught in %s. ", strings.ToLower(d.Name))
			fmt.Fprintf(&b, "Instead of thinking %q, you could try: %q. ", d.Example, d.Reframe)
		}
	}

	b.WriteString("Now let's explore how this thought makes you feel. " +
		"What emotions are coming up for you right now?")

	return Reply{
		Text:        b.String(),
		Suggestions: c.cat.FeelingNames(),
		Next:        StepFeeling,
	}
}

func (c *Composer) composeFeeling(text string) Reply {
	f, ok := c.cat.MatchFeeling(text)
	if !ok {
		return Reply{
			Text: "I understand you're having some strong feelings. Can you tell " +
				"me more about what you're experiencing? What emotions are you " +
				"feeling right now?",
			Suggestions: c.cat.FeelingNames(),
			Next:        StepFeeling,
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s You're feeling %s %s. ", c.empathy(), f.Name, f.Emoji)
	b.WriteString("That's a completely normal reaction to what you're thinking. ")
	b.WriteString("Now let's talk about what you did or wanted to do. " +
		"How did you respond to this situation?")

	return Reply{
		Text:        b.String(),
		Suggestions: behaviorExamples,
		Next:        StepBehavior,
		Feeling:     f.Name,
	}
}

func (c *Composer) composeBehavior(text, feeling string) Reply {
	var b strings.Builder
	b.WriteString("Thank you for being so honest about what you did. ")
	fmt.Fprintf(&b, "You responded by %s. ", strings.TrimSpace(text))
	b.WriteString("That's understandable given how you were feeling. ")

	if f, ok := c.cat.FeelingByName(feeling); ok && len(f.Strategies) > 0 {
		fmt.Fprintf(&b, "For next time when you feel %s, you could try: %s. ",
			strings.ToLower(f.Name), f.Strategies[0])
	}

	b.WriteString("You've done amazing work exploring your thoughts, feelings, and behaviors!")

	return Reply{
		Text:        b.String(),
		Suggestions: completeFollowups,
		Next:        StepComplete,
	}
}

func (c *Composer) composeComplete(text string) Reply {
	lower := strings.ToLower(text)
	for _, m := range improveMarkers {
		if strings.Contains(lower, m) {
			return Reply{
				Text: "Great question! Here are some helpful ideas for next time: " +
					"1) Take 3 deep breaths before reacting, " +
					"2) Ask yourself \"Is this thought really true?\", " +
					"3) Try to find one positive thing about the situation, " +
					"4) Talk to a trusted adult or friend. " +
					"Would you like to practice any of these?",
				Suggestions: againFollowups,
				Next:        StepComplete,
			}
		}
	}

	return Reply{
		Text: "You've completed a full thought-feeling-action exploration! " +
			"You're learning so much about how your thoughts, feelings, and " +
			"behaviors work together. Would you like to try another problem or " +
			"learn more about coping strategies?",
		Suggestions: againFollowups,
		Next:        StepComplete,
	}
}

func (c *Composer) empathy() string {
	return empathyPhrases[c.intn(len(empathyPhrases))]
}

// isSubstantialThought reports whether text is worth advancing on:
// longer than ten characters, or containing a thinking verb.
func isSubstantialThought(text string) bool {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) > 10 {
		return true
	}
	lower := strings.ToLower(trimmed)
	for _, m := range thinkingMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

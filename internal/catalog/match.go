package catalog

import "strings"

// MatchScenario maps free text describing a problem to a scenario card.
// Keyword tables are checked first in catalog order, then the scenario
// label and example as substrings. When nothing matches, a custom
// scenario is built around the text so the conversation can still start.
func (c *Catalog) MatchScenario(text string) Scenario {
	lower := strings.ToLower(text)

	for _, s := range c.scenarios {
		for _, k := range s.Keywords {
			if strings.Contains(lower, k) {
				return s
			}
		}
	}

	for _, s := range c.scenarios {
		if strings.Contains(lower, strings.ToLower(s.Label)) ||
			strings.Contains(lower, strings.ToLower(s.Example)) {
			return s
		}
	}

	return Scenario{
		ID:      "custom",
		Label:   "Your Situation",
		Example: text,
		Emoji:   customEmoji(lower),
	}
}

// customEmoji picks a topical emoji for a custom scenario.
func customEmoji(lower string) string {
	switch {
	case containsAny(lower, "school", "test", "homework", "class"):
		return "📚"
	case containsAny(lower, "family", "parent", "mom", "dad", "brother", "sister"):
		return "👨‍👩‍👧‍👦"
	case containsAny(lower, "sport", "game", "play", "team"):
		return "⚽"
	default:
		return "💭"
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

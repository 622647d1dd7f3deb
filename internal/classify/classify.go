// Package classify maps free text to cognitive distortions by keyword
// matching. There is deliberately no language understanding here: a
// distortion matches when any of its keywords occurs as a substring of
// the lower-cased input, and results keep catalog order.
package classify

import (
	"strings"

	"github.com/johns/thoughtbuddy/internal/catalog"
)

// Classifier detects thought traps in user text.
type Classifier struct {
	cat *catalog.Catalog
}

// New returns a classifier over the given catalog.
func New(cat *catalog.Catalog) *Classifier {
	return &Classifier{cat: cat}
}

// Classify returns the ids of every distortion whose keywords occur in
// text, in catalog order. Empty or whitespace-only text yields nil.
// Classify is pure and total: it cannot fail.
func (c *Classifier) Classify(text string) []catalog.DistortionID {
	lower := strings.ToLower(text)
	if strings.TrimSpace(lower) == "" {
		return nil
	}

	var ids []catalog.DistortionID
	for _, d := range c.cat.Distortions() {
		for _, k := range d.Keywords {
			if strings.Contains(lower, strings.ToLower(k)) {
				ids = append(ids, d.ID)
				break
			}
		}
	}
	return ids
}

// SuggestTraps returns the distortions detected in text, or the first
// three catalog entries when nothing matches. The always-at-least-one
// default is this helper's policy for the thought-traps explorer, not
// the classifier's: Classify itself returns the true (possibly empty)
// result.
func (c *Classifier) SuggestTraps(text string) []catalog.Distortion {
	ids := c.Classify(text)
	if len(ids) == 0 {
		all := c.cat.Distortions()
		if len(all) > 3 {
			all = all[:3]
		}
		return all
	}

	traps := make([]catalog.Distortion, 0, len(ids))
	for _, id := range ids {
		if d, ok := c.cat.Distortion(id); ok {
			traps = append(traps, d)
		}
	}
	return traps
}

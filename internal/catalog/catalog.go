// Package catalog holds the static CBT content tables: cognitive
// distortions (thought traps), feelings, coping strategies, and the
// scenario cards shown when a conversation starts. Content is embedded
// at build time and validated once at load; everything the rest of the
// app sees comes from a validated Catalog.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

//go:embed content.json
var embedded []byte

// DistortionID identifies a cognitive distortion. IDs form a closed set
// validated at load time; downstream code never invents one.
type DistortionID string

// Distortion is one named unhelpful thinking pattern.
type Distortion struct {
	ID          DistortionID `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Example     string       `json:"example"`
	Reframe     string       `json:"reframe"`
	Emoji       string       `json:"emoji"`
	Keywords    []string     `json:"keywords"`
}

// Feeling is one catalog emotion with its ordered coping tips.
type Feeling struct {
	Name       string   `json:"name"`
	Emoji      string   `json:"emoji"`
	Strategies []string `json:"strategies"`
}

// Strategy is a standalone coping exercise with step-by-step instructions.
type Strategy struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Emoji       string   `json:"emoji"`
	Category    string   `json:"category"`
	Steps       []string `json:"steps"`
}

// Scenario is a conversation starter card ("what's bothering you today?").
type Scenario struct {
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	Example  string   `json:"example"`
	Emoji    string   `json:"emoji"`
	Keywords []string `json:"keywords"`
}

// Catalog is the validated, read-only content set.
type Catalog struct {
	distortions  []Distortion
	byID         map[DistortionID]Distortion
	feelings     []Feeling
	strategies   []Strategy
	scenarios    []Scenario
	scenarioByID map[string]Scenario
}

type rawContent struct {
	Distortions []Distortion `json:"distortions"`
	Feelings    []Feeling    `json:"feelings"`
	Strategies  []Strategy   `json:"strategies"`
	Scenarios   []Scenario   `json:"scenarios"`
}

// Load parses and validates the embedded content.
func Load() (*Catalog, error) {
	return parse(embedded)
}

// LoadFile parses and validates an external content file, used when the
// config points at a translated or customized catalog.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (*Catalog, error) {
	var raw rawContent
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse content: %w", err)
	}

	c := &Catalog{
		distortions:  raw.Distortions,
		byID:         make(map[DistortionID]Distortion, len(raw.Distortions)),
		feelings:     raw.Feelings,
		strategies:   raw.Strategies,
		scenarios:    raw.Scenarios,
		scenarioByID: make(map[string]Scenario, len(raw.Scenarios)),
	}

	if len(c.distortions) == 0 {
		return nil, fmt.Errorf("content has no distortions")
	}
	for _, d := range c.distortions {
		if d.ID == "" {
			return nil, fmt.Errorf("distortion %q has empty id", d.Name)
		}
		if _, dup := c.byID[d.ID]; dup {
			return nil, fmt.Errorf("duplicate distortion id %q", d.ID)
		}
		if len(d.Keywords) == 0 {
			return nil, fmt.Errorf("distortion %q has no keywords", d.ID)
		}
		for _, k := range d.Keywords {
			if strings.TrimSpace(k) == "" {
				return nil, fmt.Errorf("distortion %q has a blank keyword", d.ID)
			}
		}
		c.byID[d.ID] = d
	}

	if len(c.feelings) == 0 {
		return nil, fmt.Errorf("content has no feelings")
	}
	seen := make(map[string]bool, len(c.feelings))
	for _, f := range c.feelings {
		if f.Name == "" {
			return nil, fmt.Errorf("feeling with empty name")
		}
		lower := strings.ToLower(f.Name)
		if seen[lower] {
			return nil, fmt.Errorf("duplicate feeling %q", f.Name)
		}
		seen[lower] = true
	}

	for _, s := range c.scenarios {
		if s.ID == "" {
			return nil, fmt.Errorf("scenario %q has empty id", s.Label)
		}
		if _, dup := c.scenarioByID[s.ID]; dup {
			return nil, fmt.Errorf("duplicate scenario id %q", s.ID)
		}
		c.scenarioByID[s.ID] = s
	}

	return c, nil
}

// Distortions returns all distortions in catalog order.
func (c *Catalog) Distortions() []Distortion {
	return c.distortions
}

// Distortion looks up a distortion by id.
func (c *Catalog) Distortion(id DistortionID) (Distortion, bool) {
	d, ok := c.byID[id]
	return d, ok
}

// Feelings returns all feelings in catalog order.
func (c *Catalog) Feelings() []Feeling {
	return c.feelings
}

// FeelingNames returns the feeling names in catalog order, used as
// suggestion chips.
func (c *Catalog) FeelingNames() []string {
	names := make([]string, len(c.feelings))
	for i, f := range c.feelings {
		names[i] = f.Name
	}
	return names
}

// MatchFeeling matches free text against the feeling catalog: the text
// contains the feeling name, contains its emoji, or the feeling name
// contains the first word of the text. Matching is case-insensitive.
func (c *Catalog) MatchFeeling(text string) (Feeling, bool) {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return Feeling{}, false
	}
	firstWord := lower
	if i := strings.IndexByte(lower, ' '); i >= 0 {
		firstWord = lower[:i]
	}

	for _, f := range c.feelings {
		name := strings.ToLower(f.Name)
		if strings.Contains(lower, name) ||
			(f.Emoji != "" && strings.Contains(text, f.Emoji)) ||
			strings.Contains(name, firstWord) {
			return f, true
		}
	}
	return Feeling{}, false
}

// FeelingByName looks up a feeling by exact name, case-insensitive.
func (c *Catalog) FeelingByName(name string) (Feeling, bool) {
	for _, f := range c.feelings {
		if strings.EqualFold(f.Name, name) {
			return f, true
		}
	}
	return Feeling{}, false
}

// Strategies returns all coping strategies in catalog order.
func (c *Catalog) Strategies() []Strategy {
	return c.strategies
}

// Scenarios returns all scenario cards in catalog order.
func (c *Catalog) Scenarios() []Scenario {
	return c.scenarios
}

// Scenario looks up a scenario by id.
func (c *Catalog) Scenario(id string) (Scenario, bool) {
	s, ok := c.scenarioByID[id]
	return s, ok
}

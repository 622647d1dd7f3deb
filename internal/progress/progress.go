// Package progress derives longitudinal statistics from the stored
// journey history. Progress is a cache: it is recomputed from the full
// journey list and never hand-edited.
package progress

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/johns/thoughtbuddy/internal/journey"
	"github.com/johns/thoughtbuddy/internal/storage"
)

// maxFavorites caps the favorite-strategies list.
const maxFavorites = 5

// Progress holds the derived summary. LastActivity serializes as an
// RFC 3339 string.
type Progress struct {
	TotalJourneys      int       `json:"totalJourneys"`
	CompletedJourneys  int       `json:"completedJourneys"`
	FavoriteStrategies []string  `json:"favoriteStrategies"`
	LastActivity       time.Time `json:"lastActivity"`
}

// Compute derives Progress from the journey list. Deterministic given
// the same journeys and clock reading.
func Compute(journeys []journey.Journey, now time.Time) Progress {
	p := Progress{
		TotalJourneys: len(journeys),
		LastActivity:  now,
	}

	var completed []journey.Journey
	for _, j := range journeys {
		if j.Completed {
			completed = append(completed, j)
		}
	}
	p.CompletedJourneys = len(completed)
	p.FavoriteStrategies = favoriteStrategies(completed)
	return p
}

// favoriteStrategies tokenizes each completed journey's plan on
// sentence punctuation, counts tokens longer than three characters, and
// returns the top five by count with ties broken by first appearance.
func favoriteStrategies(completed []journey.Journey) []string {
	counts := make(map[string]int)
	order := make(map[string]int)

	for _, j := range completed {
		tokens := strings.FieldsFunc(strings.ToLower(j.Plan), func(r rune) bool {
			switch r {
			case ',', ';', '.', '!', '?':
				return true
			}
			return false
		})
		for _, tok := range tokens {
			tok = strings.TrimSpace(tok)
			if len(tok) <= 3 {
				continue
			}
			if _, seen := counts[tok]; !seen {
				order[tok] = len(order)
			}
			counts[tok]++
		}
	}

	favs := make([]string, 0, len(counts))
	for tok := range counts {
		favs = append(favs, tok)
	}
	sort.Slice(favs, func(i, j int) bool {
		if counts[favs[i]] != counts[favs[j]] {
			return counts[favs[i]] > counts[favs[j]]
		}
		return order[favs[i]] < order[favs[j]]
	})

	if len(favs) > maxFavorites {
		favs = favs[:maxFavorites]
	}
	return favs
}

// Store persists the derived Progress under its fixed key.
type Store struct {
	kv  storage.KV
	log *zap.Logger
	now func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the store's logger.
func WithLogger(log *zap.Logger) Option {
	return func(s *Store) { s.log = log }
}

// WithClock replaces the LastActivity timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore returns a progress store over kv.
func NewStore(kv storage.KV, opts ...Option) *Store {
	s := &Store{kv: kv, log: zap.NewNop(), now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Recompute derives Progress from journeys and persists it.
func (s *Store) Recompute(journeys []journey.Journey) (Progress, error) {
	p := Compute(journeys, s.now())

	data, err := json.Marshal(p)
	if err != nil {
		return Progress{}, fmt.Errorf("marshal progress: %w", err)
	}
	if err := s.kv.Set(storage.KeyProgress, data); err != nil {
		return Progress{}, fmt.Errorf("save progress: %w", err)
	}
	return p, nil
}

// Load returns the cached Progress. Missing or corrupt data reads as
// zero progress with LastActivity set to now.
func (s *Store) Load() Progress {
	empty := Progress{FavoriteStrategies: []string{}, LastActivity: s.now()}

	data, ok, err := s.kv.Get(storage.KeyProgress)
	if err != nil {
		s.log.Warn("progress storage unavailable", zap.Error(err))
		return empty
	}
	if !ok {
		return empty
	}

	var p Progress
	if err := json.Unmarshal(data, &p); err != nil {
		s.log.Warn("progress data corrupt, using defaults", zap.Error(err))
		return empty
	}
	return p
}

// Package journey persists completed guided sessions. Journeys are the
// app's only durable history: one record per finished walk-through,
// immutable once saved except for deletion.
package journey

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johns/thoughtbuddy/internal/storage"
)

// Journey is one completed guided session. Timestamps serialize as
// RFC 3339 strings.
type Journey struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Problem   string    `json:"problem"`
	Thought   string    `json:"thought"`
	Feeling   string    `json:"feeling"`
	Behavior  string    `json:"behavior"`
	Plan      string    `json:"plan"`
	Completed bool      `json:"completed"`
}

// Store owns the durable journey list. Malformed or missing stored data
// reads as an empty history, never as an error: the app must not
// dead-end on a corrupt device store.
type Store struct {
	kv        storage.KV
	log       *zap.Logger
	now       func() time.Time
	suffix    func() string
	afterSave func([]Journey)
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the store's logger.
func WithLogger(log *zap.Logger) Option {
	return func(s *Store) { s.log = log }
}

// WithClock replaces the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithSuffix replaces the random id suffix source.
func WithSuffix(fn func() string) Option {
	return func(s *Store) { s.suffix = fn }
}

// WithAfterSave registers a hook called with the full journey list
// after every successful save. The progress recompute hangs off this.
func WithAfterSave(fn func([]Journey)) Option {
	return func(s *Store) { s.afterSave = fn }
}

// NewStore returns a journey store over kv.
func NewStore(kv storage.KV, opts ...Option) *Store {
	s := &Store{
		kv:     kv,
		log:    zap.NewNop(),
		now:    time.Now,
		suffix: func() string { return strings.SplitN(uuid.NewString(), "-", 2)[0] },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Save assigns j an id and timestamp, appends it to the stored list,
// and runs the after-save hook. The input's ID and Timestamp fields are
// ignored.
func (s *Store) Save(j Journey) (Journey, error) {
	now := s.now()
	j.ID = fmt.Sprintf("journey-%d-%s", now.UnixMilli(), s.suffix())
	j.Timestamp = now

	all := s.List()
	all = append(all, j)

	data, err := json.Marshal(all)
	if err != nil {
		return Journey{}, fmt.Errorf("marshal journeys: %w", err)
	}
	if err := s.kv.Set(storage.KeyJourneys, data); err != nil {
		return Journey{}, fmt.Errorf("save journeys: %w", err)
	}

	if s.afterSave != nil {
		s.afterSave(all)
	}
	return j, nil
}

// List returns all journeys in insertion order, oldest first.
// Unavailable or corrupt storage reads as no history.
func (s *Store) List() []Journey {
	data, ok, err := s.kv.Get(storage.KeyJourneys)
	if err != nil {
		s.log.Warn("journey storage unavailable", zap.Error(err))
		return nil
	}
	if !ok {
		return nil
	}

	var all []Journey
	if err := json.Unmarshal(data, &all); err != nil {
		s.log.Warn("journey data corrupt, treating as empty", zap.Error(err))
		return nil
	}
	return all
}

// GetByID returns the journey with the given id, if present.
func (s *Store) GetByID(id string) (Journey, bool) {
	for _, j := range s.List() {
		if j.ID == id {
			return j, true
		}
	}
	return Journey{}, false
}

// Delete removes the journey with the given id and runs the after-save
// hook so derived state stays consistent. Deleting a missing id is a
// no-op.
func (s *Store) Delete(id string) error {
	all := s.List()
	kept := all[:0]
	for _, j := range all {
		if j.ID != id {
			kept = append(kept, j)
		}
	}
	if len(kept) == len(all) {
		return nil
	}

	data, err := json.Marshal(kept)
	if err != nil {
		return fmt.Errorf("marshal journeys: %w", err)
	}
	if err := s.kv.Set(storage.KeyJourneys, data); err != nil {
		return fmt.Errorf("save journeys: %w", err)
	}
	if s.afterSave != nil {
		s.afterSave(kept)
	}
	return nil
}

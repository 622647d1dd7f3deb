// Package storage is the local persistence boundary: whole JSON values
// stored and replaced under fixed keys, the way the app treats its
// device-local state. There is no field-level mutation and no
// concurrent-writer story; callers read a value, replace it, write it
// back.
package storage

import "sync"

// KV stores whole values under string keys.
type KV interface {
	// Get returns the value for key and whether it exists.
	Get(key string) ([]byte, bool, error)
	// Set stores value under key, replacing any previous value.
	Set(key string, value []byte) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error
}

// Fixed keys for the three persisted records.
const (
	KeyJourneys = "journeys"
	KeyProgress = "progress"
	KeySettings = "settings"
)

// Memory is a map-backed KV used in tests and ephemeral runs.
type Memory struct {
	mu sync.Mutex
	m  map[string][]byte
}

// NewMemory returns an empty in-memory KV.
func NewMemory() *Memory {
	return &Memory{m: make(map[string][]byte)}
}

func (s *Memory) Get(key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.m[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(v))
	copy(cp, v)
	return cp, true, nil
}

func (s *Memory) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(value))
	copy(cp, value)
	s.m[key] = cp
	return nil
}

func (s *Memory) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
	return nil
}

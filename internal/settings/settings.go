// Package settings persists the small user-preferences record. The
// dialogue core never writes these; the UI reads them as capability
// flags.
package settings

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/johns/thoughtbuddy/internal/storage"
)

// Valid themes.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
	ThemeAuto  = "auto"
)

// Settings is the persisted preferences record.
type Settings struct {
	SoundEnabled      bool   `json:"soundEnabled"`
	AnimationsEnabled bool   `json:"animationsEnabled"`
	ReminderEnabled   bool   `json:"reminderEnabled"`
	Theme             string `json:"theme"`
}

// Default returns the out-of-the-box settings.
func Default() Settings {
	return Settings{
		SoundEnabled:      false,
		AnimationsEnabled: true,
		ReminderEnabled:   true,
		Theme:             ThemeLight,
	}
}

// ValidTheme reports whether theme is one of the known values.
func ValidTheme(theme string) bool {
	return theme == ThemeLight || theme == ThemeDark || theme == ThemeAuto
}

// Store persists Settings under its fixed key.
type Store struct {
	kv  storage.KV
	log *zap.Logger
}

// NewStore returns a settings store over kv.
func NewStore(kv storage.KV, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{kv: kv, log: log}
}

// Load returns the stored settings. Missing or corrupt data reads as
// the defaults, and an unknown theme falls back to light.
func (s *Store) Load() Settings {
	data, ok, err := s.kv.Get(storage.KeySettings)
	if err != nil {
		s.log.Warn("settings storage unavailable", zap.Error(err))
		return Default()
	}
	if !ok {
		return Default()
	}

	var out Settings
	if err := json.Unmarshal(data, &out); err != nil {
		s.log.Warn("settings data corrupt, using defaults", zap.Error(err))
		return Default()
	}
	if !ValidTheme(out.Theme) {
		out.Theme = ThemeLight
	}
	return out
}

// Save persists settings, rejecting unknown themes.
func (s *Store) Save(in Settings) error {
	if !ValidTheme(in.Theme) {
		return fmt.Errorf("unknown theme %q", in.Theme)
	}
	data, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := s.kv.Set(storage.KeySettings, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

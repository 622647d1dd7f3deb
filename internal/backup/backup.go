// Package backup implements full-state export and import: one JSON
// document holding the journeys, progress, and settings records, plain
// or zstd-compressed.
package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/johns/thoughtbuddy/internal/journey"
	"github.com/johns/thoughtbuddy/internal/progress"
	"github.com/johns/thoughtbuddy/internal/settings"
	"github.com/johns/thoughtbuddy/internal/storage"
)

// CompressedExt marks a zstd-compressed backup file.
const CompressedExt = ".zst"

// Snapshot is the exported document shape.
type Snapshot struct {
	Journeys   []journey.Journey `json:"journeys"`
	Progress   progress.Progress `json:"progress"`
	Settings   settings.Settings `json:"settings"`
	ExportDate time.Time         `json:"exportDate"`
}

// Export reads the three stores and serializes a Snapshot.
func Export(kv storage.KV, now func() time.Time) ([]byte, error) {
	if now == nil {
		now = time.Now
	}

	snap := Snapshot{
		Journeys:   journey.NewStore(kv).List(),
		Progress:   progress.NewStore(kv, progress.WithClock(now)).Load(),
		Settings:   settings.NewStore(kv, nil).Load(),
		ExportDate: now(),
	}
	if snap.Journeys == nil {
		snap.Journeys = []journey.Journey{}
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal backup: %w", err)
	}
	return data, nil
}

// Import replaces each store section present in data. Sections are
// independent: a missing section leaves its store untouched, and a
// section that fails validation is skipped and reported without
// affecting the others. A document that is not JSON at all writes
// nothing. When journeys are replaced and no progress section was
// supplied, progress is recomputed from the imported journeys.
func Import(kv storage.KV, data []byte, now func() time.Time) error {
	if now == nil {
		now = time.Now
	}

	var raw struct {
		Journeys json.RawMessage `json:"journeys"`
		Progress json.RawMessage `json:"progress"`
		Settings json.RawMessage `json:"settings"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse backup: %w", err)
	}

	var failed []string
	journeysApplied := false

	var imported []journey.Journey
	if len(raw.Journeys) > 0 && string(raw.Journeys) != "null" {
		if err := json.Unmarshal(raw.Journeys, &imported); err != nil {
			failed = append(failed, "journeys")
		} else if err := kv.Set(storage.KeyJourneys, raw.Journeys); err != nil {
			failed = append(failed, "journeys")
		} else {
			journeysApplied = true
		}
	}

	progressApplied := false
	if len(raw.Progress) > 0 && string(raw.Progress) != "null" {
		var p progress.Progress
		if err := json.Unmarshal(raw.Progress, &p); err != nil {
			failed = append(failed, "progress")
		} else if err := kv.Set(storage.KeyProgress, raw.Progress); err != nil {
			failed = append(failed, "progress")
		} else {
			progressApplied = true
		}
	}

	if len(raw.Settings) > 0 && string(raw.Settings) != "null" {
		var st settings.Settings
		if err := json.Unmarshal(raw.Settings, &st); err != nil || !settings.ValidTheme(st.Theme) {
			failed = append(failed, "settings")
		} else if err := kv.Set(storage.KeySettings, raw.Settings); err != nil {
			failed = append(failed, "settings")
		}
	}

	if journeysApplied && !progressApplied {
		if _, err := progress.NewStore(kv, progress.WithClock(now)).Recompute(imported); err != nil {
			failed = append(failed, "progress")
		}
	}

	if len(failed) > 0 {
		return fmt.Errorf("import failed for: %s", strings.Join(failed, ", "))
	}
	return nil
}

// WriteFile writes data to path, zstd-compressing when the path ends in
// .zst.
func WriteFile(path string, data []byte) error {
	if strings.HasSuffix(path, CompressedExt) {
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return fmt.Errorf("create zstd encoder: %w", err)
		}
		data = enc.EncodeAll(data, nil)
		enc.Close()
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}
	return nil
}

// ReadFile reads a backup file, decompressing when the path ends in
// .zst.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read backup: %w", err)
	}
	if strings.HasSuffix(path, CompressedExt) {
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, fmt.Errorf("create zstd decoder: %w", err)
		}
		defer dec.Close()
		data, err = dec.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("decompress backup: %w", err)
		}
	}
	return data, nil
}

package check

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/johns/thoughtbuddy/internal/storage"
)

func TestCheckDataDir_Pass(t *testing.T) {
	dir := t.TempDir()
	r := CheckDataDir(dir)
	if r.Status != Pass {
		t.Errorf("expected Pass, got %s: %s", r.Status, r.Detail)
	}
}

func TestCheckDataDir_Warn(t *testing.T) {
	r := CheckDataDir("/nonexistent/data/dir")
	if r.Status != Warn {
		t.Errorf("expected Warn, got %s: %s", r.Status, r.Detail)
	}
}

func TestCheckDatabase_MissingWarns(t *testing.T) {
	r := CheckDatabase(filepath.Join(t.TempDir(), "missing.db"))
	if r.Status != Warn {
		t.Errorf("expected Warn, got %s: %s", r.Status, r.Detail)
	}
}

func TestCheckDatabase_Pass(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tb.db")
	db, err := storage.OpenSQLite(path)
	if err != nil {
		t.Fatal(err)
	}
	db.Close()

	r := CheckDatabase(path)
	if r.Status != Pass {
		t.Errorf("expected Pass, got %s: %s", r.Status, r.Detail)
	}
}

func TestCheckContent_Embedded(t *testing.T) {
	r := CheckContent("")
	if r.Status != Pass {
		t.Errorf("expected Pass, got %s: %s", r.Status, r.Detail)
	}
	if !strings.Contains(r.Detail, "embedded") {
		t.Errorf("unexpected detail: %s", r.Detail)
	}
}

func TestCheckContent_MissingFileFails(t *testing.T) {
	r := CheckContent(filepath.Join(t.TempDir(), "nope.json"))
	if r.Status != Fail {
		t.Errorf("expected Fail, got %s: %s", r.Status, r.Detail)
	}
}

func TestCheckContent_InvalidFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.json")
	os.WriteFile(path, []byte("{bad json"), 0o644)

	r := CheckContent(path)
	if r.Status != Fail {
		t.Errorf("expected Fail, got %s: %s", r.Status, r.Detail)
	}
}

func TestCheckRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tb.db")
	db, err := storage.OpenSQLite(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := db.Set(storage.KeyJourneys, []byte(`[{"id":"j1"},{"id":"j2"}]`)); err != nil {
		t.Fatal(err)
	}
	if err := db.Set(storage.KeySettings, []byte(`{"theme":"neon"}`)); err != nil {
		t.Fatal(err)
	}
	db.Close()

	results := CheckRecords(path)
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Status != Pass || results[0].Detail != "2 saved" {
		t.Errorf("journeys = %s: %s", results[0].Status, results[0].Detail)
	}
	if results[1].Status != Warn {
		t.Errorf("settings = %s: %s (unknown theme should warn)", results[1].Status, results[1].Detail)
	}
}

func TestCheckRecords_CorruptJourneysWarn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tb.db")
	db, err := storage.OpenSQLite(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := db.Set(storage.KeyJourneys, []byte("{{{")); err != nil {
		t.Fatal(err)
	}
	db.Close()

	results := CheckRecords(path)
	if len(results) != 1 || results[0].Status != Warn {
		t.Errorf("results = %+v", results)
	}
}

func TestReportFormat(t *testing.T) {
	r := Report{Results: []Result{
		{Name: "config", Status: Pass, Detail: "~/.config/thoughtbuddy/config.toml"},
		{Name: "database", Status: Warn, Detail: "not found"},
		{Name: "content", Status: Fail, Detail: "broken"},
	}}

	out := r.Format()
	if !strings.Contains(out, "tb check") {
		t.Errorf("missing header:\n%s", out)
	}
	if !strings.Contains(out, "1 passed, 1 warning, 1 failure") {
		t.Errorf("missing summary:\n%s", out)
	}
	if !r.HasFailures() {
		t.Error("HasFailures = false")
	}

	passing := Report{Results: []Result{{Name: "x", Status: Pass}}}
	if passing.HasFailures() {
		t.Error("HasFailures = true for all-pass report")
	}
}

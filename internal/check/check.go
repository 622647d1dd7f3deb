// Package check runs environment diagnostics: config, data directory,
// database, and content catalog. Checks never mutate anything.
package check

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/johns/thoughtbuddy/internal/catalog"
	"github.com/johns/thoughtbuddy/internal/config"
	"github.com/johns/thoughtbuddy/internal/journey"
	"github.com/johns/thoughtbuddy/internal/settings"
	"github.com/johns/thoughtbuddy/internal/storage"
)

// Status represents the outcome of a single check.
type Status int

const (
	Pass Status = iota
	Warn
	Fail
)

func (s Status) String() string {
	switch s {
	case Pass:
		return "pass"
	case Warn:
		return "warn"
	case Fail:
		return "FAIL"
	default:
		return "unknown"
	}
}

// Result holds the outcome of a single check.
type Result struct {
	Name   string
	Status Status
	Detail string
}

// Report aggregates all check results.
type Report struct {
	Results []Result
}

// HasFailures returns true if any result has Fail status.
func (r Report) HasFailures() bool {
	for _, res := range r.Results {
		if res.Status == Fail {
			return true
		}
	}
	return false
}

// Format returns the human-readable report string.
func (r Report) Format() string {
	if len(r.Results) == 0 {
		return "tb check\n\n  no checks ran\n"
	}

	// Find max name length for alignment.
	maxName := 0
	for _, res := range r.Results {
		if len(res.Name) > maxName {
			maxName = len(res.Name)
		}
	}

	var b strings.Builder
	b.WriteString("tb check\n\n")

	var passed, warnings, failures int
	for _, res := range r.Results {
		switch res.Status {
		case Pass:
			passed++
		case Warn:
			warnings++
		case Fail:
			failures++
		}
		fmt.Fprintf(&b, "  %-4s  %-*s  %s\n", res.Status, maxName, res.Name, res.Detail)
	}

	fmt.Fprintf(&b, "\n%d passed, %d warning, %d failure\n", passed, warnings, failures)
	return b.String()
}

// CheckConfig reports the resolved config path. Always passes — broken
// TOML is caught by config.Load before we get here.
func CheckConfig() Result {
	cfgPath := filepath.Join(config.ConfigDir(), "config.toml")
	detail := config.CompressHome(cfgPath)
	if _, err := os.Stat(cfgPath); err != nil {
		detail += " (not written, using defaults)"
	}
	return Result{Name: "config", Status: Pass, Detail: detail}
}

// CheckDataDir checks whether the data directory exists.
func CheckDataDir(path string) Result {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return Result{Name: "data dir", Status: Pass, Detail: config.CompressHome(path)}
	}
	return Result{Name: "data dir", Status: Warn,
		Detail: config.CompressHome(path) + " not found (created on first save)"}
}

// CheckDatabase checks that the database file, when present, opens and
// answers a query.
func CheckDatabase(path string) Result {
	if _, err := os.Stat(path); err != nil {
		return Result{Name: "database", Status: Warn,
			Detail: config.CompressHome(path) + " not found (created on first save)"}
	}
	db, err := storage.OpenSQLite(path)
	if err != nil {
		return Result{Name: "database", Status: Fail, Detail: err.Error()}
	}
	defer db.Close()
	if _, _, err := db.Get(storage.KeyJourneys); err != nil {
		return Result{Name: "database", Status: Fail, Detail: err.Error()}
	}
	return Result{Name: "database", Status: Pass, Detail: config.CompressHome(path)}
}

// CheckContent validates the content catalog in use: the external file
// when a content path is configured, otherwise the embedded one.
func CheckContent(contentPath string) Result {
	var (
		cat    *catalog.Catalog
		err    error
		source string
	)
	if contentPath == "" {
		cat, err = catalog.Load()
		source = "embedded"
	} else {
		cat, err = catalog.LoadFile(contentPath)
		source = config.CompressHome(contentPath)
	}
	if err != nil {
		return Result{Name: "content", Status: Fail, Detail: err.Error()}
	}
	return Result{Name: "content", Status: Pass,
		Detail: fmt.Sprintf("%s (%d traps, %d feelings, %d scenarios)",
			source, len(cat.Distortions()), len(cat.Feelings()), len(cat.Scenarios()))}
}

// CheckRecords inspects the stored journeys and settings records for
// parse problems the stores would otherwise silently paper over.
func CheckRecords(dbPath string) []Result {
	if _, err := os.Stat(dbPath); err != nil {
		return nil
	}
	db, err := storage.OpenSQLite(dbPath)
	if err != nil {
		return nil // already reported by CheckDatabase
	}
	defer db.Close()

	var out []Result

	if data, ok, err := db.Get(storage.KeyJourneys); err == nil && ok {
		var all []journey.Journey
		if err := json.Unmarshal(data, &all); err != nil {
			out = append(out, Result{Name: "journeys", Status: Warn,
				Detail: "stored record does not parse, reads as empty"})
		} else {
			out = append(out, Result{Name: "journeys", Status: Pass,
				Detail: fmt.Sprintf("%d saved", len(all))})
		}
	}

	if data, ok, err := db.Get(storage.KeySettings); err == nil && ok {
		var s settings.Settings
		if err := json.Unmarshal(data, &s); err != nil {
			out = append(out, Result{Name: "settings", Status: Warn,
				Detail: "stored record does not parse, reads as defaults"})
		} else if !settings.ValidTheme(s.Theme) {
			out = append(out, Result{Name: "settings", Status: Warn,
				Detail: fmt.Sprintf("unknown theme %q, reads as light", s.Theme)})
		} else {
			out = append(out, Result{Name: "settings", Status: Pass, Detail: "ok"})
		}
	}

	return out
}

// Run executes all checks against the given config and returns a report.
func Run(cfg config.Config) Report {
	var results []Result

	results = append(results, CheckConfig())
	results = append(results, CheckDataDir(cfg.DataDir))
	results = append(results, CheckDatabase(cfg.DatabasePath()))
	results = append(results, CheckContent(cfg.ContentPath))
	results = append(results, CheckRecords(cfg.DatabasePath())...)

	return Report{Results: results}
}

package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/johns/thoughtbuddy/internal/catalog"
	"github.com/johns/thoughtbuddy/internal/config"
	"github.com/johns/thoughtbuddy/internal/dialogue"
	"github.com/johns/thoughtbuddy/internal/journey"
	"github.com/johns/thoughtbuddy/internal/logging"
	"github.com/johns/thoughtbuddy/internal/progress"
	"github.com/johns/thoughtbuddy/internal/settings"
	"github.com/johns/thoughtbuddy/internal/storage"
)

// app bundles the wired-up services every command needs.
type app struct {
	cfg      config.Config
	log      *zap.Logger
	catalog  *catalog.Catalog
	kv       storage.KV
	journeys *journey.Store
	progress *progress.Store
	settings *settings.Store
	engine   *dialogue.Engine

	closers []func() error
}

// newApp loads config, opens storage, and wires the stores together.
// With ephemeral set, everything lives in memory and nothing touches
// the data directory.
func newApp(ephemeral bool) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log, err := logging.New(cfg.LogPath(), cfg.Debug || debug)
	if err != nil {
		return nil, err
	}

	cat, err := loadCatalog(cfg)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, log: log, catalog: cat}

	if ephemeral {
		a.kv = storage.NewMemory()
	} else {
		db, err := storage.OpenSQLite(cfg.DatabasePath())
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		a.kv = db
		a.closers = append(a.closers, db.Close)
	}

	a.progress = progress.NewStore(a.kv, progress.WithLogger(log))
	a.journeys = journey.NewStore(a.kv,
		journey.WithLogger(log),
		journey.WithAfterSave(func(all []journey.Journey) {
			if _, err := a.progress.Recompute(all); err != nil {
				log.Warn("progress recompute failed", zap.Error(err))
			}
		}),
	)
	a.settings = settings.NewStore(a.kv, log)
	a.engine = dialogue.NewEngine(cat, dialogue.WithLogger(log))
	return a, nil
}

func loadCatalog(cfg config.Config) (*catalog.Catalog, error) {
	if cfg.ContentPath != "" {
		cat, err := catalog.LoadFile(cfg.ContentPath)
		if err != nil {
			return nil, fmt.Errorf("load content %s: %w", cfg.ContentPath, err)
		}
		return cat, nil
	}
	return catalog.Load()
}

func (a *app) close() {
	_ = a.log.Sync()
	for _, fn := range a.closers {
		_ = fn()
	}
}

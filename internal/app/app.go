package app

import (
	"context"
	"fmt"

	"github.com/hanwenzhu/guwen/internal/analyzer"
	"github.com/hanwenzhu/guwen/internal/config"
	"github.com/hanwenzhu/guwen/internal/converter"
	"github.com/hanwenzhu/guwen/internal/corpus"
	"github.com/hanwenzhu/guwen/internal/db"
	"github.com/hanwenzhu/guwen/internal/evaluator"
	"github.com/hanwenzhu/guwen/internal/history"
	"github.com/hanwenzhu/guwen/internal/optimizer"
	"github.com/hanwenzhu/guwen/internal/templates"
)

// App is the main application container holding all dependencies.
type App struct {
	Config    *config.Config
	Store     *db.Store
	Stats     *corpus.Stats
	Analyzer  *analyzer.Analyzer
	Templates *templates.Library
	Converter *converter.Converter
	Evaluator *evaluator.Evaluator
	Optimizer *optimizer.Optimizer
	History   *history.Log
}

// Options tunes what New wires up.
type Options struct {
	// WithStore opens the sqlite store and runs migrations. Commands that
	// only analyze text in memory leave it off.
	WithStore bool
}

// New creates a new application instance with all dependencies wired up.
func New(ctx context.Context, cfg *config.Config, opts Options) (*App, error) {
	stats := corpus.Default()
	if cfg.CorpusOverlayPath != "" {
		var err error
		stats, err = corpus.LoadFile(cfg.CorpusOverlayPath)
		if err != nil {
			return nil, fmt.Errorf("load corpus overlay: %w", err)
		}
	}

	lib := templates.Load()
	if cfg.TemplatePath != "" {
		var err error
		lib, err = templates.LoadFile(cfg.TemplatePath)
		if err != nil {
			return nil, fmt.Errorf("load templates: %w", err)
		}
	}

	var store *db.Store
	if opts.WithStore {
		var err error
		store, err = db.NewStore(ctx, cfg.DatabasePath)
		if err != nil {
			return nil, err
		}
		if err := store.Migrate(ctx); err != nil {
			store.Close()
			return nil, err
		}
	}

	a := analyzer.New(stats)
	conv := converter.New(a, lib).WithWorkers(cfg.BatchWorkers)
	eval := evaluator.New(a, cfg.Weights).WithWorkers(cfg.BatchWorkers)
	return &App{
		Config:    cfg,
		Store:     store,
		Stats:     stats,
		Analyzer:  a,
		Templates: lib,
		Converter: conv,
		Evaluator: eval,
		Optimizer: optimizer.New(conv, eval).WithWorkers(cfg.BatchWorkers),
		History:   history.NewLog(store),
	}, nil
}

// Close closes all resources.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}

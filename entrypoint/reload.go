package main

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"turkmorph.org/core/analysis"
	"turkmorph.org/core/logger"
	"turkmorph.org/core/types"
)

const reloadDebounce = 500 * time.Millisecond

// lexiconReloader holds the live Morphology and rebuilds it when a lexicon file changes.
// A failed rebuild keeps the previous instance.
type lexiconReloader struct {
	cfg       types.Config
	current   atomic.Pointer[analysis.Morphology]
	tmcLogger zerolog.Logger
}

func newLexiconReloader(cfg types.Config, tmcLogger zerolog.Logger) (*lexiconReloader, error) {
	r := &lexiconReloader{cfg: cfg, tmcLogger: tmcLogger}
	if err := r.reload(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *lexiconReloader) Current() *analysis.Morphology {
	return r.current.Load()
}

func (r *lexiconReloader) reload() error {
	start := time.Now()
	m, err := analysis.NewMorphologyFromConfig(r.cfg, r.tmcLogger)
	if err != nil {
		return fmt.Errorf("could not load lexicon: %w", err)
	}
	r.current.Store(m)
	r.tmcLogger.Info().
		Int("items", m.Morphotactics().Lexicon().Len()).
		Dur("took", time.Since(start)).
		Msg("Lexicon loaded")
	return nil
}

// Watch rebuilds on changes to the lexicon files until ctx is done. Directories are
// watched rather than files so that editors replacing a file are noticed.
func (r *lexiconReloader) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	files := make(map[string]bool, len(r.cfg.LexiconPaths))
	dirs := make(map[string]bool)
	for _, path := range r.cfg.LexiconPaths {
		abs, err := filepath.Abs(path)
		if err != nil {
			watcher.Close()
			return err
		}
		files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return fmt.Errorf("could not watch %s: %w", dir, err)
		}
	}

	go func() {
		defer logger.HandlePanic(r.tmcLogger)
		defer watcher.Close()

		var pending <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !files[filepath.Clean(event.Name)] || !event.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
					continue
				}
				pending = time.After(reloadDebounce)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				r.tmcLogger.Warn().Err(err).Msg("Lexicon watcher error")
			case <-pending:
				pending = nil
				if err := r.reload(); err != nil {
					r.tmcLogger.Error().Err(err).Msg("Lexicon reload failed, keeping previous lexicon")
				}
			}
		}
	}()
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package watcher notifies callers when a single file changes on disk.
//
// The parent directory is watched rather than the file itself, so that
// editors which save by renaming a temporary file over the original are
// still observed. Bursts of events are collapsed into one notification
// after a quiet period.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/MKhiriev/go-envjson/internal/logger"
)

// ErrEventsClosed is returned when fsnotify closes its channels while the
// watcher is still running.
var ErrEventsClosed = errors.New("watcher events channel closed")

// Watcher watches one file.
type Watcher struct {
	path     string
	debounce time.Duration
	logger   *logger.Logger
}

// New returns a Watcher for path that waits debounce after the last event
// before notifying.
func New(path string, debounce time.Duration, log *logger.Logger) *Watcher {
	if log == nil {
		log = logger.Nop()
	}
	return &Watcher{
		path:     path,
		debounce: debounce,
		logger:   log,
	}
}

// Watch blocks until ctx is cancelled, calling onChange after every settled
// burst of changes to the file. onChange runs on the watching goroutine, so
// events arriving meanwhile are coalesced into the next notification.
func (w *Watcher) Watch(ctx context.Context, onChange func()) error {
	target, err := filepath.Abs(w.path)
	if err != nil {
		return fmt.Errorf("error resolving watched path: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	defer fsw.Close()

	dir := filepath.Dir(target)
	if err = fsw.Add(dir); err != nil {
		return fmt.Errorf("failed to watch directory %q: %w", dir, err)
	}

	w.logger.Info().
		Str("path", target).
		Dur("debounce", w.debounce).
		Msg("file watcher started")

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("file watcher stopped")
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return ErrEventsClosed
			}
			if !relevant(event, target) {
				continue
			}

			w.logger.Debug().
				Str("path", event.Name).
				Str("op", event.Op.String()).
				Msg("file event detected")

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.logger.Debug().Str("path", target).Msg("file changed")
			onChange()

		case err, ok := <-fsw.Errors:
			if !ok {
				return ErrEventsClosed
			}
			// keep watching
			w.logger.Error().Err(err).Msg("file watcher error")
		}
	}
}

func relevant(event fsnotify.Event, target string) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	name, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return name == target
}

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/wallpanel/wallpanel/internal/logging"
)

// Watch notifies subscribers when the settings file is changed by another
// process. It blocks until ctx is done. The parent directory is watched so
// editors that replace the file are still seen.
func (s *Store) Watch(ctx context.Context) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, DirPermissions); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	target := filepath.Clean(s.path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			s.reloadExternal()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logging.Warnf("Settings watcher error: %v", err)
		}
	}
}

// reloadExternal re-reads the file and notifies subscribers unless the content
// is what this store wrote last.
func (s *Store) reloadExternal() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		// Renamed away or mid-replace; the following Create event covers it.
		return
	}
	if s.isOwnWrite(data) {
		return
	}

	settings, err := s.Load()
	if err != nil {
		logging.Warnf("Ignoring external settings change: %v", err)
		return
	}
	logging.Debugf("Settings file changed externally, reloaded")
	s.notify(settings)
}

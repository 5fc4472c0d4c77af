package file

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/radix-cli/internal/core/ports/driven"
	"github.com/custodia-labs/radix-cli/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.ConfigWatcher = (*Watcher)(nil)

// Watcher reloads a ConfigStore when its file changes on disk.
type Watcher struct {
	store *ConfigStore
}

// NewWatcher creates a watcher for store.
func NewWatcher(store *ConfigStore) *Watcher {
	return &Watcher{store: store}
}

// Watch reloads the store and calls onChange after every write, create or
// rename of the config file. The parent directory is watched so editors
// that replace the file atomically are still observed.
func (w *Watcher) Watch(ctx context.Context, onChange func()) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	path := w.store.Path()
	if err := fw.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !isConfigChange(event, path) {
				continue
			}
			if err := w.store.Load(); err != nil {
				logger.Warn("reload %s: %v", path, err)
				continue
			}
			logger.Debug("config reloaded after %s", event.Op)
			if onChange != nil {
				onChange()
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("config watcher: %v", err)
		}
	}
}

// isConfigChange reports whether event modified the file at path.
func isConfigChange(event fsnotify.Event, path string) bool {
	if filepath.Clean(event.Name) != filepath.Clean(path) {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

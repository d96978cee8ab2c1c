package file

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/docsearch/internal/core/ports/driven"
	"github.com/custodia-labs/docsearch/internal/logger"
)

// Ensure ConfigStore can be watched.
var _ driven.ConfigWatcher = (*ConfigStore)(nil)

// reloadOps are the events that may change the file's contents.
const reloadOps = fsnotify.Write | fsnotify.Create

// Watch reloads the file whenever it changes on disk and calls onChange after
// each successful reload. A reload that fails keeps the previous values.
// It blocks until ctx is done.
func (s *ConfigStore) Watch(ctx context.Context, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create config watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace the file, so watch its directory.
	dir := filepath.Dir(s.filePath)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	target := filepath.Clean(s.filePath)
	logger.Debug("Watching %s for changes", target)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target || event.Op&reloadOps == 0 {
				continue
			}
			if err := s.load(); err != nil {
				logger.Warn("Config reload failed: %v", err)
				continue
			}
			logger.Info("Reloaded config from %s", target)
			if onChange != nil {
				onChange()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Config watcher error: %v", err)
		}
	}
}
